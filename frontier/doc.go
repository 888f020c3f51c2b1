// Package frontier streams the expanding boundary of a grid search to a
// caller-supplied callback, batched to keep per-node overhead low on wide
// searches while staying responsive on narrow ones.
//
// frontier.Observer is a hook the path finder calls into on every visit.
// Rather than firing once per node, it accumulates an explored/frontier set
// and only invokes the callback at adaptive batch boundaries, because a
// caller visualizing exploration cares about the current boundary shape,
// not every individual node.
//
// The callback runs synchronously on the search's own goroutine: the
// search does not resume until the callback returns, so callbacks must be
// fast. A callback is optional; an Observer with no callback still tracks
// frontier membership (FrontierSize reports it) but never allocates the
// batch it would otherwise emit.
package frontier
