package frontier

import (
	"math"

	"github.com/justmytwospence/firsttracks/raster"
)

// eightNeighborOffsets enumerates the 8-connected neighborhood used by the
// frontier's boundary-shrinking check, in the same N, NE, E, SE, S, SW, W,
// NW order as the path finder's own successor offsets.
var eightNeighborOffsets = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Observer tracks the explored and frontier sets of a grid search and
// streams the frontier to a callback in adaptively-sized batches.
//
// An Observer is not safe for concurrent use; it is driven synchronously by
// a single search loop.
type Observer struct {
	geo      raster.Georeference
	opts     Options
	explored map[raster.Pixel]bool
	frontier map[raster.Pixel]bool

	totalExplored int
	sinceEmit     int
}

// NewObserver builds an Observer that converts frontier pixels to
// geographic coordinates via geo.
func NewObserver(geo raster.Georeference, opts ...Option) *Observer {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Observer{
		geo:      geo,
		opts:     cfg,
		explored: make(map[raster.Pixel]bool),
		frontier: make(map[raster.Pixel]bool),
	}
}

// Visit records that p has been explored, updates the frontier set, and
// emits a batch if the adaptive threshold has been crossed.
func (o *Observer) Visit(p raster.Pixel) {
	o.explored[p] = true
	o.frontier[p] = true
	o.totalExplored++
	o.sinceEmit++

	o.shrinkFrontier(p)

	if o.opts.Callback != nil && o.sinceEmit >= o.adaptiveBatchSize() {
		o.emit()
		o.sinceEmit = 0
	}
}

// shrinkFrontier drops p and any of its 8 neighbors already in the frontier
// set from that set, wherever all eight of the candidate's own neighbors
// have themselves been explored: a cell fully surrounded by explored cells
// is no longer on the boundary.
func (o *Observer) shrinkFrontier(p raster.Pixel) {
	candidates := make([]raster.Pixel, 0, 9)
	candidates = append(candidates, p)
	for _, d := range eightNeighborOffsets {
		n := raster.Pixel{X: p.X + d[0], Y: p.Y + d[1]}
		if o.frontier[n] {
			candidates = append(candidates, n)
		}
	}

	for _, c := range candidates {
		if o.allNeighborsExplored(c) {
			delete(o.frontier, c)
		}
	}
}

func (o *Observer) allNeighborsExplored(p raster.Pixel) bool {
	for _, d := range eightNeighborOffsets {
		n := raster.Pixel{X: p.X + d[0], Y: p.Y + d[1]}
		if !o.explored[n] {
			return false
		}
	}

	return true
}

// adaptiveBatchSize computes:
//
//	base * 2^min(max(log10(totalExplored) - 2.5, 0), 4)
func (o *Observer) adaptiveBatchSize() int {
	if o.totalExplored <= 0 {
		return o.opts.BatchSize
	}
	exponent := math.Log10(float64(o.totalExplored)) - 2.5
	if exponent < 0 {
		exponent = 0
	}
	if exponent > 4 {
		exponent = 4
	}

	return int(float64(o.opts.BatchSize) * math.Pow(2, exponent))
}

// emit converts the current frontier set to geographic points and invokes
// the callback, in unspecified order.
func (o *Observer) emit() {
	if o.opts.Callback == nil || len(o.frontier) == 0 {
		return
	}
	points := make([]Point, 0, len(o.frontier))
	for p := range o.frontier {
		lon, lat := o.geo.PixelToLonLat(p)
		points = append(points, Point{lon, lat})
	}
	o.opts.Callback(points)
}

// Flush emits any residual frontier. The search calls this exactly once
// after termination, whether it succeeded or failed.
func (o *Observer) Flush() {
	o.emit()
}

// FrontierSize reports the current frontier set size, primarily useful for
// tests asserting monotonic shrink behavior.
func (o *Observer) FrontierSize() int {
	return len(o.frontier)
}
