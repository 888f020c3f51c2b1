package frontier

// Point is a geographic coordinate pair emitted to the exploration
// callback: [lon, lat].
type Point [2]float64

// Callback receives the current frontier set, converted to geographic
// coordinates, at every batch boundary and once more as a terminal flush.
// No ordering is guaranteed among points within a batch.
type Callback func(points []Point)

// Options configures an Observer.
type Options struct {
	// Callback is invoked at each batch boundary and once at termination.
	// If nil, the Observer tracks frontier membership but never emits.
	Callback Callback

	// BatchSize is the base used by the adaptive batch-size formula:
	// base * 2^min(max(log10(totalExplored)-2.5, 0), 4). Default 10000.
	BatchSize int
}

// Option configures Options via the functional-option pattern used
// throughout this module.
type Option func(*Options)

// DefaultOptions returns Options with BatchSize 10000 and no callback.
func DefaultOptions() Options {
	return Options{
		BatchSize: 10000,
	}
}

// WithCallback registers fn as the batch/flush callback.
func WithCallback(fn Callback) Option {
	return func(o *Options) {
		o.Callback = fn
	}
}

// WithBatchSize overrides the adaptive-batch-size base. A value <= 0 is
// ignored (the default is kept).
func WithBatchSize(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.BatchSize = n
		}
	}
}
