package pathfinder

import (
	"errors"

	"github.com/justmytwospence/firsttracks/aspect"
	"github.com/justmytwospence/firsttracks/frontier"
	"github.com/justmytwospence/firsttracks/raster"
)

// aspectTolerance is the fixed degrees-of-slack applied when testing a
// neighbor's azimuth against an excluded aspect.
const aspectTolerance = 2.5

// Sentinel errors returned by FindPath.
var (
	// ErrNilRaster indicates a nil Raster, or one missing one of its
	// Elevation, Azimuth, or Slope grids.
	ErrNilRaster = errors.New("pathfinder: raster is nil or incomplete")

	// ErrDimensionMismatch indicates Elevation, Azimuth, and Slope disagree
	// on width or height.
	ErrDimensionMismatch = errors.New("pathfinder: raster grids have mismatched dimensions")

	// ErrOutOfBounds indicates the start or end pixel lies outside the
	// raster.
	ErrOutOfBounds = errors.New("pathfinder: start or end pixel is out of bounds")

	// ErrNoPath indicates the open frontier emptied before the end pixel
	// was reached.
	ErrNoPath = errors.New("pathfinder: no path found")
)

// Options configures FindPath.
type Options struct {
	// MaxGradient is the caller's personal climb limit, dimensionless
	// rise/run. A neighbor with slope >= MaxGradient is individually
	// rejected. Default 1.0.
	MaxGradient float64

	// ExcludedAspects are aspects forbidden to traverse.
	ExcludedAspects []aspect.Aspect

	// AspectGradientThreshold only enforces the aspect exclusion when the
	// neighbor's slope exceeds this value. Default 0.
	AspectGradientThreshold float64

	// Observer, if non-nil, is visited once per dequeued node and flushed
	// exactly once when the search terminates.
	Observer *frontier.Observer
}

// Option configures Options via the functional-option pattern used
// throughout this module.
type Option func(*Options)

// DefaultOptions returns Options with MaxGradient 1.0,
// AspectGradientThreshold 0, no excluded aspects, and no observer.
func DefaultOptions() Options {
	return Options{
		MaxGradient:             1.0,
		AspectGradientThreshold: 0,
	}
}

// WithMaxGradient overrides the climb limit. Panics if max <= 0.
func WithMaxGradient(max float64) Option {
	return func(o *Options) {
		if max <= 0 {
			panic("pathfinder: MaxGradient must be positive")
		}
		o.MaxGradient = max
	}
}

// WithExcludedAspects sets the aspects forbidden to traverse.
func WithExcludedAspects(aspects ...aspect.Aspect) Option {
	return func(o *Options) {
		o.ExcludedAspects = aspects
	}
}

// WithAspectGradientThreshold overrides the slope threshold above which the
// aspect exclusion is enforced.
func WithAspectGradientThreshold(threshold float64) Option {
	return func(o *Options) {
		o.AspectGradientThreshold = threshold
	}
}

// WithObserver attaches a frontier.Observer to the search.
func WithObserver(o *frontier.Observer) Option {
	return func(opts *Options) {
		opts.Observer = o
	}
}

// PathPoint is one georeferenced vertex of a returned Path, carrying the
// per-point attributes a feature-collection consumer expects.
type PathPoint struct {
	Lon, Lat  float64
	Elevation float64
	Aspect    aspect.Aspect
	Azimuth   float64
}

// Path is the ordered sequence of points from start to end, plus the total
// integer cost accumulated along the way.
type Path struct {
	Points []PathPoint
	Cost   int64
}

// Stats reports search bookkeeping a caller may want to log, separate from
// the path itself: the raster's dimensions, the endpoints searched, and a
// straight-line distance/gradient summary a caller can use for diagnostics
// without touching the search internals.
type Stats struct {
	Width, Height int
	Start, End    raster.Pixel

	// StraightLineDistance is the Euclidean distance in meters from Start
	// to End, ignoring terrain.
	StraightLineDistance float64

	// StraightLineGradient is the rise/run slope of the direct line from
	// Start to End.
	StraightLineGradient float64

	// NodesExplored is the number of pixels dequeued and relaxed.
	NodesExplored int
}

// Feature is a single point feature in the GeoJSON-shaped output format
// this package uses as its standard wire form.
type Feature struct {
	Type       string                 `json:"type"`
	Geometry   FeatureGeometry        `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

// FeatureGeometry is a GeoJSON Point geometry: Coordinates is [lon, lat].
type FeatureGeometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// FeatureCollection wraps a Path as a GeoJSON-shaped feature collection.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// ToFeatureCollection renders p as a feature collection of point features,
// each carrying elevation, aspect, and stringified azimuth as properties.
func (p Path) ToFeatureCollection() FeatureCollection {
	features := make([]Feature, 0, len(p.Points))
	for _, pt := range p.Points {
		features = append(features, Feature{
			Type: "Feature",
			Geometry: FeatureGeometry{
				Type:        "Point",
				Coordinates: [2]float64{pt.Lon, pt.Lat},
			},
			Properties: map[string]interface{}{
				"elevation": pt.Elevation,
				"aspect":    pt.Aspect.String(),
				"azimuth":   formatAzimuth(pt.Azimuth),
			},
		})
	}

	return FeatureCollection{Type: "FeatureCollection", Features: features}
}
