package flow

import (
	"errors"
	"math"

	"github.com/justmytwospence/firsttracks/aspect"
)

// Sentinel errors for runout routing.
var (
	// ErrNilRaster indicates a nil *raster.Raster was passed to Route.
	ErrNilRaster = errors.New("flow: raster is nil")

	// ErrDimensionMismatch indicates the raster's Elevation, Azimuth, and
	// Slope grids do not share dimensions.
	ErrDimensionMismatch = errors.New("flow: elevation, azimuth, and slope grids must share dimensions")
)

// betaThreshold is the minimum slope (tan(10 degrees)) to be considered an
// avalanche start zone, the "beta point" threshold.
var betaThreshold = math.Tan(10 * math.Pi / 180)

// Options configures the D8 flow router and runout propagation pass. The
// zero value is not useful on its own; build one with DefaultOptions.
type Options struct {
	// ExcludedAspects is the set of aspects treated as avalanche-prone.
	// An empty set short-circuits Route to an all-zero runout grid without
	// running the D8 pass at all.
	ExcludedAspects []aspect.Aspect

	// SourceSlopeThreshold is beta: the minimum slope for a cell to be a
	// potential source zone. Default math.Tan(10 degrees) =~ 0.176.
	SourceSlopeThreshold float64

	// SourceAspectTolerance widens the aspect match at source-zone
	// detection time. Default 22.5 degrees.
	SourceAspectTolerance float64

	// DecayRate is the per-step intensity multiplier during downslope
	// propagation. Default 0.92.
	DecayRate float64

	// MaxSteps bounds the downslope walk from any one source. Default 50.
	MaxSteps int

	// MinIntensity stops the downslope walk once intensity falls below it.
	// Default 0.05.
	MinIntensity float64

	// BlendRange is the slope range above SourceSlopeThreshold over which a
	// source cell's own edge-blend intensity fades to zero. Default 0.35 -
	// SourceSlopeThreshold.
	BlendRange float64

	// EdgeBlendCeiling is the maximum self-marked intensity a source cell
	// at the threshold edge can reach. Default 0.5.
	EdgeBlendCeiling float64

	// SpreadIterations is the number of 4-neighbor lateral dilation passes
	// run after all sources have propagated. Default 2.
	SpreadIterations int

	// SpreadDecay is the intensity multiplier applied when spreading into a
	// neighbor during lateral dilation. Default 0.7.
	SpreadDecay float64
}

// Option configures Options via the functional-option pattern used
// throughout this module.
type Option func(*Options)

// DefaultOptions returns an Options populated with the default runout
// propagation constants.
func DefaultOptions() Options {
	return Options{
		SourceSlopeThreshold:  betaThreshold,
		SourceAspectTolerance: 22.5,
		DecayRate:             0.92,
		MaxSteps:              50,
		MinIntensity:          0.05,
		BlendRange:            0.35 - betaThreshold,
		EdgeBlendCeiling:      0.5,
		SpreadIterations:      2,
		SpreadDecay:           0.7,
	}
}

// WithExcludedAspects sets the aspects treated as avalanche-prone.
func WithExcludedAspects(excluded ...aspect.Aspect) Option {
	return func(o *Options) {
		o.ExcludedAspects = excluded
	}
}
