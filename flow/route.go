package flow

import (
	"github.com/justmytwospence/firsttracks/raster"
)

// Route computes the avalanche runout grid for r, given the excluded
// aspects and tunables carried in opts. If no WithExcludedAspects option is
// supplied, Route returns an all-zero grid without running the D8 pass at
// all.
func Route(r *raster.Raster, opts ...Option) (*raster.Grid, error) {
	if r == nil || r.Elevation == nil || r.Azimuth == nil || r.Slope == nil {
		return nil, ErrNilRaster
	}
	if !r.Elevation.SameDimensions(r.Azimuth) || !r.Elevation.SameDimensions(r.Slope) {
		return nil, ErrDimensionMismatch
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	runout := raster.NewZeroGrid(r.Width(), r.Height(), 0)
	if len(cfg.ExcludedAspects) == 0 {
		return runout, nil
	}

	dirs := d8Directions(r.Elevation)

	isSource := func(x, y int) bool {
		return isSourceCell(r, cfg, x, y)
	}

	for y := 1; y <= r.Height()-2; y++ {
		for x := 1; x <= r.Width()-2; x++ {
			if !isSource(x, y) {
				continue
			}
			applyEdgeBlend(runout, cfg, r.Slope.At(x, y), x, y)
			propagate(runout, r.Elevation, dirs, isSource, cfg, x, y)
		}
	}

	spreadLaterally(runout, isSource, cfg)

	return runout, nil
}

// isSourceCell reports whether (x,y) is a source zone: slope at least
// SourceSlopeThreshold and an excluded aspect within SourceAspectTolerance
// of the cell's azimuth.
func isSourceCell(r *raster.Raster, cfg Options, x, y int) bool {
	if r.Slope.At(x, y) < cfg.SourceSlopeThreshold {
		return false
	}
	azimuth := r.Azimuth.At(x, y)
	for _, excluded := range cfg.ExcludedAspects {
		if excluded.Contains(azimuth, cfg.SourceAspectTolerance) {
			return true
		}
	}

	return false
}

// applyEdgeBlend marks a source cell with its own low-intensity runout when
// its slope sits near the threshold edge, blending the source shading into
// the downslope runout.
func applyEdgeBlend(runout *raster.Grid, cfg Options, slope float64, x, y int) {
	excess := slope - cfg.SourceSlopeThreshold
	if excess >= cfg.BlendRange {
		return
	}
	blendFactor := 1 - excess/cfg.BlendRange
	edgeIntensity := blendFactor * cfg.EdgeBlendCeiling
	if edgeIntensity > runout.At(x, y) {
		runout.Set(x, y, edgeIntensity)
	}
}

// propagate walks the D8 flow graph downhill from source cell (x,y),
// decaying intensity at each step and marking non-source cells with the
// max of their current and the walk's intensity.
//
// Cells that are themselves source zones are skipped for marking but still
// advance the step counter and decay the intensity: a cell adjacent to a
// hazard is still part of the hazard's footprint even if it gets its own
// red shading rather than amber runout.
func propagate(runout *raster.Grid, elevation *raster.Grid, dirs [][]uint8, isSource func(x, y int) bool, cfg Options, startX, startY int) {
	cx, cy := startX, startY
	intensity := 1.0
	steps := 0
	width, height := elevation.Width, elevation.Height

	for {
		dir := dirs[cy][cx]
		if dir == raster.NoFlowDirection {
			return
		}
		cx += d8Offsets[dir][0]
		cy += d8Offsets[dir][1]
		if cy == 0 || cy == height-1 || cx == 0 || cx == width-1 {
			return
		}

		steps++
		intensity *= cfg.DecayRate

		if !isSource(cx, cy) {
			if intensity > runout.At(cx, cy) {
				runout.Set(cx, cy, intensity)
			}
		}

		if steps >= cfg.MaxSteps || intensity < cfg.MinIntensity {
			return
		}
	}
}

// spreadLaterally runs cfg.SpreadIterations passes of 4-neighbor dilation
// over runout, each reading from a frozen snapshot of the previous
// iteration and writing into a fresh grid so spread within one iteration is
// bounded by the prior iteration's intensities.
func spreadLaterally(runout *raster.Grid, isSource func(x, y int) bool, cfg Options) {
	for iter := 0; iter < cfg.SpreadIterations; iter++ {
		next := runout.Clone()
		for y := 1; y <= runout.Height-2; y++ {
			for x := 1; x <= runout.Width-2; x++ {
				v := runout.At(x, y)
				if v <= 0 {
					continue
				}
				for _, d := range fourNeighborOffsets {
					nx, ny := x+d[0], y+d[1]
					if ny <= 0 || ny >= runout.Height-1 || nx <= 0 || nx >= runout.Width-1 {
						continue
					}
					if isSource(nx, ny) {
						continue
					}
					spread := v * cfg.SpreadDecay
					if spread > next.At(nx, ny) {
						next.Set(nx, ny, spread)
					}
				}
			}
		}
		*runout = *next
	}
}
