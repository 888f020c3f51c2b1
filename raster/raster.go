package raster

// FlatAzimuth is the sentinel azimuth value for a flat cell (both partial
// derivatives zero). It is never a valid compass bearing.
const FlatAzimuth = -1.0

// NoFlowDirection is the sentinel D8 direction index for a cell with no
// downhill neighbor (a local minimum, sink, or boundary cell).
const NoFlowDirection = 255

// Raster bundles the four grids the analysis pipeline produces over one
// elevation model, plus the georeference shared by all of them.
//
//   - Elevation: real-valued meters, unchanged from the input.
//   - Azimuth: degrees in [0, 360), FlatAzimuth for flat cells.
//   - Slope: non-negative rise/run magnitude, 0 for flat cells.
//   - Runout: intensity in [0, 1]; zero unless a flow pass has populated it.
//
// All four grids share Elevation's Width and Height. sobel.Analyze
// populates the first three together and leaves Runout nil; flow.Route
// returns its runout grid separately, and a caller attaches it with
// WithRunout.
type Raster struct {
	Elevation *Grid
	Azimuth   *Grid
	Slope     *Grid
	Runout    *Grid
	Geo       Georeference
}

// Width returns the shared grid width.
func (r *Raster) Width() int { return r.Elevation.Width }

// Height returns the shared grid height.
func (r *Raster) Height() int { return r.Elevation.Height }

// WithRunout returns a shallow copy of r with Runout replaced by runout.
// It attaches a runout grid, such as the one flow.Route returns, without
// mutating the Raster the caller already holds a reference to (Rasters are
// immutable once built, per doc.go).
func (r *Raster) WithRunout(runout *Grid) *Raster {
	out := *r
	out.Runout = runout

	return &out
}
