// Package raster defines the decoded grid value types shared by the terrain
// analysis pipeline and the path finder: a dense floating-point Grid, the
// affine Georeference that maps pixel indices to geographic coordinates, and
// the Raster bundle (Elevation, Azimuth, Slope, Runout) that the Sobel
// analyzer and flow router produce and the path finder consumes.
//
// All grids sharing a Raster have identical dimensions (Height, Width).
// Row 0 is the north edge, column 0 is the west edge, matching the source
// elevation model's row-major layout. Pixel spacing is assumed to be 10
// meters in both axes for slope normalization (see PixelSizeMeters).
//
// Grids are built once by the analyzer and are immutable thereafter: nothing
// here is mutated after construction, so no lock is carried.
package raster
