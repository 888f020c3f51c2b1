// Package sobel applies a fixed 5x5 finite-difference stencil to an
// elevation raster.Grid, producing azimuth and slope rasters.
//
// Analyze is a pure map over interior cells: every output cell depends only
// on the 5x5 neighborhood of elevation values centered on it, never on
// other output cells, so it would be trivially parallelizable by row-tiles;
// this implementation runs it single-threaded.
//
// Complexity: O(W*H) time (25 multiply-adds per kernel, two kernels per
// interior cell), O(W*H)
// memory for the two output grids.
package sobel
