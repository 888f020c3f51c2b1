// Package firsttracks analyzes a digital elevation model for avalanche
// terrain hazard and finds constrained least-cost routes across it.
//
// What:
//
//   - raster/     Grid, Georeference, and Raster (Elevation/Azimuth/Slope/Runout)
//   - aspect/     nine-sector compass classification of a Sobel azimuth
//   - sobel/      5x5 convolution analyzer producing azimuth and slope
//   - flow/       D8 downhill routing and bounded runout propagation
//   - pathfinder/ constrained A*-equivalent search with GeoJSON-shaped output
//   - frontier/   batched exploration observer for the path finder
//   - fixtures/   synthetic elevation grids for tests
//
// Each package is independently usable; a typical caller runs sobel.Analyze
// over a decoded elevation grid, feeds the result to flow.Route to get a
// runout raster, and separately calls pathfinder.FindPath between two
// points on the same analyzed raster.
//
// The core is synchronous: every stage runs to completion and returns,
// with no background goroutines or shared mutable state between calls.
package firsttracks
