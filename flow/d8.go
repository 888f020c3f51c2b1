package flow

import "github.com/justmytwospence/firsttracks/raster"

// d8Directions computes, for every interior cell of e (1 <= i <= H-2,
// 1 <= j <= W-2), the direction index of its steepest strictly-downhill
// neighbor, or raster.NoFlowDirection if no neighbor has positive drop.
//
// Ties are broken by the fixed iteration order N, NE, E, SE, S, SW, W, NW:
// the first neighbor encountered with a strictly greater slope than any
// seen so far wins, so an exact tie keeps whichever direction was checked
// first.
//
// Complexity: O(W*H), 8 neighbor checks per interior cell.
func d8Directions(e *raster.Grid) [][]uint8 {
	dirs := make([][]uint8, e.Height)
	for y := range dirs {
		row := make([]uint8, e.Width)
		for x := range row {
			row[x] = raster.NoFlowDirection
		}
		dirs[y] = row
	}

	for y := 1; y <= e.Height-2; y++ {
		for x := 1; x <= e.Width-2; x++ {
			center := e.At(x, y)
			steepest := 0.0
			best := uint8(raster.NoFlowDirection)
			for d := 0; d < 8; d++ {
				nx := x + d8Offsets[d][0]
				ny := y + d8Offsets[d][1]
				drop := center - e.At(nx, ny)
				if drop <= 0 {
					continue
				}
				slope := drop / d8Weights[d]
				if slope > steepest {
					steepest = slope
					best = uint8(d)
				}
			}
			dirs[y][x] = best
		}
	}

	return dirs
}
