package flow

import "math"

// direction indexes the eight D8 compass directions in fixed order: N, NE,
// E, SE, S, SW, W, NW. Tie-breaks during D8 direction selection favor the
// first direction encountered in this order.
type direction int

const (
	dirN direction = iota
	dirNE
	dirE
	dirSE
	dirS
	dirSW
	dirW
	dirNW
)

// d8Offsets holds the (dx, dy) pixel offset for each direction index, in
// the same fixed order as the direction constants.
var d8Offsets = [8][2]int{
	{0, -1},  // N
	{1, -1},  // NE
	{1, 0},   // E
	{1, 1},   // SE
	{0, 1},   // S
	{-1, 1},  // SW
	{-1, 0},  // W
	{-1, -1}, // NW
}

// d8Weights holds the distance weight for each direction: 1 for cardinal
// moves, sqrt(2) for diagonal moves.
var d8Weights = [8]float64{1, math.Sqrt2, 1, math.Sqrt2, 1, math.Sqrt2, 1, math.Sqrt2}

// fourNeighborOffsets holds the N/E/S/W offsets used by the lateral spread
// pass, which deliberately excludes diagonals.
var fourNeighborOffsets = [4][2]int{
	{0, -1},
	{1, 0},
	{0, 1},
	{-1, 0},
}
