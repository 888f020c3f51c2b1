package sobel

import (
	"math"

	"github.com/justmytwospence/firsttracks/raster"
)

// kernelX and kernelY are the fixed 5x5 Sobel-style stencils. kernelY is
// kernelX transposed, with north-negative / south-positive rows.
var kernelX = [5][5]float64{
	{-5, -4, 0, 4, 5},
	{-8, -10, 0, 10, 8},
	{-10, -20, 0, 20, 10},
	{-8, -10, 0, 10, 8},
	{-5, -4, 0, 4, 5},
}

var kernelY = [5][5]float64{
	{-5, -8, -10, -8, -5},
	{-4, -10, -20, -10, -4},
	{0, 0, 0, 0, 0},
	{4, 10, 20, 10, 4},
	{5, 8, 10, 8, 5},
}

// kernelSum is the sum of absolute values along one row-pair axis of
// kernelX, used to normalize the raw convolution into a rise/run slope.
const kernelSum = 68.0

// Analyze applies the 5x5 convolution to every interior cell of e
// (2 <= i <= H-3, 2 <= j <= W-3) and returns the resulting azimuth and slope
// grids, paired with e into a raster.Raster. The 2-cell border frame is left
// at its zero value for both outputs, because the kernel is undefined
// there: a border azimuth of 0 must not be read as "North" by a caller, it
// is uninitialized, not a real flat-sentinel.
//
// Analyze never returns an error: every elevation value is a valid input,
// and grids smaller than 5x5 in either dimension simply have no interior
// cells to fill.
func Analyze(e *raster.Grid) *raster.Raster {
	azimuth := raster.NewZeroGrid(e.Width, e.Height, 0)
	slope := raster.NewZeroGrid(e.Width, e.Height, 0)

	for i := 2; i <= e.Height-3; i++ {
		for j := 2; j <= e.Width-3; j++ {
			var gx, gy float64
			for ki := 0; ki < 5; ki++ {
				for kj := 0; kj < 5; kj++ {
					x := j + kj - 2
					y := i + ki - 2
					v := e.At(x, y)
					gx += v * kernelX[ki][kj]
					gy += v * kernelY[ki][kj]
				}
			}

			a := calculateAzimuth(gx, gy)
			azimuth.Set(j, i, a)
			slope.Set(j, i, gradientMagnitude(gx, gy, a))
		}
	}

	return &raster.Raster{
		Elevation: e,
		Azimuth:   azimuth,
		Slope:     slope,
	}
}

// calculateAzimuth converts horizontal/vertical gradients into a compass
// bearing in [0, 360), or raster.FlatAzimuth if both gradients are zero.
//
// gx is negated before atan2 to align the E/W axis so that a slope
// descending to the east yields an azimuth near 90 degrees.
func calculateAzimuth(gx, gy float64) float64 {
	if gx == 0 && gy == 0 {
		return raster.FlatAzimuth
	}
	degrees := math.Atan2(-gx, gy) * 180 / math.Pi
	if degrees < 0 {
		degrees += 360
	}

	return degrees
}

// gradientMagnitude computes the normalized rise/run slope from the raw
// convolution output. Flat cells (azimuth == raster.FlatAzimuth) have slope
// 0 by construction.
func gradientMagnitude(gx, gy, azimuth float64) float64 {
	if azimuth == raster.FlatAzimuth {
		return 0
	}
	gxn := gx / (kernelSum * raster.PixelSizeMeters)
	gyn := gy / (kernelSum * raster.PixelSizeMeters)

	return math.Sqrt(gxn*gxn + gyn*gyn)
}
