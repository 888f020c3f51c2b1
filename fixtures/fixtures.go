package fixtures

import (
	"fmt"
	"math"

	"github.com/justmytwospence/firsttracks/raster"
)

// File-local constants: generator names for error messages and the minimum
// dimension.
const (
	methodPlane = "Plane"
	methodSlope = "Slope"
	methodCone  = "Cone"
	methodWall  = "Wall"
	methodRidge = "Ridge"
	minDim      = 1
)

// Plane returns a width x height grid where every cell holds elevation, a
// flat plane.
func Plane(width, height int, elevation float64) (*raster.Grid, error) {
	if width < minDim || height < minDim {
		return nil, fmt.Errorf("%s: width=%d, height=%d must each be >= %d", methodPlane, width, height, minDim)
	}

	return raster.NewZeroGrid(width, height, elevation), nil
}

// Slope returns a width x height grid where E[i][j] = base + ratePerCol*j,
// a constant eastward (or westward, for negative rate) gradient.
func Slope(width, height int, base, ratePerCol float64) (*raster.Grid, error) {
	if width < minDim || height < minDim {
		return nil, fmt.Errorf("%s: width=%d, height=%d must each be >= %d", methodSlope, width, height, minDim)
	}
	rows := make([][]float64, height)
	for i := 0; i < height; i++ {
		row := make([]float64, width)
		for j := 0; j < width; j++ {
			row[j] = base + ratePerCol*float64(j)
		}
		rows[i] = row
	}

	return raster.NewGridFromRows(rows)
}

// Cone returns a (2*radius+1)-square grid shaped like a conical peak
// centered on the grid, E[i][j] = peak - dist((i,j), center).
func Cone(radius int, peak float64) (*raster.Grid, error) {
	if radius < minDim {
		return nil, fmt.Errorf("%s: radius=%d must be >= %d", methodCone, radius, minDim)
	}
	dim := 2*radius + 1
	cx, cy := radius, radius
	rows := make([][]float64, dim)
	for i := 0; i < dim; i++ {
		row := make([]float64, dim)
		for j := 0; j < dim; j++ {
			dist := math.Hypot(float64(i-cy), float64(j-cx))
			row[j] = peak - dist
		}
		rows[i] = row
	}

	return raster.NewGridFromRows(rows)
}

// Wall returns a width x height grid made of two flat plateaus separated by
// a single-column cliff at column wallCol: columns < wallCol sit at
// lowElevation, columns >= wallCol sit at highElevation.
func Wall(width, height, wallCol int, lowElevation, highElevation float64) (*raster.Grid, error) {
	if width < minDim || height < minDim {
		return nil, fmt.Errorf("%s: width=%d, height=%d must each be >= %d", methodWall, width, height, minDim)
	}
	if wallCol < 0 || wallCol >= width {
		return nil, fmt.Errorf("%s: wallCol=%d out of [0,%d)", methodWall, wallCol, width)
	}
	rows := make([][]float64, height)
	for i := 0; i < height; i++ {
		row := make([]float64, width)
		for j := 0; j < width; j++ {
			if j < wallCol {
				row[j] = lowElevation
			} else {
				row[j] = highElevation
			}
		}
		rows[i] = row
	}

	return raster.NewGridFromRows(rows)
}

// WallWithPass is Wall, but with a single column (passRow) of the cliff
// lowered to passElevation, forming the lowest-slope column a constrained
// path finder should thread through once the cliff is otherwise impassable.
func WallWithPass(width, height, wallCol, passRow int, lowElevation, highElevation, passElevation float64) (*raster.Grid, error) {
	g, err := Wall(width, height, wallCol, lowElevation, highElevation)
	if err != nil {
		return nil, err
	}
	if passRow < 0 || passRow >= height {
		return nil, fmt.Errorf("%s: passRow=%d out of [0,%d)", methodWall, passRow, height)
	}
	for j := wallCol; j < width; j++ {
		g.Set(j, passRow, passElevation)
	}

	return g, nil
}

// Ridge returns a width x height grid shaped like a single east-west ridge
// line running down the middle row, with a narrow col of reduced height
// cutting across it at colAtColumn. Elevation falls off linearly with
// vertical distance from the ridge line, and the col lowers the ridge-line
// cell at colAtColumn by colDepth; the other rows of that column are not
// lowered.
func Ridge(width, height int, peak, falloffPerRow float64, colAtColumn int, colDepth float64) (*raster.Grid, error) {
	if width < minDim || height < minDim {
		return nil, fmt.Errorf("%s: width=%d, height=%d must each be >= %d", methodRidge, width, height, minDim)
	}
	ridgeRow := height / 2
	rows := make([][]float64, height)
	for i := 0; i < height; i++ {
		row := make([]float64, width)
		dist := math.Abs(float64(i - ridgeRow))
		elev := peak - dist*falloffPerRow
		for j := 0; j < width; j++ {
			row[j] = elev
			if j == colAtColumn && i == ridgeRow {
				row[j] -= colDepth
			}
		}
		rows[i] = row
	}

	return raster.NewGridFromRows(rows)
}
