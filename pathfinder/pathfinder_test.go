package pathfinder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justmytwospence/firsttracks/aspect"
	"github.com/justmytwospence/firsttracks/fixtures"
	"github.com/justmytwospence/firsttracks/pathfinder"
	"github.com/justmytwospence/firsttracks/raster"
	"github.com/justmytwospence/firsttracks/sobel"
)

func TestFindPath_FlatPlane_ChebyshevLength(t *testing.T) {
	t.Parallel()

	e, err := fixtures.Plane(10, 10, 100)
	require.NoError(t, err)
	r := sobel.Analyze(e)

	path, stats, err := pathfinder.FindPath(r, raster.Pixel{X: 1, Y: 1}, raster.Pixel{X: 8, Y: 8})
	require.NoError(t, err)
	require.NotNil(t, stats)
	// Chebyshev distance 7 plus the starting point itself.
	assert.Len(t, path.Points, 8)
	assert.GreaterOrEqual(t, path.Cost, int64(0))
}

func TestFindPath_NilRaster(t *testing.T) {
	t.Parallel()

	_, _, err := pathfinder.FindPath(nil, raster.Pixel{}, raster.Pixel{X: 1})
	require.ErrorIs(t, err, pathfinder.ErrNilRaster)
}

func TestFindPath_OutOfBounds(t *testing.T) {
	t.Parallel()

	e, err := fixtures.Plane(5, 5, 100)
	require.NoError(t, err)
	r := sobel.Analyze(e)

	_, _, err = pathfinder.FindPath(r, raster.Pixel{X: 0, Y: 0}, raster.Pixel{X: 99, Y: 99})
	require.ErrorIs(t, err, pathfinder.ErrOutOfBounds)
}

// TestFindPath_Wall_Impassable covers scenario S4: a cliff steeper than
// max_gradient blocks every direct crossing.
func TestFindPath_Wall_Impassable(t *testing.T) {
	t.Parallel()

	e, err := fixtures.Wall(10, 10, 5, 100, 200)
	require.NoError(t, err)
	r := sobel.Analyze(e)

	_, _, err = pathfinder.FindPath(
		r, raster.Pixel{X: 1, Y: 5}, raster.Pixel{X: 8, Y: 5},
		pathfinder.WithMaxGradient(0.5),
	)
	require.ErrorIs(t, err, pathfinder.ErrNoPath)
}

// TestFindPath_WallWithPass_ThreadsThePass covers S4's second half: lowering
// one column of the cliff to a passable slope opens exactly that column.
func TestFindPath_WallWithPass_ThreadsThePass(t *testing.T) {
	t.Parallel()

	e, err := fixtures.WallWithPass(10, 10, 5, 5, 100, 200, 105)
	require.NoError(t, err)
	r := sobel.Analyze(e)

	path, _, err := pathfinder.FindPath(
		r, raster.Pixel{X: 1, Y: 5}, raster.Pixel{X: 8, Y: 5},
		pathfinder.WithMaxGradient(0.6),
	)
	require.NoError(t, err)

	var crossedAtPassRow bool
	for _, p := range path.Points {
		if p.Elevation == 105 {
			crossedAtPassRow = true
		}
	}
	assert.True(t, crossedAtPassRow, "expected the path to cross through the lowered column")
}

// TestFindPath_AspectBlock_RefusesNarrowCol covers scenario S5: excluding
// the col's East aspect stops each bordering node's successor generation at
// the col, so the path never steps onto the col and detours around it.
func TestFindPath_AspectBlock_RefusesNarrowCol(t *testing.T) {
	t.Parallel()

	r := eastFacingColRaster(t)

	// With no excluded aspects, the corridor is open.
	path, _, err := pathfinder.FindPath(r, raster.Pixel{X: 0, Y: 1}, raster.Pixel{X: 4, Y: 1})
	require.NoError(t, err)
	assert.NotEmpty(t, path.Points)

	// Excluding East drops every successor that comes after the col in a
	// bordering node's neighbor order; successors checked before it (such as
	// (2,0) from (1,1)) remain, so the search detours along the top row.
	path, _, err = pathfinder.FindPath(
		r, raster.Pixel{X: 0, Y: 1}, raster.Pixel{X: 4, Y: 1},
		pathfinder.WithExcludedAspects(aspect.East),
	)
	require.NoError(t, err)
	for _, p := range path.Points {
		assert.NotEqual(t, aspect.East, p.Aspect, "path must not step onto the East-facing col")
	}
}

// eastFacingColRaster builds a 5x3 flat raster whose center cell (2,1) has
// an explicit East azimuth and nonzero slope, isolated from Sobel's
// convolution so the test exercises pathfinder's feasibility logic alone.
func eastFacingColRaster(t *testing.T) *raster.Raster {
	t.Helper()

	elevation, err := fixtures.Plane(5, 3, 100)
	require.NoError(t, err)
	azimuth := raster.NewZeroGrid(5, 3, raster.FlatAzimuth)
	slope := raster.NewZeroGrid(5, 3, 0)
	azimuth.Set(2, 1, 90)
	slope.Set(2, 1, 1.0)

	return &raster.Raster{Elevation: elevation, Azimuth: azimuth, Slope: slope}
}
