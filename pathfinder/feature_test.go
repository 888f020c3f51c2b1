package pathfinder_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justmytwospence/firsttracks/aspect"
	"github.com/justmytwospence/firsttracks/fixtures"
	"github.com/justmytwospence/firsttracks/pathfinder"
	"github.com/justmytwospence/firsttracks/raster"
	"github.com/justmytwospence/firsttracks/sobel"
)

// TestPath_ToFeatureCollection_Shape covers the GeoJSON-shaped wire form
// FindPath's callers are expected to serialize: a FeatureCollection of Point
// features, each carrying elevation, aspect, and azimuth properties.
func TestPath_ToFeatureCollection_Shape(t *testing.T) {
	t.Parallel()

	e, err := fixtures.Slope(10, 10, 100, 5)
	require.NoError(t, err)
	r := sobel.Analyze(e)
	r.Geo = raster.Georeference{OriginX: -120, OriginY: 45, PixelScaleX: 0.001, PixelScaleY: -0.001}

	path, _, err := pathfinder.FindPath(r, raster.Pixel{X: 1, Y: 5}, raster.Pixel{X: 8, Y: 5})
	require.NoError(t, err)
	require.NotEmpty(t, path.Points)

	fc := path.ToFeatureCollection()

	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, len(path.Points))

	for i, f := range fc.Features {
		pt := path.Points[i]

		assert.Equal(t, "Feature", f.Type)
		assert.Equal(t, "Point", f.Geometry.Type)
		assert.Equal(t, [2]float64{pt.Lon, pt.Lat}, f.Geometry.Coordinates, "coordinates must be [lon, lat], not swapped")

		assert.Equal(t, pt.Elevation, f.Properties["elevation"])
		assert.Equal(t, pt.Aspect.String(), f.Properties["aspect"])
		assert.Equal(t, fmt.Sprintf("%.1f", pt.Azimuth), f.Properties["azimuth"])
	}
}

// TestPath_ToFeatureCollection_Empty covers the degenerate empty path: a
// FeatureCollection with no Features, and no panic on an empty Points slice.
func TestPath_ToFeatureCollection_Empty(t *testing.T) {
	t.Parallel()

	fc := pathfinder.Path{}.ToFeatureCollection()

	assert.Equal(t, "FeatureCollection", fc.Type)
	assert.Empty(t, fc.Features)
}

// TestPath_ToFeatureCollection_AspectRoundTrips pins the aspect/azimuth
// string encoding against a known East-facing point rather than deriving
// the expected strings from the same code under test.
func TestPath_ToFeatureCollection_AspectRoundTrips(t *testing.T) {
	t.Parallel()

	path := pathfinder.Path{
		Points: []pathfinder.PathPoint{
			{Lon: -120.5, Lat: 45.25, Elevation: 1500, Aspect: aspect.East, Azimuth: 90.456},
		},
		Cost: 42,
	}

	fc := path.ToFeatureCollection()

	require.Len(t, fc.Features, 1)
	f := fc.Features[0]
	assert.Equal(t, [2]float64{-120.5, 45.25}, f.Geometry.Coordinates)
	assert.Equal(t, "east", f.Properties["aspect"])
	assert.Equal(t, "90.5", f.Properties["azimuth"])
	assert.Equal(t, 1500.0, f.Properties["elevation"])
}
