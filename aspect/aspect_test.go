package aspect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justmytwospence/firsttracks/aspect"
	"github.com/justmytwospence/firsttracks/raster"
)

func TestFromAzimuth_Sectors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		azimuth float64
		want    aspect.Aspect
	}{
		{raster.FlatAzimuth, aspect.Flat},
		{0, aspect.North},
		{22.4, aspect.North},
		{22.5, aspect.Northeast},
		{90, aspect.East},
		{180, aspect.South},
		{270, aspect.West},
		{337.4, aspect.Northwest},
		{337.5, aspect.North},
		{359.999, aspect.North},
	}
	for _, c := range cases {
		require.Equal(t, c.want, aspect.FromAzimuth(c.azimuth), "azimuth %v", c.azimuth)
	}
}

func TestFromAzimuth_AllBearingsClassified(t *testing.T) {
	t.Parallel()

	for a := 0.0; a < 360.0; a += 0.25 {
		got := aspect.FromAzimuth(a)
		assert.NotEqual(t, aspect.Flat, got, "azimuth %v should not classify as Flat", a)
	}
}

func TestNorth_WrapsSeam(t *testing.T) {
	t.Parallel()

	for _, tolerance := range []float64{0, 5, 22.5} {
		assert.True(t, aspect.North.Contains(0, tolerance))
		assert.True(t, aspect.North.Contains(359.999, tolerance))
	}
}

func TestContains_AgreesWithFromAzimuth_OffEdges(t *testing.T) {
	t.Parallel()

	for a := 0.0; a < 360.0; a += 0.37 {
		// Skip values exactly on a bin edge.
		onEdge := false
		for _, edge := range []float64{22.5, 67.5, 112.5, 157.5, 202.5, 247.5, 292.5, 337.5} {
			if a == edge {
				onEdge = true
			}
		}
		if onEdge {
			continue
		}
		want := aspect.FromAzimuth(a)
		require.True(t, want.Contains(a, 0), "azimuth %v should be contained by its own sector %v", a, want)
	}
}

func TestFlat_OnlyContainsSentinel(t *testing.T) {
	t.Parallel()

	assert.True(t, aspect.Flat.Contains(raster.FlatAzimuth, 0))
	assert.False(t, aspect.Flat.Contains(0, 360))
}

func TestString_LowercaseTags(t *testing.T) {
	t.Parallel()

	cases := map[aspect.Aspect]string{
		aspect.North:     "north",
		aspect.Northeast: "northeast",
		aspect.East:      "east",
		aspect.Southeast: "southeast",
		aspect.South:     "south",
		aspect.Southwest: "southwest",
		aspect.West:      "west",
		aspect.Northwest: "northwest",
		aspect.Flat:      "flat",
	}
	for a, want := range cases {
		require.Equal(t, want, a.String())
	}
}
