package aspect

import "github.com/justmytwospence/firsttracks/raster"

// Aspect is a tagged sector of compass azimuths, plus the Flat sentinel for
// cells with no defined downhill direction.
type Aspect int

const (
	North Aspect = iota
	Northeast
	East
	Southeast
	South
	Southwest
	West
	Northwest
	Flat
)

// String renders the lowercase tag used at the system's external boundary:
// "north", "northeast", …, "flat".
func (a Aspect) String() string {
	switch a {
	case North:
		return "north"
	case Northeast:
		return "northeast"
	case East:
		return "east"
	case Southeast:
		return "southeast"
	case South:
		return "south"
	case Southwest:
		return "southwest"
	case West:
		return "west"
	case Northwest:
		return "northwest"
	default:
		return "flat"
	}
}

// sectorEdges holds, for each non-North, non-Flat sector, the lower and
// upper bin edge in degrees.
var sectorEdges = map[Aspect][2]float64{
	Northeast: {22.5, 67.5},
	East:      {67.5, 112.5},
	Southeast: {112.5, 157.5},
	South:     {157.5, 202.5},
	Southwest: {202.5, 247.5},
	West:      {247.5, 292.5},
	Northwest: {292.5, 337.5},
}

// FromAzimuth classifies azimuth a into its containing sector.
//
// a == raster.FlatAzimuth maps to Flat. Otherwise a is expected in
// [0, 360); bin edges are the eight values documented on the package. An
// exact bin edge belongs to the sector it opens (22.5 is Northeast), via a
// half-open `a < edge` chain.
func FromAzimuth(a float64) Aspect {
	switch {
	case a == raster.FlatAzimuth:
		return Flat
	case a < 22.5:
		return North
	case a < 67.5:
		return Northeast
	case a < 112.5:
		return East
	case a < 157.5:
		return Southeast
	case a < 202.5:
		return South
	case a < 247.5:
		return Southwest
	case a < 292.5:
		return West
	case a < 337.5:
		return Northwest
	default:
		return North
	}
}

// Contains tests whether bearing a falls within a's arc, widened by
// tolerance on both edges. tolerance must be >= 0; a negative tolerance is
// treated as 0.
//
// For North, tolerance widens both arms of the wraparound arc independently:
// [0, 22.5+tolerance] and [337.5-tolerance, 360].
//
// For Flat, Contains returns true only when a == raster.FlatAzimuth,
// regardless of tolerance.
func (s Aspect) Contains(a float64, tolerance float64) bool {
	if tolerance < 0 {
		tolerance = 0
	}
	if s == Flat {
		return a == raster.FlatAzimuth
	}
	if s == North {
		return (0-tolerance) <= a && a <= (22.5+tolerance) ||
			(337.5-tolerance) <= a && a <= 360
	}
	edges, ok := sectorEdges[s]
	if !ok {
		return false
	}

	return (edges[0]-tolerance) <= a && a <= (edges[1]+tolerance)
}
