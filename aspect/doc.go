// Package aspect classifies a compass azimuth (or the raster.FlatAzimuth
// sentinel) into one of nine 45-degree sectors: the eight compass points
// plus Flat.
//
// Bin edges sit at 22.5, 67.5, 112.5, 157.5, 202.5, 247.5, 292.5, and 337.5
// degrees. Every non-North sector is left-inclusive of its lower edge and
// exclusive of its upper edge; North owns the wraparound arc
// [0, 22.5) U [337.5, 360) so that bearings near the 0/360 seam classify
// consistently.
//
// Contains answers a different question from FromAzimuth: whether a bearing
// falls within a sector's arc, optionally widened by a tolerance on both
// edges. The two are related but not inverses of each other: Contains with
// tolerance 0 agrees with FromAzimuth away from bin edges, but a nonzero
// tolerance lets a bearing satisfy more than one sector's Contains
// simultaneously, which is the point. It is how the flow router and path
// finder treat a sector boundary as a soft rather than a hard edge.
package aspect
