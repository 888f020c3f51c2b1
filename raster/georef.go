package raster

import "math"

// PixelSizeMeters is the assumed ground spacing of one pixel along either
// axis, used throughout the analyzer and path finder for slope and distance
// normalization.
const PixelSizeMeters = 10.0

// Georeference is the affine transform mapping a pixel index (col, row) to a
// geographic coordinate:
//
//	lon = OriginX + col*PixelScaleX
//	lat = OriginY + row*PixelScaleY
//
// This is a minimal stand-in for full coordinate-system conversion; it
// exists only so the path finder can attach (lon, lat) to each returned
// path point.
type Georeference struct {
	OriginX, OriginY         float64
	PixelScaleX, PixelScaleY float64
}

// PixelToLonLat converts a pixel index to a geographic coordinate under g.
func (g Georeference) PixelToLonLat(p Pixel) (lon, lat float64) {
	lon = g.OriginX + float64(p.X)*g.PixelScaleX
	lat = g.OriginY + float64(p.Y)*g.PixelScaleY

	return lon, lat
}

// LonLatToPixel converts a geographic coordinate to the nearest pixel index
// under g. Returns ErrMissingGeoreference if either pixel scale is zero
// (an ungeoreferenced raster cannot be inverted).
func (g Georeference) LonLatToPixel(lon, lat float64) (Pixel, error) {
	if g.PixelScaleX == 0 || g.PixelScaleY == 0 {
		return Pixel{}, ErrMissingGeoreference
	}
	x := int(math.Round((lon - g.OriginX) / g.PixelScaleX))
	y := int(math.Round((lat - g.OriginY) / g.PixelScaleY))

	return Pixel{X: x, Y: y}, nil
}
