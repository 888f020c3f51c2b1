package raster

import "errors"

// Sentinel errors for raster construction and lookup.
var (
	// ErrEmptyGrid indicates the input rows have no rows or no columns.
	ErrEmptyGrid = errors.New("raster: grid must have at least one row and one column")

	// ErrNonRectangular indicates input rows of differing lengths.
	ErrNonRectangular = errors.New("raster: all rows must have the same length")

	// ErrSizeMismatch indicates a flat array's length does not equal width*height.
	ErrSizeMismatch = errors.New("raster: elevation array size does not match width*height")

	// ErrDimensionMismatch indicates two grids expected to share dimensions do not.
	ErrDimensionMismatch = errors.New("raster: grid dimensions do not match")

	// ErrOutOfBounds indicates a pixel index lies outside the grid.
	ErrOutOfBounds = errors.New("raster: pixel out of bounds")

	// ErrMissingGeoreference indicates an operation needs a Georeference that was never set.
	ErrMissingGeoreference = errors.New("raster: missing georeference metadata")
)
