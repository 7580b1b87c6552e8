package domain

import "errors"

var (
	// ErrCatalogFailure is returned when a Mouser API request fails
	ErrCatalogFailure = errors.New("catalog API request failed")

	// ErrNoValueColumn is returned when the input table has no value/descriptor column
	ErrNoValueColumn = errors.New("input has no value/descriptor column")

	// ErrEmptyInput is returned when the input table has a header but no data rows
	ErrEmptyInput = errors.New("input has no data rows")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")
)
