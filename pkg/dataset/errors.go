package dataset

import "errors"

// Package-specific errors
var (
	// ErrRangeLengthMismatch is returned when the start and end lists passed
	// to SliceColumns have different lengths.
	ErrRangeLengthMismatch = errors.New("start and end index lists must have equal length")

	// ErrRangeOutOfBounds is returned when a column range does not fit the
	// dataframe it is applied to.
	ErrRangeOutOfBounds = errors.New("column range out of bounds")

	// ErrEmptyRange is returned when a half-open column range selects no columns.
	ErrEmptyRange = errors.New("column range selects no columns")
)
