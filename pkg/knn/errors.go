package knn

import "errors"

// Package-specific errors
var (
	// ErrUnknownColumn is returned when a configured column is absent from
	// the frame.
	ErrUnknownColumn = errors.New("column not present in dataframe")

	// ErrNoFeatures is returned when neither categorical nor continuous
	// feature columns were configured.
	ErrNoFeatures = errors.New("no feature columns configured")

	// ErrNoTarget is returned when the target column name is empty.
	ErrNoTarget = errors.New("target column not configured")

	// ErrInvalidTestSize is returned when the test fraction is outside (0, 1).
	ErrInvalidTestSize = errors.New("test size must be in (0, 1)")

	// ErrClassTooSmall is returned when a stratification class has fewer
	// than two members and cannot contribute to both split sides.
	ErrClassTooSmall = errors.New("stratification class too small to split")
)
