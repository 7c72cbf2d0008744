package anonymize

import "errors"

// Package-specific errors
var (
	// ErrInvalidK is returned when the anonymity threshold is below 2;
	// k=1 would make every table trivially anonymous.
	ErrInvalidK = errors.New("anonymity threshold k must be at least 2")

	// ErrNoQuasiIdentifiers is returned when no columns were marked for
	// generalization.
	ErrNoQuasiIdentifiers = errors.New("no quasi-identifier columns configured")

	// ErrUnknownColumn is returned when a configured column does not exist
	// in the frame.
	ErrUnknownColumn = errors.New("column not present in dataframe")

	// ErrTooFewRows is returned when the frame holds fewer than k rows, in
	// which case no partitioning can satisfy the threshold.
	ErrTooFewRows = errors.New("fewer rows than anonymity threshold")
)
