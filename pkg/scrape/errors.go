package scrape

import "errors"

// Sentinel errors for absent required markup. They are wrapped with the
// offending row index; match with errors.Is.
var (
	ErrMissingTitle = errors.New("row has no title element")
	ErrMissingYear  = errors.New("row has no year element")
	ErrMissingGenre = errors.New("row has no genre element")
	ErrBadYear      = errors.New("year element has no parseable digits")
)
