package phase

import (
	"regexp"

	"github.com/go-gota/gota/series"
)

// spanRegex is the fixed development-phase vocabulary. Longer labels come
// first inside each alternation so "Phase III" is not clipped to
// "Phase II", and the slash combination ("Phase I/II") is captured as one
// span.
var spanRegex = regexp.MustCompile(
	`[Pp]hase\s*(?:IV|III|II|I|[1-4])(?:\s*/\s*(?:IV|III|II|I|[1-4]))?` +
		`|[Pp]re-?[Cc]linical` +
		`|[Dd]iscontinued` +
		`|[Mm]arketed` +
		`|[Aa]pproved` +
		`|[Uu]nknown`)

// Locate returns the leftmost development-phase span in s. The second
// return value reports whether any vocabulary token was found; a string
// containing none yields ("", false).
func Locate(s string) (string, bool) {
	m := spanRegex.FindString(s)
	if m == "" {
		return "", false
	}
	return m, true
}

// Apply maps Locate over a gota series. Missing values pass through as NA
// and rows without a vocabulary token become NA, so the result can be
// mutated back onto a dataframe without inventing data for absent rows.
// The output is built as a fresh string series; nil entries are what
// series.New turns into genuine NA elements.
func Apply(s series.Series) series.Series {
	values := make([]any, s.Len())
	for i := 0; i < s.Len(); i++ {
		e := s.Elem(i)
		if e.IsNA() {
			continue
		}
		if span, ok := Locate(e.String()); ok {
			values[i] = span
		}
	}
	return series.New(values, series.String, s.Name)
}
