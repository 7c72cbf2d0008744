// Package phase locates development-phase vocabulary inside free-form
// pipeline descriptions ("Phase I/II therapy", "discontinued in 2014",
// "Marketed worldwide") and returns the exact matched substring.
//
// Matching is leftmost-earliest against a fixed alternation of phase
// labels (Phase I–IV with slash combinations, in both Roman and Arabic
// spellings), lifecycle states (Preclinical, Discontinued, Marketed,
// Approved, Unknown) and their common case variants. There is no
// all-matches mode; the first hit wins.
//
// The no-match case is an explicit optional-absent result: Locate returns
// ("", false) and the series mapper Apply yields NA, the same as for
// missing input.
//
// # Usage
//
//	import "github.com/datakit-go/datakit/pkg/phase"
//
//	span, ok := phase.Locate("Phase I/II therapy")
//	// span == "Phase I/II", ok == true
//
//	annotated := phase.Apply(df.Col("status")) // NA in → NA out
package phase
