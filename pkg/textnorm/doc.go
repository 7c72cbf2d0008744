// Package textnorm normalizes messy scraped values into integers.
//
// The cleanup targets the footnote debris that tabular scrapes pick up:
// bracketed reference marks ("[a]123"), slash-delimited secondary values
// ("12/2019"), and stray control characters. Helpers never return an
// error; they fall back to 0 when nothing parseable remains.
//
// # The two variants
//
// The slash-suffix truncation exists in two flavors because the original
// cleanup routine this package descends from wrote its replacement as a
// bare "\1" escape rather than a genuine captured-group back-reference,
// turning the intended truncation into a control-character insertion.
//
//   - Int performs the documented intent: "12/2019" keeps the leading
//     digits and yields 12.
//   - IntLiteral reproduces the observed behavior: the whole
//     digits-slash-suffix match is replaced by a control byte, which the
//     final cleanup strips, so "12/2019" yields 0.
//
// Pick Int for new code; IntLiteral exists so datasets cleaned by the
// historical behavior can be reproduced exactly.
//
// # Usage
//
//	import "github.com/datakit-go/datakit/pkg/textnorm"
//
//	textnorm.Int("[a]123") // 123
//	textnorm.Int("")       // 0
//	textnorm.Int(456)      // 456
//	textnorm.Int("12/34")  // 12
package textnorm
