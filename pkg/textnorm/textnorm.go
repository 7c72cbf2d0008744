package textnorm

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Pre-compiled regular expressions for performance
var (
	// One bracketed character, e.g. the "[a]" footnote marks left by scrapes.
	bracketRegex = regexp.MustCompile(`\[.\]`)

	// Leading digits followed by a slash and arbitrary trailing text.
	slashSuffixRegex = regexp.MustCompile(`(\d+)/.*`)

	// Control characters that survive the substitutions above.
	controlRegex = regexp.MustCompile(`[\x00-\x1f]`)
)

// Int normalizes an arbitrary value to an integer: the value is
// stringified, a single-character bracketed sequence is removed, a
// slash-delimited suffix is truncated down to its leading digits, control
// characters are stripped and the remainder is parsed. An empty or
// unparseable remainder yields 0.
func Int(v any) int {
	return parse(clean(v, "${1}"))
}

// IntLiteral is the historical variant of Int. Instead of a captured-group
// back-reference the slash-suffix substitution inserts a literal control
// byte, so the entire digits-slash-suffix match is lost once control
// characters are stripped. "12/2019" therefore yields 0 where Int yields
// 12; inputs without a slash behave identically in both variants.
func IntLiteral(v any) int {
	return parse(clean(v, "\x01"))
}

func clean(v any, slashReplacement string) string {
	s := fmt.Sprint(v)
	s = bracketRegex.ReplaceAllString(s, "")
	s = slashSuffixRegex.ReplaceAllString(s, slashReplacement)
	s = controlRegex.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func parse(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
