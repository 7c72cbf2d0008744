package dataset

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-gota/gota/dataframe"
)

var keyCleanupRegex = regexp.MustCompile(`[^a-z0-9]+`)

// SliceColumns splits df into named sub-frames, one per half-open column
// range [starts[i], ends[i]). The map key for each entry is derived from
// the name of the column at the range's start position (lowercased, runs
// of non-alphanumerics collapsed to underscores).
//
// The start and end lists must have equal length, every range must lie
// within the frame, and a range must select at least one column.
func SliceColumns(df dataframe.DataFrame, starts, ends []int) (map[string]dataframe.DataFrame, error) {
	if len(starts) != len(ends) {
		return nil, fmt.Errorf("%w: %d starts, %d ends", ErrRangeLengthMismatch, len(starts), len(ends))
	}

	names := df.Names()
	out := make(map[string]dataframe.DataFrame, len(starts))
	for i := range starts {
		start, end := starts[i], ends[i]
		if start < 0 || end > len(names) || start >= len(names) {
			return nil, fmt.Errorf("%w: [%d, %d) against %d columns", ErrRangeOutOfBounds, start, end, len(names))
		}
		if end <= start {
			return nil, fmt.Errorf("%w: [%d, %d)", ErrEmptyRange, start, end)
		}

		cols := make([]int, 0, end-start)
		for c := start; c < end; c++ {
			cols = append(cols, c)
		}

		sub := df.Select(cols)
		if sub.Error() != nil {
			return nil, fmt.Errorf("selecting columns [%d, %d): %w", start, end, sub.Error())
		}
		out[sliceKey(names[start])] = sub
	}
	return out, nil
}

// sliceKey normalizes a column name into a stable map key.
func sliceKey(name string) string {
	key := keyCleanupRegex.ReplaceAllString(strings.ToLower(name), "_")
	return strings.Trim(key, "_")
}
