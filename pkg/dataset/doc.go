// Package dataset provides small positional helpers for gota dataframes:
// locating columns by name prefix, reporting the column layout, slicing a
// frame into named sub-frames by column ranges, and attaching synthetic
// row identifiers.
//
// The helpers are stateless and operate on caller-supplied
// dataframe.DataFrame values; nothing persists between calls. They exist
// for the kind of ad hoc bookkeeping that comes up when reshaping analyst
// datasets: "where does the score block start", "give me every block as
// its own frame", "tag each row so I can join the pieces back together".
//
// # Usage
//
//	import "github.com/datakit-go/datakit/pkg/dataset"
//
//	pos := dataset.FindColumnWithPrefix(df, "score_") // -1 when absent
//
//	blocks, err := dataset.SliceColumns(df, []int{0, 4}, []int{4, 9})
//	// blocks maps a key derived from the first column of each range to
//	// the sub-frame spanning that half-open range.
//
// # Error handling
//
// FindColumnWithPrefix follows the -1 sentinel convention of index
// lookups. SliceColumns validates its range lists and returns sentinel
// errors from this package; everything else defers to gota's own error
// propagation through DataFrame.Error.
package dataset
