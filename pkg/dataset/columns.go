package dataset

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-gota/gota/dataframe"
)

// FindColumnWithPrefix returns the position of the first column whose name
// starts with prefix, scanning left to right. It returns -1 when no column
// matches.
func FindColumnWithPrefix(df dataframe.DataFrame, prefix string) int {
	for i, name := range df.Names() {
		if strings.HasPrefix(name, prefix) {
			return i
		}
	}
	return -1
}

// ColumnReport writes one line per column to w, pairing each ordinal
// position with the column name at that position. It is a reporting
// utility for eyeballing a frame's layout, not a lookup structure.
func ColumnReport(w io.Writer, df dataframe.DataFrame) error {
	for i, name := range df.Names() {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", i, name); err != nil {
			return fmt.Errorf("writing column report: %w", err)
		}
	}
	return nil
}
