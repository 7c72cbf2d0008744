package dataset

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/google/uuid"
)

// RowIDColumn is the name of the synthetic identifier column attached by
// WithRowID. Callers joining frames on the identifier should drop it again
// with DropColumn once the join is done.
const RowIDColumn = "__row_id"

// WithRowID returns a copy of df with a synthetic identifier column
// appended, containing one fresh UUID per row. The identifier uniquely
// labels each row for the duration of one merge round-trip; it has no
// meaning beyond that.
func WithRowID(df dataframe.DataFrame) dataframe.DataFrame {
	ids := make([]string, df.Nrow())
	for i := range ids {
		ids[i] = uuid.NewString()
	}
	return df.Mutate(series.New(ids, series.String, RowIDColumn))
}

// DropColumn returns df without the named column. Columns not present are
// ignored, keeping the helper safe to call after joins that may or may not
// have carried the column along.
func DropColumn(df dataframe.DataFrame, name string) dataframe.DataFrame {
	kept := make([]string, 0, df.Ncol())
	for _, col := range df.Names() {
		if col != name {
			kept = append(kept, col)
		}
	}
	if len(kept) == df.Ncol() {
		return df
	}
	return df.Select(kept)
}
