package anonymize

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/datakit-go/datakit/pkg/dataset"
)

// countColumn is the partition-size artifact the generalizer attaches to
// its output; Table drops it before joining.
const countColumn = "__partition_size"

// Table returns a copy of df where the quasi-identifier columns have been
// generalized so that every combination of their values occurs in at
// least k rows. All other columns, the row count and the row order are
// unchanged.
func Table(df dataframe.DataFrame, opts ...Option) (dataframe.DataFrame, error) {
	var zero dataframe.DataFrame

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if err := validate(df, cfg); err != nil {
		return zero, err
	}

	// Synthetic identifier so the generalized columns can be merged back.
	tagged := dataset.WithRowID(df)
	if tagged.Error() != nil {
		return zero, fmt.Errorf("attaching row identifier: %w", tagged.Error())
	}

	cols := extractQuasiIdentifiers(tagged, cfg)
	all := make([]int, df.Nrow())
	for i := range all {
		all[i] = i
	}

	parts := partitionRows(cols, all, cfg.k)
	cfg.logger.Debug("partitioned quasi-identifiers",
		slog.Int("k", cfg.k),
		slog.Int("rows", df.Nrow()),
		slog.Int("partitions", len(parts)))

	generalized := generalizedFrame(tagged, cols, parts)
	if generalized.Error() != nil {
		return zero, fmt.Errorf("building generalized columns: %w", generalized.Error())
	}
	generalized = dataset.DropColumn(generalized, countColumn)

	base := tagged.Select(without(tagged.Names(), cfg.quasi))
	joined := base.LeftJoin(generalized, dataset.RowIDColumn)
	if joined.Error() != nil {
		return zero, fmt.Errorf("merging generalized columns: %w", joined.Error())
	}

	out := dataset.DropColumn(joined, dataset.RowIDColumn).Select(df.Names())
	if out.Error() != nil {
		return zero, fmt.Errorf("restoring column order: %w", out.Error())
	}
	return out, nil
}

func validate(df dataframe.DataFrame, cfg *config) error {
	if cfg.k < 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidK, cfg.k)
	}
	if len(cfg.quasi) == 0 {
		return ErrNoQuasiIdentifiers
	}
	if df.Nrow() < cfg.k {
		return fmt.Errorf("%w: %d rows, k=%d", ErrTooFewRows, df.Nrow(), cfg.k)
	}

	names := df.Names()
	for _, group := range [][]string{cfg.quasi, cfg.keep, cfg.sensitive} {
		for _, col := range group {
			if !slices.Contains(names, col) {
				return fmt.Errorf("%w: %q", ErrUnknownColumn, col)
			}
		}
	}
	return nil
}

// extractQuasiIdentifiers flattens the configured columns out of the
// frame. A column is categorical when tagged so explicitly or when its
// series is not numeric.
func extractQuasiIdentifiers(df dataframe.DataFrame, cfg *config) []*qiColumn {
	cols := make([]*qiColumn, 0, len(cfg.quasi))
	for _, name := range cfg.quasi {
		s := df.Col(name)
		col := &qiColumn{name: name}
		switch {
		case cfg.categorical[name], s.Type() == series.String, s.Type() == series.Bool:
			col.categorical = true
			col.cats = s.Records()
		default:
			col.nums = s.Float()
		}
		cols = append(cols, col)
	}
	return cols
}

// generalizedFrame builds the identifier column, one generalized string
// column per quasi-identifier and the partition-size artifact column.
func generalizedFrame(tagged dataframe.DataFrame, cols []*qiColumn, parts [][]int) dataframe.DataFrame {
	n := tagged.Nrow()
	values := make(map[string][]string, len(cols))
	for _, col := range cols {
		values[col.name] = make([]string, n)
	}
	sizes := make([]int, n)

	for _, part := range parts {
		for _, col := range cols {
			g := col.generalized(part)
			for _, idx := range part {
				values[col.name][idx] = g
			}
		}
		for _, idx := range part {
			sizes[idx] = len(part)
		}
	}

	out := []series.Series{
		series.New(tagged.Col(dataset.RowIDColumn).Records(), series.String, dataset.RowIDColumn),
	}
	for _, col := range cols {
		out = append(out, series.New(values[col.name], series.String, col.name))
	}
	out = append(out, series.New(sizes, series.Int, countColumn))
	return dataframe.New(out...)
}

func without(names, exclude []string) []string {
	kept := make([]string, 0, len(names))
	for _, n := range names {
		if !slices.Contains(exclude, n) {
			kept = append(kept, n)
		}
	}
	return kept
}
