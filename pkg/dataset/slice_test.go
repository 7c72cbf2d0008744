package dataset_test

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datakit-go/datakit/pkg/dataset"
)

func TestSliceColumns(t *testing.T) {
	df := sampleFrame()

	t.Run("one entry per range with matching widths", func(t *testing.T) {
		blocks, err := dataset.SliceColumns(df, []int{0, 3}, []int{3, 5})
		require.NoError(t, err)
		require.Len(t, blocks, 2)

		ident, ok := blocks["id"]
		require.True(t, ok, "key derived from column at start index 0")
		assert.Equal(t, 3, ident.Ncol())
		assert.Equal(t, []string{"id", "name", "city"}, ident.Names())

		scores, ok := blocks["score_math"]
		require.True(t, ok, "key derived from column at start index 3")
		assert.Equal(t, 2, scores.Ncol())
		assert.Equal(t, df.Nrow(), scores.Nrow())
	})

	t.Run("key normalization collapses odd characters", func(t *testing.T) {
		blocks, err := dataset.SliceColumns(renamedFrame(t, "Total Score (%)"), []int{3}, []int{5})
		require.NoError(t, err)
		_, ok := blocks["total_score"]
		assert.True(t, ok)
	})

	t.Run("mismatched list lengths", func(t *testing.T) {
		_, err := dataset.SliceColumns(df, []int{0, 3}, []int{3})
		assert.ErrorIs(t, err, dataset.ErrRangeLengthMismatch)
	})

	t.Run("out of bounds range", func(t *testing.T) {
		_, err := dataset.SliceColumns(df, []int{0}, []int{99})
		assert.ErrorIs(t, err, dataset.ErrRangeOutOfBounds)
	})

	t.Run("empty range", func(t *testing.T) {
		_, err := dataset.SliceColumns(df, []int{3}, []int{3})
		assert.ErrorIs(t, err, dataset.ErrEmptyRange)
	})
}

func renamedFrame(t *testing.T, scoreName string) (df dataframe.DataFrame) {
	t.Helper()
	df = sampleFrame().Rename(scoreName, "score_math")
	require.NoError(t, df.Error())
	return df
}

func TestWithRowID(t *testing.T) {
	df := sampleFrame()
	tagged := dataset.WithRowID(df)

	require.NoError(t, tagged.Error())
	assert.Equal(t, df.Nrow(), tagged.Nrow())
	assert.Equal(t, df.Ncol()+1, tagged.Ncol())
	assert.Contains(t, tagged.Names(), dataset.RowIDColumn)

	ids := tagged.Col(dataset.RowIDColumn).Records()
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		_, dup := seen[id]
		assert.False(t, dup, "row identifiers must be unique")
		seen[id] = struct{}{}
	}
}

func TestDropColumn(t *testing.T) {
	df := dataset.WithRowID(sampleFrame())

	dropped := dataset.DropColumn(df, dataset.RowIDColumn)
	require.NoError(t, dropped.Error())
	assert.NotContains(t, dropped.Names(), dataset.RowIDColumn)
	assert.Equal(t, sampleFrame().Names(), dropped.Names())

	// Dropping a column that is not there is a no-op.
	same := dataset.DropColumn(dropped, "__missing")
	assert.Equal(t, dropped.Names(), same.Names())
}
