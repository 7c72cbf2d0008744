package sheet_test

import (
	"path/filepath"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/datakit-go/datakit/pkg/sheet"
)

func TestWrite(t *testing.T) {
	people := dataframe.LoadRecords([][]string{
		{"name", "age"},
		{"ada", "36"},
		{"grace", "45"},
	})
	cities := dataframe.LoadRecords([][]string{
		{"city", "population"},
		{"london", "8800000"},
	})

	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, sheet.Write(path, map[string]dataframe.DataFrame{
		"people": people,
		"cities": cities,
	}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"cities", "people"}, f.GetSheetList(), "sheets in sorted name order")

	rows, err := f.GetRows("people")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header row plus one row per record")
	assert.Equal(t, []string{"name", "age"}, rows[0])
	assert.Equal(t, []string{"ada", "36"}, rows[1])
	assert.Equal(t, []string{"grace", "45"}, rows[2])
}

func TestWriteOverwritesExistingFile(t *testing.T) {
	df := dataframe.LoadRecords([][]string{{"a"}, {"1"}})
	path := filepath.Join(t.TempDir(), "out.xlsx")

	require.NoError(t, sheet.Write(path, map[string]dataframe.DataFrame{"first": df}))
	require.NoError(t, sheet.Write(path, map[string]dataframe.DataFrame{"second": df}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"second"}, f.GetSheetList())
}

func TestWriteEmptyMapping(t *testing.T) {
	err := sheet.Write(filepath.Join(t.TempDir(), "out.xlsx"), nil)
	assert.ErrorIs(t, err, sheet.ErrNoSheets)
}
