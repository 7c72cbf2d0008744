package sheet

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
)

// ErrNoSheets is returned when Write is called with an empty mapping; a
// workbook must contain at least one worksheet.
var ErrNoSheets = errors.New("no sheets to write")

// Write stores every frame in sheets as its own worksheet in a new
// workbook at path, overwriting any existing file. Sheet order follows
// sorted sheet names. Each worksheet gets a header row and no index
// column.
func Write(path string, sheets map[string]dataframe.DataFrame) error {
	if len(sheets) == 0 {
		return ErrNoSheets
	}

	names := make([]string, 0, len(sheets))
	for name := range sheets {
		names = append(names, name)
	}
	sort.Strings(names)

	f := excelize.NewFile()
	defer f.Close()

	// Recycle the default sheet as the first one instead of deleting it.
	if err := f.SetSheetName(f.GetSheetName(0), names[0]); err != nil {
		return fmt.Errorf("renaming default sheet: %w", err)
	}
	for _, name := range names[1:] {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("creating sheet %q: %w", name, err)
		}
	}

	for _, name := range names {
		if err := writeFrame(f, name, sheets[name]); err != nil {
			return fmt.Errorf("writing sheet %q: %w", name, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func writeFrame(f *excelize.File, name string, df dataframe.DataFrame) error {
	if df.Error() != nil {
		return df.Error()
	}

	header := make([]any, df.Ncol())
	for i, col := range df.Names() {
		header[i] = col
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return err
	}

	types := df.Types()
	for r := 0; r < df.Nrow(); r++ {
		row := make([]any, df.Ncol())
		for c := 0; c < df.Ncol(); c++ {
			row[c] = cellValue(df.Elem(r, c), types[c])
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// cellValue maps a frame element onto the value excelize should store:
// numbers stay numbers, missing values become empty cells.
func cellValue(e series.Element, t series.Type) any {
	if e.IsNA() {
		return nil
	}
	switch t {
	case series.Int:
		if v, err := e.Int(); err == nil {
			return v
		}
	case series.Float:
		return e.Float()
	case series.Bool:
		if v, err := e.Bool(); err == nil {
			return v
		}
	}
	return e.String()
}
