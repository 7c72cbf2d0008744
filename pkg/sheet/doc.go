// Package sheet writes a set of named dataframes into one spreadsheet
// file, one worksheet per frame.
//
// The writer takes an arbitrary name→frame mapping, so any number of
// tables can go into a single workbook. Sheets are created in sorted name
// order to keep output deterministic. Each sheet starts with a header row
// of column names; no index column is written. An existing file at the
// target path is overwritten.
//
// Numeric columns are written as spreadsheet numbers, everything else as
// text, so downstream tooling does not have to re-parse figures out of
// strings.
//
// # Usage
//
//	import "github.com/datakit-go/datakit/pkg/sheet"
//
//	err := sheet.Write("report.xlsx", map[string]dataframe.DataFrame{
//	    "raw":        raw,
//	    "anonymized": anon,
//	})
package sheet
