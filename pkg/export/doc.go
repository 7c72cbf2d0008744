// Package export persists dataframes into embedded SQLite databases.
//
// It is the durable counterpart of the spreadsheet writer: where a
// workbook is handed to a human, a SQLite file is handed to the next
// script. Column types are inferred from the frame's series types
// (INTEGER, REAL, TEXT), the target table is created if absent, and all
// rows are inserted inside a single transaction so a failed export leaves
// no partial table behind.
//
// # Usage
//
//	import "github.com/datakit-go/datakit/pkg/export"
//
//	err := export.SQLite(ctx, "results.db", "scores", df)
package export
