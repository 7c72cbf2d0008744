package export

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	_ "modernc.org/sqlite"
)

// ErrBadTableName is returned for table names that are not plain
// identifiers; names are interpolated into DDL and must stay inert.
var ErrBadTableName = errors.New("table name must be a plain identifier")

var identRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLite writes df into the named table of the SQLite database at path,
// creating both as needed. All inserts run in one transaction; on error
// nothing is committed.
func SQLite(ctx context.Context, path, table string, df dataframe.DataFrame) error {
	if df.Error() != nil {
		return fmt.Errorf("invalid dataframe: %w", df.Error())
	}
	if !identRegex.MatchString(table) {
		return fmt.Errorf("%w: %q", ErrBadTableName, table)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, createStmt(table, df)); err != nil {
		return fmt.Errorf("creating table %q: %w", table, err)
	}

	stmt, err := tx.PrepareContext(ctx, insertStmt(table, df))
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	types := df.Types()
	for r := 0; r < df.Nrow(); r++ {
		args := make([]any, df.Ncol())
		for c := 0; c < df.Ncol(); c++ {
			args[c] = sqlValue(df.Elem(r, c), types[c])
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("inserting row %d: %w", r, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing export: %w", err)
	}
	return nil
}

func createStmt(table string, df dataframe.DataFrame) string {
	cols := make([]string, df.Ncol())
	for i, name := range df.Names() {
		cols[i] = fmt.Sprintf("%q %s", name, sqlType(df.Types()[i]))
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %q (%s)", table, strings.Join(cols, ", "))
}

func insertStmt(table string, df dataframe.DataFrame) string {
	cols := make([]string, df.Ncol())
	marks := make([]string, df.Ncol())
	for i, name := range df.Names() {
		cols[i] = fmt.Sprintf("%q", name)
		marks[i] = "?"
	}
	return fmt.Sprintf("INSERT INTO %q (%s) VALUES (%s)",
		table, strings.Join(cols, ", "), strings.Join(marks, ", "))
}

func sqlType(t series.Type) string {
	switch t {
	case series.Int, series.Bool:
		return "INTEGER"
	case series.Float:
		return "REAL"
	default:
		return "TEXT"
	}
}

func sqlValue(e series.Element, t series.Type) any {
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
