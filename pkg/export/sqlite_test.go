package export_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/datakit-go/datakit/pkg/export"
)

func TestSQLite(t *testing.T) {
	df := dataframe.LoadRecords([][]string{
		{"name", "age", "score"},
		{"ada", "36", "91.5"},
		{"grace", "45", "88.0"},
	})

	path := filepath.Join(t.TempDir(), "out.db")
	require.NoError(t, export.SQLite(context.Background(), path, "people", df))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM people").Scan(&count))
	assert.Equal(t, 2, count)

	var name string
	var age int
	var score float64
	require.NoError(t, db.QueryRow(
		"SELECT name, age, score FROM people WHERE name = 'ada'").Scan(&name, &age, &score))
	assert.Equal(t, "ada", name)
	assert.Equal(t, 36, age)
	assert.InDelta(t, 91.5, score, 1e-9)
}

func TestSQLiteAppendsOnSecondExport(t *testing.T) {
	df := dataframe.LoadRecords([][]string{{"n"}, {"1"}})
	path := filepath.Join(t.TempDir(), "out.db")

	ctx := context.Background()
	require.NoError(t, export.SQLite(ctx, path, "t", df))
	require.NoError(t, export.SQLite(ctx, path, "t", df))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM t").Scan(&count))
	assert.Equal(t, 2, count)
}

func TestSQLiteRejectsBadTableName(t *testing.T) {
	df := dataframe.LoadRecords([][]string{{"n"}, {"1"}})
	err := export.SQLite(context.Background(), filepath.Join(t.TempDir(), "out.db"), "bad name;", df)
	assert.ErrorIs(t, err, export.ErrBadTableName)
}
