package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_schemaStatements(t *testing.T) {
	for _, d := range []Dialect{Postgres, MySQL, SQLite3} {
		t.Run(d.Name(), func(t *testing.T) {
			stmts, err := schemaStatements(d)
			require.NoError(t, err)
			require.Len(t, stmts, 3)
			assert.Contains(t, stmts[0], "salesperson")
			assert.Contains(t, stmts[1], "client")
			assert.Contains(t, stmts[2], "route")
		})
	}

	// postgres 保存时区，读回来不会偏移
	stmts, err := schemaStatements(Postgres)
	require.NoError(t, err)
	for _, stmt := range stmts {
		assert.Contains(t, stmt, "created TIMESTAMPTZ NOT NULL")
		assert.Contains(t, stmt, "modified TIMESTAMPTZ,")
	}
}

func TestDB_CreateTables(t *testing.T) {
	var types []string
	db := sqliteDB(t, DBWithMiddlewares(func(next Handler) Handler {
		return func(ctx context.Context, qc *QueryContext) *QueryResult {
			types = append(types, qc.Type)
			return next(ctx, qc)
		}
	}))
	ctx := context.Background()

	require.NoError(t, db.CreateTables(ctx))
	assert.Equal(t, []string{"DDL", "DDL", "DDL"}, types)
	// IF NOT EXISTS，可以重复执行
	require.NoError(t, db.CreateTables(ctx))

	for _, table := range []string{"salesperson", "client", "route"} {
		rows, err := db.SelectRows(ctx, table, nil)
		require.NoError(t, err)
		assert.Empty(t, rows)
	}
}

func TestDB_SQLite3_RoundTrip(t *testing.T) {
	db := sqliteDB(t)
	ctx := context.Background()
	require.NoError(t, db.CreateTables(ctx))

	created := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	res := db.InsertInto(ctx, "salesperson",
		[]string{"name", "email", "created", "active"},
		[]any{"Dwight Schrute", "dwight@dundermifflin.com", created, true})
	require.NoError(t, res.Err())
	id, err := res.LastInsertId()
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	res = db.InsertInto(ctx, "salesperson",
		[]string{"name", "email", "created", "active"},
		[]any{"Mose Schrute", "dwight@dundermifflin.com", created, true})
	assert.ErrorIs(t, res.Err(), ErrDuplicateKey)

	res = db.UpdateRowsByMap(ctx, "salesperson", map[string]any{"active": false}, C("id").EQ(id))
	require.NoError(t, res.Err())

	rows, err := db.SelectRows(ctx, "salesperson", []string{"id", "name", "active"},
		C("email").EQ("dwight@dundermifflin.com"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(1), rows[0]["id"])
	assert.Equal(t, "Dwight Schrute", rows[0]["name"])
	assert.Equal(t, false, rows[0]["active"])

	rows, err = db.SelectRows(ctx, "salesperson", nil, C("email").EQ("jim@dundermifflin.com"))
	require.NoError(t, err)
	assert.Equal(t, []Row{}, rows)
}
