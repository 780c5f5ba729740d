package db

import (
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// memoryDB 只用于构造 SQL，不会真正建立连接
func memoryDB(t *testing.T, opts ...DBOption) *DB {
	db, err := Open("sqlite3", "file:test.db?cache=shared&mode=memory",
		append([]DBOption{DBWithDialect(Postgres)}, opts...)...)
	require.NoError(t, err)
	return db
}

// sqliteDB opens a private shared-memory sqlite store.
func sqliteDB(t *testing.T, opts ...DBOption) *DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := Open("sqlite3", dsn, opts...)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Disconnect()
	})
	return db
}

func mockDB(t *testing.T, opts ...DBOption) (*DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = mockDB.Close()
	})
	db, err := OpenDB(mockDB, opts...)
	require.NoError(t, err)
	return db, mock
}

