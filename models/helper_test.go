package models

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/coderi421/routemgr/db"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// sqliteStore 每个测试一个独立的内存数据库
func sqliteStore(t *testing.T) *db.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	store, err := db.Open("sqlite3", dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Disconnect()
	})
	require.NoError(t, store.CreateTables(context.Background()))
	return store
}

func mockStore(t *testing.T) (*db.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	store, err := db.OpenDB(sqlDB)
	require.NoError(t, err)
	return store, mock
}

func freezeClock(t *testing.T, ts time.Time) {
	prev := now
	now = func() time.Time { return ts }
	t.Cleanup(func() {
		now = prev
	})
}
