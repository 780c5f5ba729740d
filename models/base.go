// Package models holds the active records of the route manager: each value
// wraps one row and carries the CRUD operations bound to it.
package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coderi421/routemgr/db"
	"github.com/rs/zerolog"
)

// UnpersistedID marks a record that has no row yet.
const UnpersistedID int64 = -1

var (
	ErrNotImplemented   = errors.New("models: not implemented")
	ErrNotFound         = errors.New("models: record not found")
	ErrInvalidID        = errors.New("models: id must be an integer >= 0")
	ErrAlreadyPersisted = errors.New("models: record is already persisted")
	ErrAmbiguousMatch   = errors.New("models: more than one row matched")
	ErrTableMismatch    = errors.New("models: table name does not match")
)

// Store is what a record needs from the database. *db.DB satisfies it.
type Store interface {
	SelectRows(ctx context.Context, table string, fields []string, where ...db.Predicate) ([]db.Row, error)
	InsertInto(ctx context.Context, table string, fields []string, values []any) db.Result
	UpdateRowsByMap(ctx context.Context, table string, fieldValues map[string]any, where ...db.Predicate) db.Result
	Logger() *zerolog.Logger
}

var _ Store = (*db.DB)(nil)

// Record is the CRUD contract every model exposes.
type Record interface {
	ID() int64
	TableName() string
	ExistsInDB(ctx context.Context, store Store) (bool, error)
	InsertIntoDB(ctx context.Context, store Store) error
	UpdateDataInDB(ctx context.Context, store Store) error
	SoftDeleteDataInDB(ctx context.Context, store Store) error
	ExportMap() (map[string]any, error)
	ImportMap(data map[string]any) error
}

// BaseModel carries identity, timestamps and the soft-delete flag.
// Its contract methods all return ErrNotImplemented.
type BaseModel struct {
	id        int64
	tableName string

	Created  *time.Time
	Modified *time.Time
	Active   bool
}

func NewBaseModel(tableName string) BaseModel {
	return BaseModel{
		id:        UnpersistedID,
		tableName: tableName,
		Active:    true,
	}
}

func (m *BaseModel) ID() int64 {
	return m.id
}

// SetID adopts a store-assigned id.
func (m *BaseModel) SetID(id int64) error {
	if id < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidID, id)
	}
	m.id = id
	return nil
}

func (m *BaseModel) TableName() string {
	return m.tableName
}

func (m *BaseModel) Persisted() bool {
	return m.id >= 0
}

func (m *BaseModel) ExistsInDB(context.Context, Store) (bool, error) {
	return false, ErrNotImplemented
}

func (m *BaseModel) InsertIntoDB(context.Context, Store) error {
	return ErrNotImplemented
}

func (m *BaseModel) UpdateDataInDB(context.Context, Store) error {
	return ErrNotImplemented
}

func (m *BaseModel) SoftDeleteDataInDB(context.Context, Store) error {
	return ErrNotImplemented
}

func (m *BaseModel) ExportMap() (map[string]any, error) {
	return nil, ErrNotImplemented
}

func (m *BaseModel) ImportMap(map[string]any) error {
	return ErrNotImplemented
}

func (m *BaseModel) String() string {
	return fmt.Sprintf("<BaseModel(table_name=%q; id=%d; created=%s; modified=%s; active=%t)>",
		m.tableName, m.id, formatTime(m.Created), formatTime(m.Modified), m.Active)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "<nil>"
	}
	return t.Format(time.RFC3339Nano)
}
