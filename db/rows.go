package db

import (
	"context"
	"sort"

	"github.com/coderi421/routemgr/db/internal/errs"
)

// SelectRows runs SELECT <fields> FROM <table> filtered by where.
// An empty fields selects every column. No match is an empty slice and a nil
// error, so callers can tell it apart from a failed query.
func (db *DB) SelectRows(ctx context.Context, table string, fields []string, where ...Predicate) ([]Row, error) {
	rows, err := NewSelector(db).Select(fields...).From(table).Where(where...).GetMulti(ctx)
	if err != nil {
		db.log.Error().Err(err).Str("table", table).Msg("select failed")
		return nil, err
	}
	db.log.Info().Str("table", table).Int("rows", len(rows)).Msg("rows selected")
	return rows, nil
}

// InsertInto inserts one row. fields and values must have the same length,
// otherwise ErrFieldValueMismatch is returned before anything is sent.
func (db *DB) InsertInto(ctx context.Context, table string, fields []string, values []any) Result {
	if len(fields) != len(values) {
		return Result{err: errs.NewErrFieldValueMismatch(len(fields), len(values))}
	}
	res := NewInserter(db).Into(table).Columns(fields...).Values(values...).Exec(ctx)
	db.logWrite("insert", table, res)
	return res
}

// InsertIntoByMap inserts one row keyed by column name.
func (db *DB) InsertIntoByMap(ctx context.Context, table string, fieldValues map[string]any) Result {
	fields, values := splitSorted(fieldValues)
	return db.InsertInto(ctx, table, fields, values)
}

// UpdateRowsByMap sets every column of fieldValues on the rows matched by where.
func (db *DB) UpdateRowsByMap(ctx context.Context, table string, fieldValues map[string]any, where ...Predicate) Result {
	fields, values := splitSorted(fieldValues)
	assigns := make([]Assignment, 0, len(fields))
	for i, f := range fields {
		assigns = append(assigns, Assign(f, values[i]))
	}
	res := NewUpdater(db).Update(table).Set(assigns...).Where(where...).Exec(ctx)
	db.logWrite("update", table, res)
	return res
}

func (db *DB) logWrite(action, table string, res Result) {
	if err := res.Err(); err != nil {
		db.log.Error().Err(err).Str("table", table).Msgf("%s failed", action)
		return
	}
	if n, err := res.RowsAffected(); err == nil {
		db.log.Info().Str("table", table).Int64("rows", n).Msg("rows affected")
	}
}

// splitSorted 按 key 排序，保证生成的 SQL 稳定
func splitSorted(m map[string]any) ([]string, []any) {
	fields := make([]string, 0, len(m))
	for k := range m {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	values := make([]any, 0, len(fields))
	for _, f := range fields {
		values = append(values, m[f])
	}
	return fields, values
}
