package db

import (
	"context"
)

// RawQuerier 执行原生 SQL，语句原样交给驱动
type RawQuerier struct {
	db    *DB
	table string
	sql   string
	args  []any
}

var _ Executor = &RawQuerier{}

func RawQuery(db *DB, query string, args ...any) *RawQuerier {
	return &RawQuerier{
		db:   db,
		sql:  query,
		args: args,
	}
}

// On records the table the statement touches, for middlewares.
func (r *RawQuerier) On(table string) *RawQuerier {
	r.table = table
	return r
}

func (r *RawQuerier) Build() (*Query, error) {
	return &Query{
		SQL:  r.sql,
		Args: r.args,
	}, nil
}

// Exec runs the statement in its own transaction.
func (r *RawQuerier) Exec(ctx context.Context) Result {
	res := r.db.handle(ctx, &QueryContext{
		Type:    "RAW",
		Table:   r.table,
		Builder: r,
	}, func(ctx context.Context, qc *QueryContext) *QueryResult {
		res, err := r.db.execTx(ctx, qc.Table, qc.Query)
		return &QueryResult{Result: res, Err: err}
	})
	return toResult(res)
}

func (r *RawQuerier) GetMulti(ctx context.Context) ([]Row, error) {
	res := r.db.handle(ctx, &QueryContext{
		Type:    "RAW",
		Table:   r.table,
		Builder: r,
	}, func(ctx context.Context, qc *QueryContext) *QueryResult {
		rows, err := r.db.queryRows(ctx, qc.Query)
		return &QueryResult{Result: rows, Err: err}
	})
	if res.Err != nil {
		return nil, res.Err
	}
	rows, _ := res.Result.([]Row)
	if rows == nil {
		rows = []Row{}
	}
	return rows, nil
}
