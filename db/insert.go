package db

import (
	"context"
	"database/sql"

	"github.com/coderi421/routemgr/db/internal/errs"
)

// Inserter builds and runs a single-row parameterized INSERT.
type Inserter struct {
	builder

	db      *DB
	table   string
	columns []string
	values  []any
}

var _ Executor = &Inserter{}
var _ QueryBuilder = &Inserter{}

func NewInserter(db *DB) *Inserter {
	return &Inserter{
		builder: newBuilder(db.dialect),
		db:      db,
	}
}

func (i *Inserter) Into(table string) *Inserter {
	i.table = table
	return i
}

// Columns 指定插入的列，顺序和 Values 一一对应
func (i *Inserter) Columns(cols ...string) *Inserter {
	i.columns = cols
	return i
}

func (i *Inserter) Values(vals ...any) *Inserter {
	i.values = vals
	return i
}

func (i *Inserter) Build() (*Query, error) {
	i.reset()
	if i.table == "" {
		return nil, errs.ErrEmptyTable
	}
	if len(i.columns) != len(i.values) {
		return nil, errs.NewErrFieldValueMismatch(len(i.columns), len(i.values))
	}
	if len(i.columns) == 0 {
		return nil, errs.ErrNoColumns
	}

	i.sb.WriteString("INSERT INTO ")
	if err := i.quote(i.table); err != nil {
		return nil, err
	}
	i.sb.WriteString(" (")
	if err := i.buildColumns(i.columns); err != nil {
		return nil, err
	}
	i.sb.WriteString(") VALUES (")

	i.args = make([]any, 0, len(i.values))
	for idx, val := range i.values {
		if idx > 0 {
			i.sb.WriteString(", ")
		}
		i.parameter(val)
	}
	i.sb.WriteString(");")

	return &Query{
		SQL:  i.sb.String(),
		Args: i.args,
	}, nil
}

func (i *Inserter) Exec(ctx context.Context) Result {
	res := i.db.handle(ctx, &QueryContext{
		Type:    "INSERT",
		Table:   i.table,
		Builder: i,
	}, i.execHandler)
	return toResult(res)
}

func (i *Inserter) execHandler(ctx context.Context, qc *QueryContext) *QueryResult {
	res, err := i.db.execTx(ctx, qc.Table, qc.Query)
	return &QueryResult{
		Result: res,
		Err:    err,
	}
}

func toResult(res *QueryResult) Result {
	var sqlRes sql.Result
	if r, ok := res.Result.(sql.Result); ok {
		sqlRes = r
	}
	return Result{
		err: res.Err,
		res: sqlRes,
	}
}
