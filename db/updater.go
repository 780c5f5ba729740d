package db

import (
	"context"

	"github.com/coderi421/routemgr/db/internal/errs"
)

// Updater builds and runs UPDATE <table> SET ... [WHERE ...].
type Updater struct {
	builder

	db      *DB
	table   string
	assigns []Assignment
	where   []Predicate
}

var _ Executor = &Updater{}
var _ QueryBuilder = &Updater{}

func NewUpdater(db *DB) *Updater {
	return &Updater{
		builder: newBuilder(db.dialect),
		db:      db,
	}
}

func (u *Updater) Update(table string) *Updater {
	u.table = table
	return u
}

func (u *Updater) Set(assigns ...Assignment) *Updater {
	u.assigns = assigns
	return u
}

func (u *Updater) Where(ps ...Predicate) *Updater {
	u.where = ps
	return u
}

func (u *Updater) Build() (*Query, error) {
	u.reset()
	if u.table == "" {
		return nil, errs.ErrEmptyTable
	}
	if len(u.assigns) == 0 {
		return nil, errs.ErrNoUpdatedColumns
	}

	u.sb.WriteString("UPDATE ")
	if err := u.quote(u.table); err != nil {
		return nil, err
	}
	u.sb.WriteString(" SET ")
	for i, a := range u.assigns {
		if i > 0 {
			u.sb.WriteString(", ")
		}
		if err := u.buildAssignment(a); err != nil {
			return nil, err
		}
	}
	if err := u.buildWhere(u.where); err != nil {
		return nil, err
	}
	u.sb.WriteByte(';')

	return &Query{
		SQL:  u.sb.String(),
		Args: u.args,
	}, nil
}

func (u *Updater) buildAssignment(a Assignment) error {
	if err := u.quote(a.column); err != nil {
		return err
	}
	u.sb.WriteString(" = ")
	return u.buildExpression(a.val)
}

func (u *Updater) Exec(ctx context.Context) Result {
	res := u.db.handle(ctx, &QueryContext{
		Type:    "UPDATE",
		Table:   u.table,
		Builder: u,
	}, u.execHandler)
	return toResult(res)
}

func (u *Updater) execHandler(ctx context.Context, qc *QueryContext) *QueryResult {
	res, err := u.db.execTx(ctx, qc.Table, qc.Query)
	return &QueryResult{
		Result: res,
		Err:    err,
	}
}
