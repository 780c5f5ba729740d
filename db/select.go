package db

import (
	"context"

	"github.com/coderi421/routemgr/db/internal/errs"
)

// Selector builds and runs SELECT <fields> FROM <table> [WHERE ...].
type Selector struct {
	builder

	db      *DB
	table   string
	columns []string
	where   []Predicate
}

var _ Querier = &Selector{}
var _ QueryBuilder = &Selector{}

func NewSelector(db *DB) *Selector {
	return &Selector{
		builder: newBuilder(db.dialect),
		db:      db,
	}
}

// Select 检索指定 column，不指定时为 *
func (s *Selector) Select(cols ...string) *Selector {
	s.columns = cols
	return s
}

func (s *Selector) From(tbl string) *Selector {
	s.table = tbl
	return s
}

// Where 用于构造 WHERE 查询条件。如果 ps 长度为 0，那么不会构造 WHERE 部分
func (s *Selector) Where(ps ...Predicate) *Selector {
	s.where = ps
	return s
}

func (s *Selector) Build() (*Query, error) {
	s.reset()
	if s.table == "" {
		return nil, errs.ErrEmptyTable
	}

	s.sb.WriteString("SELECT ")
	if len(s.columns) == 0 {
		s.sb.WriteByte('*')
	} else if err := s.buildColumns(s.columns); err != nil {
		return nil, err
	}
	s.sb.WriteString(" FROM ")
	if err := s.quote(s.table); err != nil {
		return nil, err
	}
	if err := s.buildWhere(s.where); err != nil {
		return nil, err
	}
	s.sb.WriteByte(';')

	return &Query{
		SQL:  s.sb.String(),
		Args: s.args,
	}, nil
}

// GetMulti returns every matching row; no match is an empty slice.
func (s *Selector) GetMulti(ctx context.Context) ([]Row, error) {
	res := s.db.handle(ctx, &QueryContext{
		Type:    "SELECT",
		Table:   s.table,
		Builder: s,
	}, s.queryHandler)
	if res.Err != nil {
		return nil, res.Err
	}
	rows, _ := res.Result.([]Row)
	if rows == nil {
		rows = []Row{}
	}
	return rows, nil
}

// Get returns the first matching row or ErrNoRows.
func (s *Selector) Get(ctx context.Context) (Row, error) {
	rows, err := s.GetMulti(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errs.ErrNoRows
	}
	return rows[0], nil
}

func (s *Selector) queryHandler(ctx context.Context, qc *QueryContext) *QueryResult {
	rows, err := s.db.queryRows(ctx, qc.Query)
	return &QueryResult{
		Result: rows,
		Err:    err,
	}
}
