package db

import "context"

type Executor interface {
	Exec(ctx context.Context) Result
}

type Querier interface {
	Get(ctx context.Context) (Row, error)
	GetMulti(ctx context.Context) ([]Row, error)
}

type Query struct {
	SQL  string
	Args []any
}

type QueryBuilder interface {
	Build() (*Query, error)
}

// Row 是一行查询结果，key 为列名
type Row map[string]any
