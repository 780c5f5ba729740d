package db

import (
	"context"

	"github.com/rs/zerolog"
)

type core struct {
	dialect Dialect
	log     *zerolog.Logger
	mdls    []Middleware
}

// handle 构造好 SQL 之后再进入中间件链，构造失败的语句不会到达驱动
func (c core) handle(ctx context.Context, qc *QueryContext, root Handler) *QueryResult {
	q, err := qc.Builder.Build()
	if err != nil {
		return &QueryResult{Err: err}
	}
	qc.Query = q
	qc.Dialect = c.dialect
	return chain(root, c.mdls)(ctx, qc)
}
