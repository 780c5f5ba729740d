package db

import (
	"context"
)

// QueryContext 中间件的上下文
// Query 在进入中间件之前就已经构造好，中间件不需要再调用 Builder.Build
type QueryContext struct {
	// Type 声明查询类型。即 SELECT, INSERT, UPDATE 或者 DDL
	Type string
	// Table 是语句操作的表，DDL 和原生查询时可能为空
	Table   string
	Dialect Dialect

	// Builder 使用的时候，大多数情况下你需要转换到具体的类型
	Builder QueryBuilder
	Query   *Query
}

type QueryResult struct {
	// Result 在不同的查询里面，类型是不同的
	// SELECT 里面是 []Row，其它情况下是 sql.Result
	Result any
	Err    error
}

type Middleware func(next Handler) Handler

type Handler func(ctx context.Context, qc *QueryContext) *QueryResult

// chain wraps root with the middlewares, the first one being the outermost.
func chain(root Handler, mdls []Middleware) Handler {
	for i := len(mdls) - 1; i >= 0; i-- {
		root = mdls[i](root)
	}
	return root
}
