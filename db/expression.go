package db

// RawExpr 代表一个原生表达式
// 除了把 ? 替换成当前方言的占位符之外，不会对它进行任何处理
type RawExpr struct {
	raw  string
	args []any
}

func (r RawExpr) expr() {}

// AsPredicate lets a raw fragment such as "active = TRUE" act as a filter.
func (r RawExpr) AsPredicate() Predicate {
	return Predicate{
		left: r,
	}
}

// Raw 创建一个 RawExpr
func Raw(expr string, args ...any) RawExpr {
	return RawExpr{
		raw:  expr,
		args: args,
	}
}
