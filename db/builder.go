package db

import (
	"strings"

	"github.com/coderi421/routemgr/db/internal/errs"
)

type builder struct {
	sb      strings.Builder // sb is used to build the SQL query string.
	args    []any           // args holds the arguments for the query.
	dialect Dialect
	quoter  byte
}

func newBuilder(d Dialect) builder {
	return builder{
		dialect: d,
		quoter:  d.quoter(),
	}
}

// reset 让 Build 可以重复调用
func (b *builder) reset() {
	b.sb.Reset()
	b.args = nil
}

// quote writes an identifier wrapped in the dialect quote character.
// A dotted name is quoted per part; an embedded quote character is doubled.
func (b *builder) quote(name string) error {
	if name == "" || strings.ContainsRune(name, 0) {
		return errs.NewErrInvalidIdentifier(name)
	}
	for i, part := range strings.Split(name, ".") {
		if part == "" {
			return errs.NewErrInvalidIdentifier(name)
		}
		if i > 0 {
			b.sb.WriteByte('.')
		}
		b.sb.WriteByte(b.quoter)
		for j := 0; j < len(part); j++ {
			if part[j] == b.quoter {
				b.sb.WriteByte(b.quoter)
			}
			b.sb.WriteByte(part[j])
		}
		b.sb.WriteByte(b.quoter)
	}
	return nil
}

func (b *builder) buildColumns(cols []string) error {
	for i, c := range cols {
		if i > 0 {
			b.sb.WriteString(", ")
		}
		if err := b.quote(c); err != nil {
			return err
		}
	}
	return nil
}

// parameter 追加参数并写入对应方言的占位符
func (b *builder) parameter(val any) {
	b.addArgs(val)
	b.dialect.placeholder(&b.sb, len(b.args))
}

// buildPredicates joins the predicates with AND.
func (b *builder) buildPredicates(ps []Predicate) error {
	p := ps[0]
	for i := 1; i < len(ps); i++ {
		p = p.And(ps[i])
	}
	return b.buildExpression(p)
}

func (b *builder) buildWhere(ps []Predicate) error {
	if len(ps) == 0 {
		return nil
	}
	b.sb.WriteString(" WHERE ")
	return b.buildPredicates(ps)
}

// buildExpression 递归构造表达式：
// Column 直接拼接列名，value 加入参数列表，
// Predicate 左右两边如果还是 Predicate 就加上括号
func (b *builder) buildExpression(e Expression) error {
	if e == nil {
		return nil
	}

	switch expr := e.(type) {
	case Column:
		return b.quote(expr.name)
	case value:
		b.parameter(expr.val)
	case RawExpr:
		b.buildRaw(expr)
	case Predicate:
		// Predicate{} 会生成 "WHERE ;"
		if expr.left == nil && expr.op == "" {
			return errs.ErrEmptyPredicate
		}
		if expr.left != nil {
			if err := b.buildSubExpression(expr.left); err != nil {
				return err
			}
		}
		if expr.op == "" {
			// 只有左边，例如 Raw(...).AsPredicate()
			return nil
		}
		if expr.left != nil {
			b.sb.WriteByte(' ')
		}
		b.sb.WriteString(expr.op.String())
		b.sb.WriteByte(' ')
		return b.buildSubExpression(expr.right)
	default:
		return errs.NewErrUnsupportedExpressionType(expr)
	}
	return nil
}

func (b *builder) buildSubExpression(e Expression) error {
	_, isPredicate := e.(Predicate)
	if isPredicate {
		b.sb.WriteByte('(')
	}
	if err := b.buildExpression(e); err != nil {
		return err
	}
	if isPredicate {
		b.sb.WriteByte(')')
	}
	return nil
}

// buildRaw copies the fragment, turning each ? into the dialect placeholder
// for the matching argument.
func (b *builder) buildRaw(r RawExpr) {
	if len(r.args) == 0 {
		b.sb.WriteString(r.raw)
		return
	}
	next := 0
	for i := 0; i < len(r.raw); i++ {
		if r.raw[i] == '?' && next < len(r.args) {
			b.parameter(r.args[next])
			next++
			continue
		}
		b.sb.WriteByte(r.raw[i])
	}
	if next < len(r.args) {
		b.addArgs(r.args[next:]...)
	}
}

func (b *builder) addArgs(args ...any) {
	if b.args == nil {
		b.args = make([]any, 0, 8)
	}
	b.args = append(b.args, args...)
}
