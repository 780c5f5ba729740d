package db

type op string

const (
	opEQ  op = "="
	opNEQ op = "<>"
	opLT  op = "<"
	opGT  op = ">"
	opAND op = "AND"
	opOR  op = "OR"
	opNOT op = "NOT"
)

func (o op) String() string {
	return string(o)
}

// Expression 代表语句，或者语句的部分
type Expression interface {
	expr()
}

// exprOf wraps plain values so they are bound as arguments.
func exprOf(e any) Expression {
	switch expr := e.(type) {
	case Expression:
		return expr
	default:
		return valueOf(expr)
	}
}

// Predicate 代表一个查询条件
// Predicate 可以通过和 Predicate 组合构成复杂的查询条件
type Predicate struct {
	left  Expression
	op    op
	right Expression
}

func (Predicate) expr() {}

func Not(p Predicate) Predicate {
	return Predicate{
		op:    opNOT,
		right: p,
	}
}

func (p Predicate) And(r Predicate) Predicate {
	return Predicate{
		left:  p,
		op:    opAND,
		right: r,
	}
}

func (p Predicate) Or(r Predicate) Predicate {
	return Predicate{
		left:  p,
		op:    opOR,
		right: r,
	}
}
