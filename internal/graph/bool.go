package graph

import "github.com/felixdae/sbv/internal/kind"

// Boolean connectives over lifted values. Each folds to a literal when
// every operand is literal, so predicates composed from them inherit the
// concrete/symbolic path of their operands transitively.

// Bool wraps a host boolean as a Value.
func Bool(v bool) Value {
	return Const{Lit: NewBool(v)}
}

// Not negates a boolean value.
func Not(v Value) Value {
	if l, ok := AsLiteral(v); ok {
		return Bool(!l.Bool())
	}
	return NewSymbolic(kind.Bool, func(c *Context) NodeID {
		return c.NewNode(Node{
			Result:   kind.Bool,
			Op:       OpNot,
			Operands: []Ref{c.Resolve(v)},
		})
	})
}

// And is logical conjunction.
func And(x, y Value) Value {
	if lx, ok := AsLiteral(x); ok {
		if ly, ok := AsLiteral(y); ok {
			return Bool(lx.Bool() && ly.Bool())
		}
	}
	return boolNode(OpAnd, x, y)
}

// Or is logical disjunction.
func Or(x, y Value) Value {
	if lx, ok := AsLiteral(x); ok {
		if ly, ok := AsLiteral(y); ok {
			return Bool(lx.Bool() || ly.Bool())
		}
	}
	return boolNode(OpOr, x, y)
}

// Ite selects between two same-kind values. A literal condition folds to
// the chosen branch without realizing the other: the unchosen branch never
// reaches a context, so no node is created for it.
func Ite(cond, then, els Value) Value {
	if l, ok := AsLiteral(cond); ok {
		if l.Bool() {
			return then
		}
		return els
	}
	return NewSymbolic(then.Kind(), func(c *Context) NodeID {
		return c.NewNode(Node{
			Result:   then.Kind(),
			Op:       OpIte,
			Operands: []Ref{c.Resolve(cond), c.Resolve(then), c.Resolve(els)},
		})
	})
}

func boolNode(op Op, x, y Value) Value {
	return NewSymbolic(kind.Bool, func(c *Context) NodeID {
		return c.NewNode(Node{
			Result:   kind.Bool,
			Op:       op,
			Operands: []Ref{c.Resolve(x), c.Resolve(y)},
		})
	})
}
