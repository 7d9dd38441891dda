package graph

import "github.com/felixdae/sbv/internal/kind"

// Eval1, Eval2, and Eval3 are host evaluators over literals. An evaluator is
// only invoked on the concrete path, after literalness, rounding-mode, and
// guard checks have all passed.
type (
	Eval1 func(Literal) Literal
	Eval2 func(Literal, Literal) Literal
	Eval3 func(Literal, Literal, Literal) Literal
)

// Guard is a concrete-eligibility check on the first operand's literal.
// Returning false forces the symbolic path even for all-literal operands;
// it never signals an error.
type Guard func(Literal) bool

// Lift1 dispatches a unary operation.
//
// The concrete path is taken iff an evaluator exists, the operand is a
// literal, the rounding mode is absent or literally NearestTiesToEven, and
// the guard (if any) passes. It computes the evaluator directly and returns
// a literal Value without touching any realization context. Otherwise the
// result is a symbolic Value whose builder resolves the operand (and the
// rounding-mode operand, when present) in the ambient context and appends
// one node.
func Lift1(op Op, result kind.Kind, rm Value, eval Eval1, guard Guard, x Value) Value {
	if eval != nil && roundingConcrete(rm) {
		if lx, ok := AsLiteral(x); ok && (guard == nil || guard(lx)) {
			return Const{Lit: eval(lx)}
		}
	}
	return NewSymbolic(result, func(c *Context) NodeID {
		return c.NewNode(Node{
			Result:   result,
			Op:       op,
			Rounding: resolveRounding(c, rm),
			Operands: []Ref{c.Resolve(x)},
		})
	})
}

// Lift2 dispatches a binary operation. See Lift1 for the path discipline.
func Lift2(op Op, result kind.Kind, rm Value, eval Eval2, guard Guard, x, y Value) Value {
	if eval != nil && roundingConcrete(rm) {
		if lx, ok := AsLiteral(x); ok && (guard == nil || guard(lx)) {
			if ly, ok := AsLiteral(y); ok {
				return Const{Lit: eval(lx, ly)}
			}
		}
	}
	return NewSymbolic(result, func(c *Context) NodeID {
		return c.NewNode(Node{
			Result:   result,
			Op:       op,
			Rounding: resolveRounding(c, rm),
			Operands: []Ref{c.Resolve(x), c.Resolve(y)},
		})
	})
}

// Lift3 dispatches a ternary operation. See Lift1 for the path discipline.
// FMA passes a nil evaluator here: no correctly-rounded fused evaluator is
// assumed on the host, so it always defers to the backend.
func Lift3(op Op, result kind.Kind, rm Value, eval Eval3, guard Guard, x, y, z Value) Value {
	if eval != nil && roundingConcrete(rm) {
		if lx, ok := AsLiteral(x); ok && (guard == nil || guard(lx)) {
			if ly, ok := AsLiteral(y); ok {
				if lz, ok := AsLiteral(z); ok {
					return Const{Lit: eval(lx, ly, lz)}
				}
			}
		}
	}
	return NewSymbolic(result, func(c *Context) NodeID {
		return c.NewNode(Node{
			Result:   result,
			Op:       op,
			Rounding: resolveRounding(c, rm),
			Operands: []Ref{c.Resolve(x), c.Resolve(y), c.Resolve(z)},
		})
	})
}

// roundingConcrete reports whether the rounding-mode operand permits the
// concrete path: absent, or literally NearestTiesToEven. A symbolic rounding
// mode defers like any other symbolic operand.
func roundingConcrete(rm Value) bool {
	if rm == nil {
		return true
	}
	l, ok := AsLiteral(rm)
	return ok && l.Mode() == NearestTiesToEven
}

func resolveRounding(c *Context, rm Value) *Ref {
	if rm == nil {
		return nil
	}
	r := c.Resolve(rm)
	return &r
}
