package float

import (
	"github.com/felixdae/sbv/internal/graph"
	"github.com/felixdae/sbv/internal/kind"
)

const kindBool = kind.Bool

// Classification predicates. Each follows the same two-path dispatch as the
// arithmetic operations but never carries a rounding-mode operand, so
// concrete eligibility depends solely on operand literalness.

// IsNormal reports a normal (not zero, subnormal, infinite, or NaN) value.
func IsNormal(x graph.Value) graph.Value {
	mustFloat("IsNormal", x)
	return graph.Lift1(graph.OpIsNormal, kindBool, nil, evalIsNormal, nil, x)
}

// IsSubnormal reports a subnormal value.
func IsSubnormal(x graph.Value) graph.Value {
	mustFloat("IsSubnormal", x)
	return graph.Lift1(graph.OpIsSubnormal, kindBool, nil, evalIsSubnormal, nil, x)
}

// IsZero reports +0 or -0.
func IsZero(x graph.Value) graph.Value {
	mustFloat("IsZero", x)
	return graph.Lift1(graph.OpIsZero, kindBool, nil, evalIsZero, nil, x)
}

// IsInfinite reports +Inf or -Inf.
func IsInfinite(x graph.Value) graph.Value {
	mustFloat("IsInfinite", x)
	return graph.Lift1(graph.OpIsInfinite, kindBool, nil, evalIsInfinite, nil, x)
}

// IsNaN reports any NaN, whatever its payload.
func IsNaN(x graph.Value) graph.Value {
	mustFloat("IsNaN", x)
	return graph.Lift1(graph.OpIsNaN, kindBool, nil, evalIsNaN, nil, x)
}

// IsNegative reports x < 0 or x == -0. NaN is not negative.
func IsNegative(x graph.Value) graph.Value {
	mustFloat("IsNegative", x)
	return graph.Lift1(graph.OpIsNegative, kindBool, nil, evalIsNegative, nil, x)
}

// IsPositive reports x >= 0 excluding -0. NaN is not positive.
func IsPositive(x graph.Value) graph.Value {
	mustFloat("IsPositive", x)
	return graph.Lift1(graph.OpIsPositive, kindBool, nil, evalIsPositive, nil, x)
}

// Derived predicates. These are boolean compositions, not operation codes;
// they fold concretely exactly when their component predicates do.

// IsNegativeZero reports exactly -0.
func IsNegativeZero(x graph.Value) graph.Value {
	return graph.And(IsZero(x), IsNegative(x))
}

// IsPositiveZero reports exactly +0.
func IsPositiveZero(x graph.Value) graph.Value {
	return graph.And(IsZero(x), IsPositive(x))
}

// IsPoint reports a finite point on the real line: neither NaN nor an
// infinity.
func IsPoint(x graph.Value) graph.Value {
	return graph.Not(graph.Or(IsNaN(x), IsInfinite(x)))
}
