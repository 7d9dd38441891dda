package float

import (
	"fmt"

	"github.com/felixdae/sbv/internal/graph"
)

// Abs lifts |x|. Total; the only edge behavior is clearing the sign of -0
// and of NaN payloads.
func Abs(x graph.Value) graph.Value {
	mustFloat("Abs", x)
	return graph.Lift1(graph.OpAbs, x.Kind(), nil, evalAbs, nil, x)
}

// Neg lifts -x.
func Neg(x graph.Value) graph.Value {
	mustFloat("Neg", x)
	return graph.Lift1(graph.OpNeg, x.Kind(), nil, evalNeg, nil, x)
}

// Add lifts x + y under the rounding mode rm.
func Add(rm, x, y graph.Value) graph.Value {
	mustSameFloat("Add", x, y)
	return graph.Lift2(graph.OpAdd, x.Kind(), rm, evalAdd, nil, x, y)
}

// Sub lifts x - y under the rounding mode rm.
func Sub(rm, x, y graph.Value) graph.Value {
	mustSameFloat("Sub", x, y)
	return graph.Lift2(graph.OpSub, x.Kind(), rm, evalSub, nil, x, y)
}

// Mul lifts x * y under the rounding mode rm.
func Mul(rm, x, y graph.Value) graph.Value {
	mustSameFloat("Mul", x, y)
	return graph.Lift2(graph.OpMul, x.Kind(), rm, evalMul, nil, x, y)
}

// Div lifts x / y under the rounding mode rm.
func Div(rm, x, y graph.Value) graph.Value {
	mustSameFloat("Div", x, y)
	return graph.Lift2(graph.OpDiv, x.Kind(), rm, evalDiv, nil, x, y)
}

// Sqrt lifts the square root of x under the rounding mode rm.
func Sqrt(rm, x graph.Value) graph.Value {
	mustFloat("Sqrt", x)
	return graph.Lift1(graph.OpSqrt, x.Kind(), rm, evalSqrt, nil, x)
}

// FMA lifts the fused multiply-add x*y + z. It always yields a node, even
// for all-literal operands under NearestTiesToEven: the host has no
// correctly-rounded fused evaluator, and x*y followed by +z would round
// twice.
func FMA(rm, x, y, z graph.Value) graph.Value {
	mustSameFloat("FMA", x, y)
	mustSameFloat("FMA", x, z)
	return graph.Lift3(graph.OpFMA, x.Kind(), rm, nil, nil, x, y, z)
}

// Rem lifts the IEEE remainder x - y*n, n the integer nearest x/y. It is
// always evaluated under NearestTiesToEven and accepts no rounding-mode
// operand.
func Rem(x, y graph.Value) graph.Value {
	mustSameFloat("Rem", x, y)
	return graph.Lift2(graph.OpRem, x.Kind(), nil, evalRem, nil, x, y)
}

// RoundToIntegral lifts rounding x to an integral value of the same kind
// under the rounding mode rm.
func RoundToIntegral(rm, x graph.Value) graph.Value {
	mustFloat("RoundToIntegral", x)
	return graph.Lift1(graph.OpRoundToIntegral, x.Kind(), rm, evalRoundToIntegral, nil, x)
}

// Min lifts IEEE minimum: a NaN operand yields the other operand, and
// min(+0, -0) is -0. No rounding-mode operand.
func Min(x, y graph.Value) graph.Value {
	mustSameFloat("Min", x, y)
	return graph.Lift2(graph.OpMin, x.Kind(), nil, evalMin, nil, x, y)
}

// Max lifts IEEE maximum: a NaN operand yields the other operand, and
// max(+0, -0) is +0. No rounding-mode operand.
func Max(x, y graph.Value) graph.Value {
	mustSameFloat("Max", x, y)
	return graph.Lift2(graph.OpMax, x.Kind(), nil, evalMax, nil, x, y)
}

// ObjectEquals lifts representation-level equality, which deliberately
// disagrees with arithmetic ==: NaN is object-equal to NaN, +0 and -0 are
// object-unequal.
func ObjectEquals(x, y graph.Value) graph.Value {
	mustSameFloat("ObjectEquals", x, y)
	return graph.Lift2(graph.OpObjectEquals, kindBool, nil, evalObjectEquals, nil, x, y)
}

func mustFloat(op string, v graph.Value) {
	if !v.Kind().IsFloat() {
		panic(fmt.Sprintf("float: %s requires a floating operand, got %v", op, v.Kind()))
	}
}

func mustSameFloat(op string, x, y graph.Value) {
	mustFloat(op, x)
	if x.Kind() != y.Kind() {
		panic(fmt.Sprintf("float: %s requires same-kind operands, got %v and %v", op, x.Kind(), y.Kind()))
	}
}
