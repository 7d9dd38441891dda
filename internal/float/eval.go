package float

import (
	"fmt"
	"math"

	"github.com/felixdae/sbv/internal/graph"
	"github.com/felixdae/sbv/internal/kind"
)

// Host evaluators. These run only on the concrete dispatch path, with the
// rounding mode absent or NearestTiesToEven, so plain host arithmetic gives
// the correctly rounded result.

const (
	sign32 = uint32(1) << 31
	sign64 = uint64(1) << 63
)

func fields32(f float32) (exp, mant uint32) {
	bits := math.Float32bits(f)
	return bits >> 23 & 0xff, bits & 0x7fffff
}

func fields64(f float64) (exp, mant uint64) {
	bits := math.Float64bits(f)
	return bits >> 52 & 0x7ff, bits & 0xfffffffffffff
}

func evalAbs(x graph.Literal) graph.Literal {
	switch x.Kind() {
	case kind.Float32:
		return graph.NewFloat32(math.Float32frombits(math.Float32bits(x.Float32()) &^ sign32))
	case kind.Float64:
		return graph.NewFloat64(math.Float64frombits(math.Float64bits(x.Float64()) &^ sign64))
	}
	panic(badKind("abs", x))
}

func evalNeg(x graph.Literal) graph.Literal {
	// Flip the sign bit directly; this preserves NaN payloads.
	switch x.Kind() {
	case kind.Float32:
		return graph.NewFloat32(math.Float32frombits(math.Float32bits(x.Float32()) ^ sign32))
	case kind.Float64:
		return graph.NewFloat64(math.Float64frombits(math.Float64bits(x.Float64()) ^ sign64))
	}
	panic(badKind("neg", x))
}

func evalAdd(x, y graph.Literal) graph.Literal {
	switch x.Kind() {
	case kind.Float32:
		return graph.NewFloat32(x.Float32() + y.Float32())
	case kind.Float64:
		return graph.NewFloat64(x.Float64() + y.Float64())
	}
	panic(badKind("add", x))
}

func evalSub(x, y graph.Literal) graph.Literal {
	switch x.Kind() {
	case kind.Float32:
		return graph.NewFloat32(x.Float32() - y.Float32())
	case kind.Float64:
		return graph.NewFloat64(x.Float64() - y.Float64())
	}
	panic(badKind("sub", x))
}

func evalMul(x, y graph.Literal) graph.Literal {
	switch x.Kind() {
	case kind.Float32:
		return graph.NewFloat32(x.Float32() * y.Float32())
	case kind.Float64:
		return graph.NewFloat64(x.Float64() * y.Float64())
	}
	panic(badKind("mul", x))
}

func evalDiv(x, y graph.Literal) graph.Literal {
	switch x.Kind() {
	case kind.Float32:
		return graph.NewFloat32(x.Float32() / y.Float32())
	case kind.Float64:
		return graph.NewFloat64(x.Float64() / y.Float64())
	}
	panic(badKind("div", x))
}

func evalSqrt(x graph.Literal) graph.Literal {
	switch x.Kind() {
	case kind.Float32:
		// Exact double sqrt of a float32 rounds correctly to float32.
		return graph.NewFloat32(float32(math.Sqrt(float64(x.Float32()))))
	case kind.Float64:
		return graph.NewFloat64(math.Sqrt(x.Float64()))
	}
	panic(badKind("sqrt", x))
}

// evalRem computes x - y*n where n is the integer nearest x/y, ties to
// even. The remainder is exact, so the float32 case loses nothing by
// computing in float64.
func evalRem(x, y graph.Literal) graph.Literal {
	switch x.Kind() {
	case kind.Float32:
		return graph.NewFloat32(float32(math.Remainder(float64(x.Float32()), float64(y.Float32()))))
	case kind.Float64:
		return graph.NewFloat64(math.Remainder(x.Float64(), y.Float64()))
	}
	panic(badKind("rem", x))
}

func evalRoundToIntegral(x graph.Literal) graph.Literal {
	switch x.Kind() {
	case kind.Float32:
		return graph.NewFloat32(float32(math.RoundToEven(float64(x.Float32()))))
	case kind.Float64:
		return graph.NewFloat64(math.RoundToEven(x.Float64()))
	}
	panic(badKind("roundToIntegral", x))
}

// minHost and maxHost implement IEEE min/max: a NaN operand yields the
// other operand, and between the two zeros min prefers -0, max prefers +0.
func minHost(x, y float64) float64 {
	switch {
	case math.IsNaN(x):
		return y
	case math.IsNaN(y):
		return x
	case x == y:
		if math.Signbit(x) {
			return x
		}
		return y
	case x < y:
		return x
	default:
		return y
	}
}

func maxHost(x, y float64) float64 {
	switch {
	case math.IsNaN(x):
		return y
	case math.IsNaN(y):
		return x
	case x == y:
		if math.Signbit(x) {
			return y
		}
		return x
	case x > y:
		return x
	default:
		return y
	}
}

func evalMin(x, y graph.Literal) graph.Literal {
	switch x.Kind() {
	case kind.Float32:
		return graph.NewFloat32(float32(minHost(float64(x.Float32()), float64(y.Float32()))))
	case kind.Float64:
		return graph.NewFloat64(minHost(x.Float64(), y.Float64()))
	}
	panic(badKind("min", x))
}

func evalMax(x, y graph.Literal) graph.Literal {
	switch x.Kind() {
	case kind.Float32:
		return graph.NewFloat32(float32(maxHost(float64(x.Float32()), float64(y.Float32()))))
	case kind.Float64:
		return graph.NewFloat64(maxHost(x.Float64(), y.Float64()))
	}
	panic(badKind("max", x))
}

// evalObjectEquals implements representation-level equality: every NaN is
// object-equal to every NaN regardless of payload, +0 and -0 are
// object-unequal, everything else compares by bit pattern (which matches
// host == away from the special cases).
func evalObjectEquals(x, y graph.Literal) graph.Literal {
	switch x.Kind() {
	case kind.Float32:
		fx, fy := x.Float32(), y.Float32()
		if fx != fx && fy != fy {
			return graph.NewBool(true)
		}
		return graph.NewBool(math.Float32bits(fx) == math.Float32bits(fy))
	case kind.Float64:
		fx, fy := x.Float64(), y.Float64()
		if math.IsNaN(fx) && math.IsNaN(fy) {
			return graph.NewBool(true)
		}
		return graph.NewBool(math.Float64bits(fx) == math.Float64bits(fy))
	}
	panic(badKind("objectEquals", x))
}

func evalIsNormal(x graph.Literal) graph.Literal {
	switch x.Kind() {
	case kind.Float32:
		exp, _ := fields32(x.Float32())
		return graph.NewBool(exp != 0 && exp != 0xff)
	case kind.Float64:
		exp, _ := fields64(x.Float64())
		return graph.NewBool(exp != 0 && exp != 0x7ff)
	}
	panic(badKind("isNormal", x))
}

func evalIsSubnormal(x graph.Literal) graph.Literal {
	switch x.Kind() {
	case kind.Float32:
		exp, mant := fields32(x.Float32())
		return graph.NewBool(exp == 0 && mant != 0)
	case kind.Float64:
		exp, mant := fields64(x.Float64())
		return graph.NewBool(exp == 0 && mant != 0)
	}
	panic(badKind("isSubnormal", x))
}

func evalIsZero(x graph.Literal) graph.Literal {
	switch x.Kind() {
	case kind.Float32:
		return graph.NewBool(x.Float32() == 0)
	case kind.Float64:
		return graph.NewBool(x.Float64() == 0)
	}
	panic(badKind("isZero", x))
}

func evalIsInfinite(x graph.Literal) graph.Literal {
	switch x.Kind() {
	case kind.Float32:
		exp, mant := fields32(x.Float32())
		return graph.NewBool(exp == 0xff && mant == 0)
	case kind.Float64:
		return graph.NewBool(math.IsInf(x.Float64(), 0))
	}
	panic(badKind("isInfinite", x))
}

func evalIsNaN(x graph.Literal) graph.Literal {
	switch x.Kind() {
	case kind.Float32:
		f := x.Float32()
		return graph.NewBool(f != f)
	case kind.Float64:
		return graph.NewBool(math.IsNaN(x.Float64()))
	}
	panic(badKind("isNaN", x))
}

// evalIsNegative: x < 0 or x is -0. NaN is neither negative nor positive,
// whatever its sign bit says.
func evalIsNegative(x graph.Literal) graph.Literal {
	switch x.Kind() {
	case kind.Float32:
		f := x.Float32()
		return graph.NewBool(f == f && math.Float32bits(f)&sign32 != 0)
	case kind.Float64:
		f := x.Float64()
		return graph.NewBool(!math.IsNaN(f) && math.Signbit(f))
	}
	panic(badKind("isNegative", x))
}

// evalIsPositive: x >= 0 and x is not -0. +0 counts as positive.
func evalIsPositive(x graph.Literal) graph.Literal {
	switch x.Kind() {
	case kind.Float32:
		f := x.Float32()
		return graph.NewBool(f == f && math.Float32bits(f)&sign32 == 0)
	case kind.Float64:
		f := x.Float64()
		return graph.NewBool(!math.IsNaN(f) && !math.Signbit(f))
	}
	panic(badKind("isPositive", x))
}

func badKind(op string, l graph.Literal) string {
	return fmt.Sprintf("float: %s evaluator on %v literal", op, l.Kind())
}
