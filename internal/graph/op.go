package graph

import "fmt"

// Op identifies an operation carried by a Node. Each code has fixed arity
// and declares whether it accepts a rounding-mode operand; that metadata
// lives in a dispatch table keyed by the tag, not in per-op types.
type Op uint8

const (
	// OpVar introduces a free symbolic input. Arity 0; the node carries the
	// variable's name.
	OpVar Op = iota

	// Floating arithmetic.
	OpAbs
	OpNeg
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpFMA
	OpSqrt
	OpRem
	OpRoundToIntegral
	OpMin
	OpMax

	// OpObjectEquals is representation-level equality: NaN equals NaN,
	// +0 does not equal -0.
	OpObjectEquals

	// Classification predicates.
	OpIsNormal
	OpIsSubnormal
	OpIsZero
	OpIsInfinite
	OpIsNaN
	OpIsNegative
	OpIsPositive

	// OpCast converts between numeric kinds; source and target kinds are
	// recorded on the operand reference and the node's result kind.
	OpCast

	// OpReinterpret is a pure bit-cast between a float and the same-width
	// unsigned integer, in either direction.
	OpReinterpret

	// Boolean connectives and selection.
	OpNot
	OpAnd
	OpOr
	OpIte

	numOps
)

// OpInfo is the static metadata for an operation code.
type OpInfo struct {
	// Name is the stable display name.
	Name string

	// Arity is the number of ordered operands (excluding the rounding-mode
	// operand).
	Arity int

	// TakesRounding reports whether the operation accepts a rounding-mode
	// operand. Rem and Min/Max never do; Rem is always evaluated under
	// NearestTiesToEven.
	TakesRounding bool
}

var opInfos = [numOps]OpInfo{
	OpVar:             {Name: "var", Arity: 0},
	OpAbs:             {Name: "abs", Arity: 1},
	OpNeg:             {Name: "neg", Arity: 1},
	OpAdd:             {Name: "add", Arity: 2, TakesRounding: true},
	OpSub:             {Name: "sub", Arity: 2, TakesRounding: true},
	OpMul:             {Name: "mul", Arity: 2, TakesRounding: true},
	OpDiv:             {Name: "div", Arity: 2, TakesRounding: true},
	OpFMA:             {Name: "fma", Arity: 3, TakesRounding: true},
	OpSqrt:            {Name: "sqrt", Arity: 1, TakesRounding: true},
	OpRem:             {Name: "rem", Arity: 2},
	OpRoundToIntegral: {Name: "roundToIntegral", Arity: 1, TakesRounding: true},
	OpMin:             {Name: "min", Arity: 2},
	OpMax:             {Name: "max", Arity: 2},
	OpObjectEquals:    {Name: "objectEquals", Arity: 2},
	OpIsNormal:        {Name: "isNormal", Arity: 1},
	OpIsSubnormal:     {Name: "isSubnormal", Arity: 1},
	OpIsZero:          {Name: "isZero", Arity: 1},
	OpIsInfinite:      {Name: "isInfinite", Arity: 1},
	OpIsNaN:           {Name: "isNaN", Arity: 1},
	OpIsNegative:      {Name: "isNegative", Arity: 1},
	OpIsPositive:      {Name: "isPositive", Arity: 1},
	OpCast:            {Name: "cast", Arity: 1, TakesRounding: true},
	OpReinterpret:     {Name: "reinterpret", Arity: 1},
	OpNot:             {Name: "not", Arity: 1},
	OpAnd:             {Name: "and", Arity: 2},
	OpOr:              {Name: "or", Arity: 2},
	OpIte:             {Name: "ite", Arity: 3},
}

// Info returns the static metadata for op.
func (op Op) Info() OpInfo {
	if op >= numOps {
		panic(fmt.Sprintf("graph: invalid op code %d", uint8(op)))
	}
	return opInfos[op]
}

// String returns the operation's display name.
func (op Op) String() string {
	return op.Info().Name
}
