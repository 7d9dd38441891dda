package convert

import (
	"fmt"
	"math/big"

	"github.com/felixdae/sbv/internal/float"
	"github.com/felixdae/sbv/internal/graph"
	"github.com/felixdae/sbv/internal/kind"
)

// NonPointValue is the defined result of converting a non-finite float
// (NaN or an infinity) to an integral kind. The choice of 0 is arbitrary
// for an otherwise-undefined case, but it is a fixed policy, not an error;
// it is a variable only so callers can observe and, if they must, override
// the policy in one place.
var NonPointValue int64 = 0

// Convert casts v to the target kind under the rounding mode rm.
//
// The conversion table covers every pair of kinds with a floating kind on
// at least one side; asking for any other pair is caller misuse and panics.
// Identity conversions return v itself and never produce a node.
func Convert(rm, v graph.Value, to kind.Kind) graph.Value {
	from := v.Kind()
	if from == to {
		return v
	}
	r, ok := rules[[2]kind.Kind{from, to}]
	if !ok {
		panic(fmt.Sprintf("convert: no conversion from %v to %v", from, to))
	}

	switch r.guard {
	case guardFinitePoint:
		// The raw cast is only trustworthy on a finite point. Guard the
		// concrete path, and fence the symbolic path with the same check:
		// a non-finite source selects the policy value instead. A literal
		// source folds the selection, so the unchosen branch never
		// allocates a node.
		raw := graph.Lift1(graph.OpCast, to, rm, r.eval, litIsPoint, v)
		return graph.Ite(float.IsPoint(v), raw, nonPointFallback(to))
	case guardExactValue:
		return graph.Lift1(graph.OpCast, to, rm, r.eval, litIsExact, v)
	default:
		return graph.Lift1(graph.OpCast, to, rm, r.eval, nil, v)
	}
}

// ToFloat32 casts a value of any supported kind to float32.
func ToFloat32(rm, v graph.Value) graph.Value {
	return Convert(rm, v, kind.Float32)
}

// ToFloat64 casts a value of any supported kind to float64.
func ToFloat64(rm, v graph.Value) graph.Value {
	return Convert(rm, v, kind.Float64)
}

// FromFloat32 casts a float32 value to the target kind.
func FromFloat32(rm, v graph.Value, to kind.Kind) graph.Value {
	if v.Kind() != kind.Float32 {
		panic(fmt.Sprintf("convert: FromFloat32 on %v value", v.Kind()))
	}
	return Convert(rm, v, to)
}

// FromFloat64 casts a float64 value to the target kind.
func FromFloat64(rm, v graph.Value, to kind.Kind) graph.Value {
	if v.Kind() != kind.Float64 {
		panic(fmt.Sprintf("convert: FromFloat64 on %v value", v.Kind()))
	}
	return Convert(rm, v, to)
}

// nonPointFallback wraps the policy value as a literal of the target kind.
func nonPointFallback(to kind.Kind) graph.Value {
	if NonPointValue == 0 {
		return graph.Const{Lit: graph.Zero(to)}
	}
	if to.IsUnsigned() {
		return graph.Const{Lit: graph.NewUint(to, uint64(NonPointValue))}
	}
	if to == kind.BigInt {
		return graph.Const{Lit: graph.NewBigInt(big.NewInt(NonPointValue))}
	}
	return graph.Const{Lit: graph.NewInt(to, NonPointValue)}
}
