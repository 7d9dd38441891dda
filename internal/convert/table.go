package convert

import (
	"math"
	"math/big"

	"github.com/felixdae/sbv/internal/graph"
	"github.com/felixdae/sbv/internal/kind"
)

// guard names the concrete-eligibility policy of a conversion rule.
type guard uint8

const (
	guardNone guard = iota
	guardFinitePoint
	guardExactValue
)

// rule is one entry of the conversion table.
type rule struct {
	guard guard
	eval  graph.Eval1
}

var rules = map[[2]kind.Kind]rule{}

var integralKinds = []kind.Kind{
	kind.Int8, kind.Int16, kind.Int32, kind.Int64,
	kind.Uint8, kind.Uint16, kind.Uint32, kind.Uint64,
	kind.BigInt,
}

func init() {
	rules[[2]kind.Kind{kind.Float32, kind.Float64}] = rule{guardNone, widenToFloat64}
	rules[[2]kind.Kind{kind.Float64, kind.Float32}] = rule{guardNone, narrowToFloat32}

	for _, f := range []kind.Kind{kind.Float32, kind.Float64} {
		for _, ik := range integralKinds {
			rules[[2]kind.Kind{f, ik}] = rule{guardFinitePoint, floatToIntegral(ik)}
			rules[[2]kind.Kind{ik, f}] = rule{guardNone, numericToFloat(f)}
		}
		rules[[2]kind.Kind{f, kind.Rational}] = rule{guardExactValue, floatToRational}
		rules[[2]kind.Kind{kind.Rational, f}] = rule{guardExactValue, numericToFloat(f)}
	}
}

func widenToFloat64(l graph.Literal) graph.Literal {
	return graph.NewFloat64(float64(l.Float32()))
}

func narrowToFloat32(l graph.Literal) graph.Literal {
	return graph.NewFloat32(float32(l.Float64()))
}

// hostFloat64 widens either floating literal to float64 (exact for float32
// sources).
func hostFloat64(l graph.Literal) float64 {
	if l.Kind() == kind.Float32 {
		return float64(l.Float32())
	}
	return l.Float64()
}

// floatToIntegral rounds a finite float to the nearest integer, ties to
// even, then reduces modulo 2^w into the target's two's complement range.
// The guard keeps non-finite sources off this path.
func floatToIntegral(to kind.Kind) graph.Eval1 {
	return func(l graph.Literal) graph.Literal {
		r := math.RoundToEven(hostFloat64(l))
		n, _ := new(big.Float).SetFloat64(r).Int(nil)
		if to == kind.BigInt {
			return graph.NewBigInt(n)
		}
		w := to.Desc().Bits
		mask := new(big.Int).Lsh(big.NewInt(1), uint(w))
		mask.Sub(mask, big.NewInt(1))
		u := new(big.Int).And(n, mask).Uint64()
		if to.IsUnsigned() {
			return graph.NewUint(to, u)
		}
		return graph.NewInt(to, signExtend(u, w))
	}
}

// floatToRational converts a finite float to the exact rational it denotes.
func floatToRational(l graph.Literal) graph.Literal {
	r := new(big.Rat).SetFloat64(hostFloat64(l))
	return graph.NewRational(r)
}

// numericToFloat rounds an integral or rational literal to the target
// floating kind. Host conversions and the big package both round to
// nearest, ties to even, which is the only mode reaching this path.
func numericToFloat(to kind.Kind) graph.Eval1 {
	return func(l graph.Literal) graph.Literal {
		switch {
		case l.Kind() == kind.BigInt:
			bf := new(big.Float).SetInt(l.BigInt())
			if to == kind.Float32 {
				f, _ := bf.Float32()
				return graph.NewFloat32(f)
			}
			f, _ := bf.Float64()
			return graph.NewFloat64(f)
		case l.Kind() == kind.Rational:
			if to == kind.Float32 {
				f, _ := l.Rat().Float32()
				return graph.NewFloat32(f)
			}
			f, _ := l.Rat().Float64()
			return graph.NewFloat64(f)
		case l.Kind().IsUnsigned():
			if to == kind.Float32 {
				return graph.NewFloat32(float32(l.Uint64()))
			}
			return graph.NewFloat64(float64(l.Uint64()))
		case l.Kind().IsFixed():
			if to == kind.Float32 {
				return graph.NewFloat32(float32(l.Int64()))
			}
			return graph.NewFloat64(float64(l.Int64()))
		}
		panic("convert: numericToFloat on " + l.Kind().String())
	}
}

func signExtend(v uint64, w int) int64 {
	if w >= 64 {
		return int64(v)
	}
	if v&(uint64(1)<<(w-1)) != 0 {
		return int64(v | ^((uint64(1)<<w)-1))
	}
	return int64(v)
}

// litIsPoint reports a finite floating literal (not NaN, not an infinity).
func litIsPoint(l graph.Literal) bool {
	f := hostFloat64(l)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// litIsExact reports whether a literal denotes an exact value: finite for
// floats, the exactness flag for rationals.
func litIsExact(l graph.Literal) bool {
	switch l.Kind() {
	case kind.Float32, kind.Float64:
		return litIsPoint(l)
	case kind.Rational:
		return l.Exact()
	}
	return true
}
