package graph

import (
	"fmt"
	"math"
	"math/big"

	"github.com/felixdae/sbv/internal/kind"
)

// Literal is a fully host-known constant of some Kind. Literals are value
// types with no owning context; resolving one never touches a node table.
//
// Fixed-width integers are stored as a two's complement payload masked to
// the kind's width, so signed and unsigned kinds share one representation.
type Literal struct {
	k     kind.Kind
	b     bool
	f32   float32
	f64   float64
	word  uint64
	big   *big.Int
	rat   *big.Rat
	exact bool
	mode  RoundingMode
}

// NewBool wraps a host boolean.
func NewBool(v bool) Literal {
	return Literal{k: kind.Bool, b: v}
}

// NewFloat32 wraps a host float32, including NaN payloads and signed zeros.
func NewFloat32(v float32) Literal {
	return Literal{k: kind.Float32, f32: v}
}

// NewFloat64 wraps a host float64, including NaN payloads and signed zeros.
func NewFloat64(v float64) Literal {
	return Literal{k: kind.Float64, f64: v}
}

// NewInt wraps v as a literal of the signed fixed-width kind k.
// The payload is reduced to k's width.
func NewInt(k kind.Kind, v int64) Literal {
	if !k.IsFixed() || k.IsUnsigned() {
		panic(fmt.Sprintf("graph: NewInt called with non-signed kind %v", k))
	}
	return Literal{k: k, word: maskWord(uint64(v), k.Desc().Bits)}
}

// NewUint wraps v as a literal of the unsigned fixed-width kind k.
// The payload is reduced to k's width.
func NewUint(k kind.Kind, v uint64) Literal {
	if !k.IsUnsigned() {
		panic(fmt.Sprintf("graph: NewUint called with non-unsigned kind %v", k))
	}
	return Literal{k: k, word: maskWord(v, k.Desc().Bits)}
}

// NewBigInt wraps an arbitrary-precision integer. The literal does not copy
// v; callers must not mutate it afterwards.
func NewBigInt(v *big.Int) Literal {
	return Literal{k: kind.BigInt, big: v}
}

// NewRational wraps an exact rational. Exact rationals are eligible for the
// concrete conversion path.
func NewRational(v *big.Rat) Literal {
	return Literal{k: kind.Rational, rat: v, exact: true}
}

// NewAlgebraic wraps a rational approximation of an algebraic number. The
// value is concrete but inexact, so conversions from it always defer to the
// symbolic path.
func NewAlgebraic(approx *big.Rat) Literal {
	return Literal{k: kind.Rational, rat: approx, exact: false}
}

// NewRoundMode wraps a concrete rounding mode.
func NewRoundMode(m RoundingMode) Literal {
	return Literal{k: kind.RoundMode, mode: m}
}

// Zero returns the zero literal of a numeric kind. It is the defined result
// of converting a non-finite float to an integral kind.
func Zero(k kind.Kind) Literal {
	switch {
	case k == kind.Float32:
		return NewFloat32(0)
	case k == kind.Float64:
		return NewFloat64(0)
	case k.IsFixed():
		return Literal{k: k}
	case k == kind.BigInt:
		return NewBigInt(new(big.Int))
	case k == kind.Rational:
		return NewRational(new(big.Rat))
	}
	panic(fmt.Sprintf("graph: no zero literal for kind %v", k))
}

// Kind returns the literal's kind tag.
func (l Literal) Kind() kind.Kind { return l.k }

// Bool returns the payload of a Bool literal.
func (l Literal) Bool() bool { l.mustKind(kind.Bool); return l.b }

// Float32 returns the payload of a Float32 literal.
func (l Literal) Float32() float32 { l.mustKind(kind.Float32); return l.f32 }

// Float64 returns the payload of a Float64 literal.
func (l Literal) Float64() float64 { l.mustKind(kind.Float64); return l.f64 }

// Int64 returns the sign-extended payload of a signed fixed-width literal.
func (l Literal) Int64() int64 {
	if !l.k.IsFixed() || l.k.IsUnsigned() {
		panic(fmt.Sprintf("graph: Int64 on %v literal", l.k))
	}
	return signExtend(l.word, l.k.Desc().Bits)
}

// Uint64 returns the payload of an unsigned fixed-width literal.
func (l Literal) Uint64() uint64 {
	if !l.k.IsUnsigned() {
		panic(fmt.Sprintf("graph: Uint64 on %v literal", l.k))
	}
	return l.word
}

// BigInt returns the payload of a BigInt literal. Callers must not mutate
// the result.
func (l Literal) BigInt() *big.Int { l.mustKind(kind.BigInt); return l.big }

// Rat returns the payload of a Rational literal. Callers must not mutate
// the result.
func (l Literal) Rat() *big.Rat { l.mustKind(kind.Rational); return l.rat }

// Exact reports whether a Rational literal is exact rather than an
// algebraic approximation.
func (l Literal) Exact() bool { l.mustKind(kind.Rational); return l.exact }

// Mode returns the payload of a RoundMode literal.
func (l Literal) Mode() RoundingMode { l.mustKind(kind.RoundMode); return l.mode }

// String renders a bit-faithful debug form. Floats print as bit patterns so
// distinct NaN payloads and signed zeros stay distinguishable.
func (l Literal) String() string {
	switch {
	case l.k == kind.Bool:
		return fmt.Sprintf("%v", l.b)
	case l.k == kind.Float32:
		return fmt.Sprintf("f32(0x%08x)", math.Float32bits(l.f32))
	case l.k == kind.Float64:
		return fmt.Sprintf("f64(0x%016x)", math.Float64bits(l.f64))
	case l.k.IsUnsigned():
		return fmt.Sprintf("u%d(%d)", l.k.Desc().Bits, l.word)
	case l.k.IsFixed():
		return fmt.Sprintf("i%d(%d)", l.k.Desc().Bits, l.Int64())
	case l.k == kind.BigInt:
		return fmt.Sprintf("int(%s)", l.big.String())
	case l.k == kind.Rational:
		if l.exact {
			return fmt.Sprintf("rat(%s)", l.rat.RatString())
		}
		return fmt.Sprintf("rat(~%s)", l.rat.RatString())
	case l.k == kind.RoundMode:
		return l.mode.String()
	}
	panic(fmt.Sprintf("graph: String on invalid literal kind %v", l.k))
}

func (l Literal) mustKind(k kind.Kind) {
	if l.k != k {
		panic(fmt.Sprintf("graph: %v accessor on %v literal", k, l.k))
	}
}

// maskWord reduces a two's complement payload to the low w bits.
func maskWord(v uint64, w int) uint64 {
	if w >= 64 {
		return v
	}
	return v & ((uint64(1) << w) - 1)
}

// signExtend interprets the low w bits of v as a two's complement value.
func signExtend(v uint64, w int) int64 {
	if w >= 64 {
		return int64(v)
	}
	if v&(uint64(1)<<(w-1)) != 0 {
		return int64(v | ^((uint64(1)<<w)-1))
	}
	return int64(v)
}
