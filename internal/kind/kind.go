package kind

import "fmt"

// Kind identifies a numeric or boolean domain. Kinds are compared by tag
// equality and never change after a Value is constructed.
type Kind uint8

const (
	// Bool is the boolean domain (predicate results, connectives).
	Bool Kind = iota

	// Float32 is the IEEE-754 binary32 domain.
	Float32

	// Float64 is the IEEE-754 binary64 domain.
	Float64

	// Fixed-width two's complement signed integers.
	Int8
	Int16
	Int32
	Int64

	// Fixed-width unsigned integers.
	Uint8
	Uint16
	Uint32
	Uint64

	// BigInt is the arbitrary-precision integer domain.
	BigInt

	// Rational is the exact rational domain. A rational literal carries an
	// exactness flag: values obtained by approximating an algebraic number
	// are marked inexact and never take the concrete conversion path.
	Rational

	// RoundMode is the domain of IEEE-754 rounding-mode operands. It exists
	// so a rounding mode can itself be symbolic; a symbolic rounding mode
	// forces symbolic deferral exactly like a symbolic float operand.
	RoundMode

	numKinds
)

// Descriptor holds the static per-kind metadata. Dispatch happens on the
// Kind tag at construction time; there is no type hierarchy over host
// numeric kinds.
type Descriptor struct {
	// Name is the stable display name of the kind.
	Name string

	// Bits is the total bit width, or 0 for unbounded kinds
	// (BigInt, Rational) and non-numeric tags.
	Bits int

	// Signed reports whether the kind carries a sign.
	Signed bool

	// ExponentBits and MantissaBits are the IEEE-754 field widths for
	// floating kinds (8/23 for Float32, 11/52 for Float64), zero otherwise.
	// MantissaBits counts stored bits, excluding the implicit leading bit.
	ExponentBits int
	MantissaBits int

	// HasNativeEval reports whether the host provides a concrete evaluator
	// for literals of this kind. RoundMode has none: rounding modes are
	// operands, never computation results.
	HasNativeEval bool
}

var descriptors = [numKinds]Descriptor{
	Bool:      {Name: "Bool", Bits: 1, HasNativeEval: true},
	Float32:   {Name: "Float32", Bits: 32, Signed: true, ExponentBits: 8, MantissaBits: 23, HasNativeEval: true},
	Float64:   {Name: "Float64", Bits: 64, Signed: true, ExponentBits: 11, MantissaBits: 52, HasNativeEval: true},
	Int8:      {Name: "Int8", Bits: 8, Signed: true, HasNativeEval: true},
	Int16:     {Name: "Int16", Bits: 16, Signed: true, HasNativeEval: true},
	Int32:     {Name: "Int32", Bits: 32, Signed: true, HasNativeEval: true},
	Int64:     {Name: "Int64", Bits: 64, Signed: true, HasNativeEval: true},
	Uint8:     {Name: "Uint8", Bits: 8, HasNativeEval: true},
	Uint16:    {Name: "Uint16", Bits: 16, HasNativeEval: true},
	Uint32:    {Name: "Uint32", Bits: 32, HasNativeEval: true},
	Uint64:    {Name: "Uint64", Bits: 64, HasNativeEval: true},
	BigInt:    {Name: "BigInt", Signed: true, HasNativeEval: true},
	Rational:  {Name: "Rational", Signed: true, HasNativeEval: true},
	RoundMode: {Name: "RoundMode"},
}

// All returns every kind tag in declaration order.
func All() []Kind {
	ks := make([]Kind, 0, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		ks = append(ks, k)
	}
	return ks
}

// Desc returns the static descriptor for k.
// Panics on an out-of-range tag: that is caller misuse, not runtime data.
func (k Kind) Desc() Descriptor {
	if k >= numKinds {
		panic(fmt.Sprintf("kind: invalid kind tag %d", uint8(k)))
	}
	return descriptors[k]
}

// String returns the kind's display name.
func (k Kind) String() string {
	return k.Desc().Name
}

// IsFloat reports whether k is one of the two floating kinds.
func (k Kind) IsFloat() bool {
	return k == Float32 || k == Float64
}

// IsFixed reports whether k is a fixed-width integer kind.
func (k Kind) IsFixed() bool {
	return k >= Int8 && k <= Uint64
}

// IsUnsigned reports whether k is a fixed-width unsigned integer kind.
func (k Kind) IsUnsigned() bool {
	return k >= Uint8 && k <= Uint64
}

// IsIntegral reports whether k is a fixed-width or arbitrary-precision
// integer kind.
func (k Kind) IsIntegral() bool {
	return k.IsFixed() || k == BigInt
}
