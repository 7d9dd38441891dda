package bits

import (
	"fmt"
	"math"

	"github.com/felixdae/sbv/internal/float"
	"github.com/felixdae/sbv/internal/graph"
	"github.com/felixdae/sbv/internal/kind"
)

// wordKind maps a floating kind to the same-width unsigned integer kind.
func wordKind(k kind.Kind) kind.Kind {
	switch k {
	case kind.Float32:
		return kind.Uint32
	case kind.Float64:
		return kind.Uint64
	}
	panic(fmt.Sprintf("bits: %v has no bit-pattern word kind", k))
}

// floatKind maps an unsigned word kind to the same-width floating kind.
func floatKind(k kind.Kind) kind.Kind {
	switch k {
	case kind.Uint32:
		return kind.Float32
	case kind.Uint64:
		return kind.Float64
	}
	panic(fmt.Sprintf("bits: %v is not a reinterpretable word kind", k))
}

// FromBits reinterprets a uint32 or uint64 word as the same-width float.
// Pure bit-cast, no validity guard: every word is a valid encoding.
func FromBits(w graph.Value) graph.Value {
	fk := floatKind(w.Kind())
	return graph.Lift1(graph.OpReinterpret, fk, nil, evalFromBits, nil, w)
}

// ToBits reinterprets a float as the same-width unsigned word. Pure
// bit-cast; on a concrete NaN it yields the host's encoding of that NaN.
func ToBits(f graph.Value) graph.Value {
	wk := wordKind(f.Kind())
	return graph.Lift1(graph.OpReinterpret, wk, nil, evalToBits, nil, f)
}

// BitsEqual relates a float to a same-width unsigned word holding its
// encoding.
//
// Concrete path: when f is a literal other than NaN and w is a literal, the
// relation holds iff w equals the IEEE-754 encoding of f. A NaN literal
// falls through to the general form, which accepts every NaN encoding:
// ObjectEquals(f, FromBits(w)).
func BitsEqual(f, w graph.Value) graph.Value {
	if got, want := w.Kind(), wordKind(f.Kind()); got != want {
		panic(fmt.Sprintf("bits: BitsEqual word is %v, want %v for %v", got, want, f.Kind()))
	}
	if lf, ok := graph.AsLiteral(f); ok && !litIsNaN(lf) {
		if lw, ok := graph.AsLiteral(w); ok {
			return graph.Bool(encode(lf) == lw.Uint64())
		}
	}
	return float.ObjectEquals(f, FromBits(w))
}

// Decompose relates a float to its sign, exponent, and mantissa bits, each
// a boolean value, given most-significant-first. The bits are recombined
// into a word (bit i from the end weighs 2^i) and constrained against f via
// BitsEqual.
//
// Panics if the exponent or mantissa slice width does not match the kind's
// field widths; that is a caller contract violation, not a runtime-data
// error.
func Decompose(f, sign graph.Value, exponent, mantissa []graph.Value) graph.Value {
	d := f.Kind().Desc()
	if d.ExponentBits == 0 {
		panic(fmt.Sprintf("bits: Decompose on non-floating kind %v", f.Kind()))
	}
	if len(exponent) != d.ExponentBits || len(mantissa) != d.MantissaBits {
		panic(fmt.Sprintf("bits: Decompose width mismatch for %v: got %d exponent and %d mantissa bits, want %d and %d",
			f.Kind(), len(exponent), len(mantissa), d.ExponentBits, d.MantissaBits))
	}

	all := make([]graph.Value, 0, 1+len(exponent)+len(mantissa))
	all = append(all, sign)
	all = append(all, exponent...)
	all = append(all, mantissa...)
	return BitsEqual(f, weightedSum(wordKind(f.Kind()), all))
}

// weightedSum folds most-significant-first boolean bits into an unsigned
// word. All-literal bits fold to a literal word, keeping the whole relation
// on the concrete path.
func weightedSum(wk kind.Kind, msbFirst []graph.Value) graph.Value {
	zero := graph.Const{Lit: graph.NewUint(wk, 0)}
	var acc graph.Value = zero
	total := len(msbFirst)
	for i, b := range msbFirst {
		weight := graph.Const{Lit: graph.NewUint(wk, uint64(1)<<(total-1-i))}
		term := graph.Ite(b, weight, zero)
		acc = graph.Lift2(graph.OpAdd, wk, nil, evalAddWord, nil, acc, term)
	}
	return acc
}

func evalAddWord(x, y graph.Literal) graph.Literal {
	return graph.NewUint(x.Kind(), x.Uint64()+y.Uint64())
}

func evalFromBits(l graph.Literal) graph.Literal {
	switch l.Kind() {
	case kind.Uint32:
		return graph.NewFloat32(math.Float32frombits(uint32(l.Uint64())))
	case kind.Uint64:
		return graph.NewFloat64(math.Float64frombits(l.Uint64()))
	}
	panic(fmt.Sprintf("bits: reinterpret evaluator on %v literal", l.Kind()))
}

func evalToBits(l graph.Literal) graph.Literal {
	switch l.Kind() {
	case kind.Float32:
		return graph.NewUint(kind.Uint32, uint64(math.Float32bits(l.Float32())))
	case kind.Float64:
		return graph.NewUint(kind.Uint64, math.Float64bits(l.Float64()))
	}
	panic(fmt.Sprintf("bits: reinterpret evaluator on %v literal", l.Kind()))
}

// encode returns the IEEE-754 bit encoding of a floating literal.
func encode(l graph.Literal) uint64 {
	if l.Kind() == kind.Float32 {
		return uint64(math.Float32bits(l.Float32()))
	}
	return math.Float64bits(l.Float64())
}

func litIsNaN(l graph.Literal) bool {
	if l.Kind() == kind.Float32 {
		f := l.Float32()
		return f != f
	}
	return math.IsNaN(l.Float64())
}
