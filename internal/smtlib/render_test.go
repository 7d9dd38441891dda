package smtlib

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/felixdae/sbv/internal/bits"
	"github.com/felixdae/sbv/internal/convert"
	"github.com/felixdae/sbv/internal/float"
	"github.com/felixdae/sbv/internal/graph"
	"github.com/felixdae/sbv/internal/kind"
)

func TestRenderAssertedBoolRoot(t *testing.T) {
	c := graph.NewContext()
	x := graph.Var(kind.Float32, "x")
	r := c.Resolve(float.IsNaN(x))

	want := `(set-logic ALL)
(declare-const x (_ FloatingPoint 8 24))
(define-fun n1 () Bool (fp.isNaN x))
(assert n1)
(check-sat)
`
	assert.Equal(t, want, Render(c, []graph.Ref{r}))
}

func TestRenderNonBoolRootComment(t *testing.T) {
	c := graph.NewContext()
	x := graph.Var(kind.Float64, "x")
	r := c.Resolve(float.Neg(x))

	want := `(set-logic ALL)
(declare-const x (_ FloatingPoint 11 53))
(define-fun n1 () (_ FloatingPoint 11 53) (fp.neg x))
; root n1
(check-sat)
`
	assert.Equal(t, want, Render(c, []graph.Ref{r}))
}

func TestRenderRoundingOperand(t *testing.T) {
	c := graph.NewContext()
	x := graph.Var(kind.Float64, "x")
	r := c.Resolve(float.Add(graph.RM(graph.TowardNegative), x, x))

	out := Render(c, []graph.Ref{r})
	assert.Contains(t, out, "(fp.add roundTowardNegative x x)")
}

func TestRenderDefaultRounding(t *testing.T) {
	// A nil rounding operand on a rounding-capable op renders as RNE.
	c := graph.NewContext()
	x := graph.Var(kind.Float64, "x")
	r := c.Resolve(float.Add(nil, x, x))

	out := Render(c, []graph.Ref{r})
	assert.Contains(t, out, "(fp.add roundNearestTiesToEven x x)")
}

func TestRenderFloatLiteral(t *testing.T) {
	c := graph.NewContext()
	x := graph.Var(kind.Float32, "x")
	r := c.Resolve(float.ObjectEquals(x, graph.Const{Lit: graph.NewFloat32(1.5)}))

	out := Render(c, []graph.Ref{r})
	assert.Contains(t, out, "(= x (fp #b0 #b01111111 #b10000000000000000000000))")
}

func TestRenderNegativeZeroLiteral(t *testing.T) {
	c := graph.NewContext()
	x := graph.Var(kind.Float64, "x")
	nz := graph.Const{Lit: graph.NewFloat64(math.Copysign(0, -1))}
	r := c.Resolve(float.ObjectEquals(x, nz))

	out := Render(c, []graph.Ref{r})
	assert.Contains(t, out, "(fp #b1 #b00000000000 #b0000000000000000000000000000000000000000000000000000)")
}

func TestRenderCastForms(t *testing.T) {
	rne := graph.RM(graph.NearestTiesToEven)

	tests := []struct {
		name string
		root func(c *graph.Context) graph.Ref
		want string
	}{
		{
			"float to signed",
			func(c *graph.Context) graph.Ref {
				x := graph.Var(kind.Float32, "x")
				return c.Resolve(convert.FromFloat32(rne, x, kind.Int32))
			},
			"((_ fp.to_sbv 32) roundNearestTiesToEven x)",
		},
		{
			"float to unsigned",
			func(c *graph.Context) graph.Ref {
				x := graph.Var(kind.Float64, "x")
				return c.Resolve(convert.FromFloat64(rne, x, kind.Uint16))
			},
			"((_ fp.to_ubv 16) roundNearestTiesToEven x)",
		},
		{
			"unsigned to float",
			func(c *graph.Context) graph.Ref {
				w := graph.Var(kind.Uint32, "w")
				return c.Resolve(convert.ToFloat32(rne, w))
			},
			"((_ to_fp_unsigned 8 24) roundNearestTiesToEven w)",
		},
		{
			"signed to float",
			func(c *graph.Context) graph.Ref {
				i := graph.Var(kind.Int64, "i")
				return c.Resolve(convert.ToFloat64(rne, i))
			},
			"((_ to_fp 11 53) roundNearestTiesToEven i)",
		},
		{
			"float widen",
			func(c *graph.Context) graph.Ref {
				x := graph.Var(kind.Float32, "x")
				return c.Resolve(convert.ToFloat64(rne, x))
			},
			"((_ to_fp 11 53) roundNearestTiesToEven x)",
		},
		{
			"float to int",
			func(c *graph.Context) graph.Ref {
				x := graph.Var(kind.Float64, "x")
				return c.Resolve(convert.FromFloat64(rne, x, kind.BigInt))
			},
			"(to_int (fp.to_real x))",
		},
		{
			"float to real",
			func(c *graph.Context) graph.Ref {
				x := graph.Var(kind.Float64, "x")
				return c.Resolve(convert.FromFloat64(rne, x, kind.Rational))
			},
			"(fp.to_real x)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := graph.NewContext()
			r := tt.root(c)
			assert.Contains(t, Render(c, []graph.Ref{r}), tt.want)
		})
	}
}

func TestRenderReinterpret(t *testing.T) {
	c := graph.NewContext()
	w := graph.Var(kind.Uint64, "w")
	r := c.Resolve(bits.FromBits(w))

	out := Render(c, []graph.Ref{r})
	assert.Contains(t, out, "(declare-const w (_ BitVec 64))")
	assert.Contains(t, out, "((_ to_fp 11 53) w)")

	c2 := graph.NewContext()
	x := graph.Var(kind.Float32, "x")
	r2 := c2.Resolve(bits.ToBits(x))
	assert.Contains(t, Render(c2, []graph.Ref{r2}), "(fp.to_ieee_bv x)")
}

func TestRenderBitvectorAdd(t *testing.T) {
	// Word-level addition from bit recombination renders as bvadd.
	c := graph.NewContext()
	s := graph.Var(kind.Bool, "s")
	exp := make([]graph.Value, 8)
	mant := make([]graph.Value, 23)
	for i := range exp {
		exp[i] = graph.Bool(false)
	}
	for i := range mant {
		mant[i] = graph.Bool(false)
	}
	x := graph.Var(kind.Float32, "x")
	r := c.Resolve(bits.Decompose(x, s, exp, mant))

	out := Render(c, []graph.Ref{r})
	assert.Contains(t, out, "bvadd")
	assert.Contains(t, out, "(ite s (_ bv2147483648 32) (_ bv0 32))")
}

func TestRenderScalarLiterals(t *testing.T) {
	assert.Equal(t, "(_ bv255 8)", literal(graph.NewUint(kind.Uint8, 255)))
	assert.Equal(t, "(_ bv255 8)", literal(graph.NewInt(kind.Int8, -1)))
	assert.Equal(t, "42", literal(graph.NewBigInt(big.NewInt(42))))
	assert.Equal(t, "(- 42)", literal(graph.NewBigInt(big.NewInt(-42))))
	assert.Equal(t, "(/ 3 4)", literal(graph.NewRational(big.NewRat(3, 4))))
	assert.Equal(t, "(- (/ 3 4))", literal(graph.NewRational(big.NewRat(-3, 4))))
	assert.Equal(t, "2.0", literal(graph.NewRational(big.NewRat(2, 1))))
	assert.Equal(t, "true", literal(graph.NewBool(true)))
	assert.Equal(t, "roundTowardZero", literal(graph.NewRoundMode(graph.TowardZero)))
}

func TestSymbolQuoting(t *testing.T) {
	assert.Equal(t, "x", symbol("x"))
	assert.Equal(t, "x1", symbol("x1"))
	assert.Equal(t, "my-var.2", symbol("my-var.2"))
	assert.Equal(t, "|1x|", symbol("1x"))
	assert.Equal(t, "|has space|", symbol("has space"))
	assert.Equal(t, "|a_b|", symbol("a|b"))
	assert.Equal(t, "||", symbol(""))
}

func TestSymbolNormalizesUnicode(t *testing.T) {
	// e followed by a combining acute accent normalizes to the precomposed
	// form, so both spellings render identically.
	composed := symbol("café")
	decomposed := symbol("café")
	assert.Equal(t, composed, decomposed)
}
