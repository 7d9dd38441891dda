package graph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/felixdae/sbv/internal/kind"
)

func TestFingerprintStableAcrossContexts(t *testing.T) {
	c1 := NewContext()
	c2 := NewContext()
	// Same structure built twice from fresh values.
	c1.Resolve(Not(Var(kind.Bool, "p")))
	c2.Resolve(Not(Var(kind.Bool, "p")))

	assert.Equal(t, c1.Fingerprint(), c2.Fingerprint())
}

func TestFingerprintDistinguishesVarNames(t *testing.T) {
	c1 := NewContext()
	c2 := NewContext()
	c1.Resolve(Var(kind.Bool, "p"))
	c2.Resolve(Var(kind.Bool, "q"))

	assert.NotEqual(t, c1.Fingerprint(), c2.Fingerprint())
}

func TestFingerprintDistinguishesFloatBits(t *testing.T) {
	node := func(f float64) *Context {
		c := NewContext()
		v := Lift1(OpNeg, kind.Float64, nil, nil, nil, Const{Lit: NewFloat64(f)})
		c.Resolve(v)
		return c
	}

	plus := node(0).Fingerprint()
	minus := node(math.Copysign(0, -1)).Fingerprint()
	assert.NotEqual(t, plus, minus, "signed zeros hash by bit pattern")
}

func TestFingerprintDistinguishesRounding(t *testing.T) {
	node := func(m RoundingMode) *Context {
		c := NewContext()
		x := Var(kind.Float64, "x")
		v := Lift2(OpAdd, kind.Float64, RM(m), nil, nil, x, x)
		c.Resolve(v)
		return c
	}

	assert.NotEqual(t, node(TowardPositive).Fingerprint(), node(TowardNegative).Fingerprint())
}

func TestFingerprintEmptyContext(t *testing.T) {
	assert.Equal(t, NewContext().Fingerprint(), NewContext().Fingerprint())
}
