package convert

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixdae/sbv/internal/graph"
	"github.com/felixdae/sbv/internal/kind"
)

func f32(v float32) graph.Value { return graph.Const{Lit: graph.NewFloat32(v)} }
func f64(v float64) graph.Value { return graph.Const{Lit: graph.NewFloat64(v)} }

func rne() graph.Value { return graph.RM(graph.NearestTiesToEven) }

func mustLit(t *testing.T, v graph.Value) graph.Literal {
	t.Helper()
	l, ok := graph.AsLiteral(v)
	require.True(t, ok, "expected concrete result")
	return l
}

func mustSymbolic(t *testing.T, v graph.Value) {
	t.Helper()
	_, ok := graph.AsLiteral(v)
	require.False(t, ok, "expected symbolic result")
}

func TestIdentityReturnsSameValue(t *testing.T) {
	v := f64(1.5)
	assert.Equal(t, v, Convert(rne(), v, kind.Float64))

	x := graph.Var(kind.Float32, "x")
	assert.Same(t, x, Convert(rne(), x, kind.Float32))
}

func TestWidenNarrow(t *testing.T) {
	assert.Equal(t, 1.5, mustLit(t, ToFloat64(rne(), f32(1.5))).Float64())
	assert.Equal(t, float32(1.5), mustLit(t, ToFloat32(rne(), f64(1.5))).Float32())

	// Narrowing a value outside float32 range overflows to infinity.
	narrowed := mustLit(t, ToFloat32(rne(), f64(1e300))).Float32()
	assert.True(t, math.IsInf(float64(narrowed), 1))
}

func TestFloatToIntTiesToEven(t *testing.T) {
	assert.Equal(t, int64(2), mustLit(t, FromFloat64(rne(), f64(2.5), kind.Int32)).Int64())
	assert.Equal(t, int64(4), mustLit(t, FromFloat64(rne(), f64(3.5), kind.Int32)).Int64())
	assert.Equal(t, int64(-2), mustLit(t, FromFloat64(rne(), f64(-2.5), kind.Int32)).Int64())
}

func TestNonFiniteToIntegralYieldsZero(t *testing.T) {
	inf := f32(float32(math.Inf(1)))
	assert.Equal(t, int64(0), mustLit(t, FromFloat32(rne(), inf, kind.Int32)).Int64())

	nan := f64(math.NaN())
	assert.Equal(t, int64(0), mustLit(t, FromFloat64(rne(), nan, kind.Int64)).Int64())
	assert.Equal(t, uint64(0), mustLit(t, FromFloat64(rne(), nan, kind.Uint16)).Uint64())
	assert.Equal(t, 0, mustLit(t, FromFloat64(rne(), f64(math.Inf(-1)), kind.BigInt)).BigInt().Sign())
}

func TestNonFiniteLiteralCreatesNoNodes(t *testing.T) {
	// The guard selection folds on a literal source, so a non-finite literal
	// yields the policy value without touching a context.
	v := FromFloat64(rne(), f64(math.Inf(1)), kind.Int32)

	c := graph.NewContext()
	r := c.Resolve(v)
	assert.True(t, r.IsLiteral())
	assert.Zero(t, c.Len())
}

func TestFloatToIntWrapsModulo(t *testing.T) {
	// 300 does not fit int8: reduced modulo 2^8 to 44.
	assert.Equal(t, int64(44), mustLit(t, FromFloat64(rne(), f64(300), kind.Int8)).Int64())
	// -1 to uint8 wraps to 255.
	assert.Equal(t, uint64(255), mustLit(t, FromFloat64(rne(), f64(-1), kind.Uint8)).Uint64())
	// BigInt never wraps.
	huge := mustLit(t, FromFloat64(rne(), f64(1e30), kind.BigInt)).BigInt()
	assert.Equal(t, 1, huge.Cmp(new(big.Int).SetUint64(math.MaxUint64)))
}

func TestIntegralToFloat(t *testing.T) {
	assert.Equal(t, 42.0, mustLit(t, ToFloat64(rne(), graph.Const{Lit: graph.NewInt(kind.Int32, 42)})).Float64())
	assert.Equal(t, float32(7), mustLit(t, ToFloat32(rne(), graph.Const{Lit: graph.NewUint(kind.Uint16, 7)})).Float32())

	big9 := graph.Const{Lit: graph.NewBigInt(big.NewInt(1 << 40))}
	assert.Equal(t, float64(1<<40), mustLit(t, ToFloat64(rne(), big9)).Float64())
}

func TestIntegralToFloatRoundsTiesToEven(t *testing.T) {
	// 2^53+1 is the first integer float64 cannot hold; RNE rounds it down.
	src := graph.Const{Lit: graph.NewInt(kind.Int64, (1<<53)+1)}
	assert.Equal(t, float64(1<<53), mustLit(t, ToFloat64(rne(), src)).Float64())
}

func TestExactRationalToFloatConcrete(t *testing.T) {
	r := graph.Const{Lit: graph.NewRational(big.NewRat(3, 4))}
	assert.Equal(t, float32(0.75), mustLit(t, ToFloat32(rne(), r)).Float32())
}

func TestAlgebraicRationalDefers(t *testing.T) {
	// An inexact rational is concrete but not exact, so the conversion must
	// take the symbolic path.
	r := graph.Const{Lit: graph.NewAlgebraic(big.NewRat(3, 4))}
	mustSymbolic(t, ToFloat32(rne(), r))
}

func TestFloatToRational(t *testing.T) {
	got := mustLit(t, FromFloat64(rne(), f64(0.5), kind.Rational))
	assert.Equal(t, "1/2", got.Rat().RatString())
	assert.True(t, got.Exact())

	// Non-finite floats denote no rational; the conversion defers.
	mustSymbolic(t, FromFloat64(rne(), f64(math.NaN()), kind.Rational))
}

func TestNonRNERoundingDefers(t *testing.T) {
	mustSymbolic(t, FromFloat64(graph.RM(graph.TowardZero), f64(2.5), kind.Int32))
	mustSymbolic(t, ToFloat64(graph.RM(graph.TowardPositive), f32(1.5)))
}

func TestSymbolicSourceBuildsGuardedCast(t *testing.T) {
	x := graph.Var(kind.Float32, "x")
	v := FromFloat32(rne(), x, kind.Int32)
	mustSymbolic(t, v)

	c := graph.NewContext()
	r := c.Resolve(v)
	n := c.Node(r.ID)
	// The root is the guard selection; its then-branch is the raw cast.
	require.Equal(t, graph.OpIte, n.Op)
	castRef := n.Operands[1]
	require.False(t, castRef.IsLiteral())
	assert.Equal(t, graph.OpCast, c.Node(castRef.ID).Op)
	assert.Equal(t, kind.Int32, c.Node(castRef.ID).Result)
	// The else-branch carries the policy literal.
	assert.True(t, n.Operands[2].IsLiteral())
	assert.Equal(t, int64(0), n.Operands[2].Lit.Int64())
}

func TestSymbolicWidenHasNoGuard(t *testing.T) {
	x := graph.Var(kind.Float32, "x")
	v := ToFloat64(rne(), x)

	c := graph.NewContext()
	r := c.Resolve(v)
	assert.Equal(t, graph.OpCast, c.Node(r.ID).Op)
}

func TestUnsupportedPairPanics(t *testing.T) {
	src := graph.Const{Lit: graph.NewInt(kind.Int32, 1)}
	assert.Panics(t, func() { Convert(rne(), src, kind.Int64) })
}

func TestFromFloatKindMismatchPanics(t *testing.T) {
	assert.Panics(t, func() { FromFloat32(rne(), f64(1), kind.Int32) })
	assert.Panics(t, func() { FromFloat64(rne(), f32(1), kind.Int32) })
}
