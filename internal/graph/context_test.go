package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixdae/sbv/internal/kind"
)

func TestResolveConst(t *testing.T) {
	c := NewContext()
	r := c.Resolve(Const{Lit: NewFloat64(1.5)})

	assert.True(t, r.IsLiteral())
	assert.Equal(t, kind.Float64, r.Kind)
	assert.Equal(t, 1.5, r.Lit.Float64())
	assert.Zero(t, c.Len(), "literals never enter the node arena")
}

func TestResolveIdempotent(t *testing.T) {
	c := NewContext()
	x := Var(kind.Float32, "x")

	first := c.Resolve(x)
	second := c.Resolve(x)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, c.Len())
}

func TestSharedOperandResolvesOnce(t *testing.T) {
	// x appears in two sibling expressions; both must wire to the same node.
	c := NewContext()
	x := Var(kind.Bool, "x")
	a := Not(x)
	b := And(x, Bool(true))

	ra := c.Resolve(a)
	rb := c.Resolve(b)

	na := c.Node(ra.ID)
	nb := c.Node(rb.ID)
	require.Len(t, na.Operands, 1)
	require.Len(t, nb.Operands, 2)
	assert.Equal(t, na.Operands[0].ID, nb.Operands[0].ID)
	// One var node plus the two connective nodes.
	assert.Equal(t, 3, c.Len())
}

func TestContextsAreIndependent(t *testing.T) {
	x := Var(kind.Float64, "x")
	c1 := NewContext()
	c2 := NewContext()

	r1 := c1.Resolve(x)
	c2.Resolve(Var(kind.Float64, "padding"))
	r2 := c2.Resolve(x)

	assert.Equal(t, NodeID(0), r1.ID)
	assert.Equal(t, NodeID(1), r2.ID)
	assert.NotEqual(t, c1.SessionID(), c2.SessionID())
}

func TestVarNodeCarriesName(t *testing.T) {
	c := NewContext()
	r := c.Resolve(Var(kind.Int32, "counter"))

	n := c.Node(r.ID)
	assert.Equal(t, OpVar, n.Op)
	assert.Equal(t, "counter", n.Name)
	assert.Equal(t, kind.Int32, n.Result)
}

func TestNewNodeArityMismatchPanics(t *testing.T) {
	c := NewContext()
	assert.Panics(t, func() {
		c.NewNode(Node{Result: kind.Bool, Op: OpAnd, Operands: []Ref{}})
	})
}

func TestNodesTopologicalOrder(t *testing.T) {
	c := NewContext()
	x := Var(kind.Bool, "x")
	c.Resolve(Not(Not(x)))

	nodes := c.Nodes()
	require.Len(t, nodes, 3)
	assert.Equal(t, OpVar, nodes[0].Op)
	assert.Equal(t, OpNot, nodes[1].Op)
	assert.Equal(t, OpNot, nodes[2].Op)
	assert.Equal(t, NodeID(1), nodes[2].Operands[0].ID)
}
