package graph

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/felixdae/sbv/internal/kind"
)

// NodeID is an integer handle into a context's node arena.
type NodeID int32

// Ref is a resolved reference to a value within one context: either a
// literal carried directly (Lit non-nil, no table entry) or a handle into
// the owning context's node arena.
type Ref struct {
	Kind kind.Kind
	Lit  *Literal
	ID   NodeID
}

// IsLiteral reports whether the reference carries a literal directly.
func (r Ref) IsLiteral() bool { return r.Lit != nil }

// Node is one entry of the expression graph: an operation code, result
// kind, optional rounding-mode operand, and ordered operand references.
// Nodes are owned exclusively by the context that created them and are
// never mutated after creation.
type Node struct {
	Result   kind.Kind
	Op       Op
	Rounding *Ref // nil unless the operation carries a rounding-mode operand
	Operands []Ref
	Name     string // OpVar only
}

// Context is a session-scoped realization store. It owns an append-only
// node arena; nodes live exactly as long as the context and are discarded
// wholesale on teardown. Contexts never share node tables.
type Context struct {
	session string
	nodes   []Node
}

// NewContext creates an empty realization context with a fresh session ID.
func NewContext() *Context {
	return &Context{session: uuid.NewString()}
}

// SessionID returns the context's session identifier.
func (c *Context) SessionID() string { return c.session }

// Resolve elaborates a value within this context.
//
// A Const resolves to a handle-free literal reference. A *Symbolic already
// memoized here resolves to the stored handle unchanged; otherwise its
// builder runs, the new handle is memoized against this context, and the
// same handle is returned for every later resolution. No two distinct nodes
// are ever created for one Value within one context.
func (c *Context) Resolve(v Value) Ref {
	switch v := v.(type) {
	case Const:
		lit := v.Lit
		return Ref{Kind: lit.Kind(), Lit: &lit}
	case *Symbolic:
		if id, ok := v.memo[c]; ok {
			return Ref{Kind: v.k, ID: id}
		}
		id := v.build(c)
		v.memo[c] = id
		return Ref{Kind: v.k, ID: id}
	default:
		panic(fmt.Sprintf("graph: cannot resolve value of type %T", v))
	}
}

// NewNode appends a node to the arena and returns its handle. Operand
// references must already belong to this context.
func (c *Context) NewNode(n Node) NodeID {
	if got, want := len(n.Operands), n.Op.Info().Arity; got != want {
		panic(fmt.Sprintf("graph: %v node with %d operands, want %d", n.Op, got, want))
	}
	c.nodes = append(c.nodes, n)
	return NodeID(len(c.nodes) - 1)
}

// Node returns the node for a handle issued by this context.
func (c *Context) Node(id NodeID) Node {
	return c.nodes[id]
}

// Len returns the number of nodes in the arena.
func (c *Context) Len() int { return len(c.nodes) }

// Nodes returns the arena in creation order. Operands always precede their
// consumers, so the slice is topologically ordered. Callers must treat the
// result as read-only.
func (c *Context) Nodes() []Node { return c.nodes }
