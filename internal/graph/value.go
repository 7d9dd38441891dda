package graph

import "github.com/felixdae/sbv/internal/kind"

// Value is a sealed interface representing either a fully known host
// constant (Const) or a deferred computation (*Symbolic). A Value's Kind
// never changes after construction.
type Value interface {
	Kind() kind.Kind
	value() // Marker method - seals interface to this package
}

// Const is a literal Value. It is a plain value type with no owning
// context; resolving it yields a handle-free reference.
type Const struct {
	Lit Literal
}

func (c Const) Kind() kind.Kind { return c.Lit.Kind() }
func (Const) value()            {}

// Builder elaborates a symbolic value into a node within a context and
// returns the new node's handle. Builders run at most once per context.
type Builder func(*Context) NodeID

// Symbolic is a deferred Value. Its builder runs the first time the value
// is resolved in a given context; the resulting handle is memoized against
// that context's identity so re-resolution is idempotent and operands
// shared across sibling expressions elaborate into a single node.
type Symbolic struct {
	k     kind.Kind
	build Builder
	memo  map[*Context]NodeID
}

func (s *Symbolic) Kind() kind.Kind { return s.k }
func (*Symbolic) value()            {}

// NewSymbolic creates a deferred value of kind k with the given builder.
func NewSymbolic(k kind.Kind, build Builder) *Symbolic {
	return &Symbolic{k: k, build: build, memo: make(map[*Context]NodeID)}
}

// Var creates a free symbolic input of kind k. Each realization context the
// variable is resolved in receives exactly one Var node for it.
func Var(k kind.Kind, name string) *Symbolic {
	return NewSymbolic(k, func(c *Context) NodeID {
		return c.NewNode(Node{Result: k, Op: OpVar, Name: name})
	})
}

// AsLiteral unwraps a Const value. It reports false for symbolic values.
func AsLiteral(v Value) (Literal, bool) {
	if c, ok := v.(Const); ok {
		return c.Lit, true
	}
	return Literal{}, false
}
