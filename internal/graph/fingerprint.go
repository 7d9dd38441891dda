package graph

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a 64-bit structural digest of the node arena.
//
// Two contexts holding structurally identical graphs (same ops, kinds,
// rounding operands, literals bit-for-bit, and operand wiring) produce the
// same fingerprint. Float literals hash by bit pattern, so NaN payloads and
// signed zeros are distinguished.
func (c *Context) Fingerprint() uint64 {
	h := xxhash.New()
	for id, n := range c.nodes {
		fmt.Fprintf(h, "%d|%s|%s|", id, n.Op, n.Result)
		if n.Op == OpVar {
			fmt.Fprintf(h, "%q", n.Name)
		}
		if n.Rounding != nil {
			writeRef(h, *n.Rounding)
		}
		for _, ref := range n.Operands {
			writeRef(h, ref)
		}
		h.WriteString("\n")
	}
	return h.Sum64()
}

func writeRef(h *xxhash.Digest, r Ref) {
	if r.IsLiteral() {
		fmt.Fprintf(h, "lit:%s;", r.Lit)
		return
	}
	fmt.Fprintf(h, "#%d;", r.ID)
}
