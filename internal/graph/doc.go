// Package graph implements the expression graph core: literals, symbolic
// values, the realization context that elaborates values into nodes, and the
// concrete/symbolic dispatcher.
//
// A Value is either a Const (a fully known host constant) or a *Symbolic (a
// deferred computation). A Realization Context owns an append-only node
// arena; resolving a Symbolic in a context is an idempotent get-or-insert:
// the first resolution runs the value's builder and memoizes the resulting
// handle against the context's identity, every later resolution in the same
// context returns the cached handle. Distinct contexts never share node
// tables, so the same Value elaborates independently in each.
//
// Graph construction is single-threaded and synchronous within one context.
// Separate goroutines may build independent contexts concurrently, provided
// no single Value is resolved by two contexts at the same time (the memo
// cell is a plain map; the contract is at most one active resolution per
// context).
package graph
