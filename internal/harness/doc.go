// Package harness runs declarative lifting scenarios for conformance
// testing.
//
// A scenario is a YAML file naming free variables and an expression tree
// built through the public lifting API. The harness builds the expression,
// realizes it in a fresh context, renders the node table as SMT-LIB, and
// compares the text against a golden file. Because graph construction is
// deterministic given the operand values, the rendering is stable
// byte-for-byte.
package harness
