// Package smtlib renders a realized expression graph as SMT-LIB 2 text.
//
// The rendering is a textual debugging and testing surface, not a solver
// driver: it is deterministic for a given node table, so golden tests can
// compare it byte-for-byte. Every node becomes a define-fun (variables
// become declare-const), boolean roots become assertions.
//
// Float literals are printed in (fp #b... #b... #b...) form from their bit
// encoding, so NaN payloads and signed zeros survive the round trip into
// text. Variable names are NFC-normalized and quoted when they are not
// simple SMT-LIB symbols.
package smtlib
