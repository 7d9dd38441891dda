// Package float is the catalogue of lifted IEEE-754 operations and
// predicates over float32 and float64 values.
//
// Every operation goes through the two-path dispatcher in internal/graph:
// all-literal operands under an absent or NearestTiesToEven rounding mode
// compute directly on the host, anything else becomes a graph node. NaN,
// signed zeros, and infinities are first-class defined values throughout;
// no operation here ever reports an error for a numeric edge case.
//
// FMA is the one exception to the dispatch rule: it always defers to the
// backend, because evaluating it as a multiply followed by an add would
// introduce double rounding the fused operation is defined to avoid.
package float
