// Package convert implements the bidirectional cast matrix between the
// floating kinds and the integer and rational kinds.
//
// Conversions are described by an explicit table indexed by (source kind,
// target kind). Each entry carries its concrete evaluator and an
// eligibility guard:
//
//   - none: concrete whenever the source is literal and the rounding mode
//     is NearestTiesToEven (float widen/narrow, integral/rational to float)
//   - finite point required: float to integral; a non-finite source
//     converts to the policy value 0 (a defined, arbitrary choice, never an
//     error)
//   - exact value required: rational to float and float to rational; an
//     algebraic approximation or a non-finite float always defers to the
//     symbolic path even though the input is concrete
//
// Identity conversions are the identity function and never produce a node.
// This engine raises no errors: every domain edge case resolves to a
// defined value.
package convert
