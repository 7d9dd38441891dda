package graph

import "fmt"

// RoundingMode is an IEEE-754 rounding policy. Only NearestTiesToEven has a
// defined concrete host evaluator; every other mode forces symbolic
// deferral even when all operands are literal.
type RoundingMode uint8

const (
	NearestTiesToEven RoundingMode = iota
	NearestTiesAway
	TowardPositive
	TowardNegative
	TowardZero
)

var roundingNames = [...]string{
	NearestTiesToEven: "RNE",
	NearestTiesAway:   "RNA",
	TowardPositive:    "RTP",
	TowardNegative:    "RTN",
	TowardZero:        "RTZ",
}

// String returns the conventional short name of the mode.
func (m RoundingMode) String() string {
	if int(m) >= len(roundingNames) {
		panic(fmt.Sprintf("graph: invalid rounding mode %d", uint8(m)))
	}
	return roundingNames[m]
}

// RM wraps a concrete rounding mode as a literal Value suitable for the
// rounding-mode operand of a lifted operation.
func RM(m RoundingMode) Value {
	return Const{Lit: NewRoundMode(m)}
}
