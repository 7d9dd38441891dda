package smtlib

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/felixdae/sbv/internal/graph"
	"github.com/felixdae/sbv/internal/kind"
)

// Render serializes a context's node table followed by assertions for the
// boolean roots. Non-boolean roots are noted in a trailing comment so the
// script stays valid. Roots must have been resolved in c.
func Render(c *graph.Context, roots []graph.Ref) string {
	var b strings.Builder
	b.WriteString("(set-logic ALL)\n")

	names := make([]string, c.Len())
	for id, n := range c.Nodes() {
		if n.Op == graph.OpVar {
			names[id] = symbol(n.Name)
			fmt.Fprintf(&b, "(declare-const %s %s)\n", names[id], sortName(n.Result))
			continue
		}
		names[id] = fmt.Sprintf("n%d", id)
		fmt.Fprintf(&b, "(define-fun %s () %s %s)\n", names[id], sortName(n.Result), body(n, names))
	}

	for _, r := range roots {
		if r.Kind == kind.Bool {
			fmt.Fprintf(&b, "(assert %s)\n", refString(r, names))
		} else {
			fmt.Fprintf(&b, "; root %s\n", refString(r, names))
		}
	}
	b.WriteString("(check-sat)\n")
	return b.String()
}

func refString(r graph.Ref, names []string) string {
	if r.IsLiteral() {
		return literal(*r.Lit)
	}
	return names[r.ID]
}

// body renders the defining expression of a non-variable node.
func body(n graph.Node, names []string) string {
	args := make([]string, len(n.Operands))
	for i, r := range n.Operands {
		args[i] = refString(r, names)
	}
	rm := roundingName(n.Rounding, names)

	switch n.Op {
	case graph.OpCast:
		return castBody(n, args[0], rm)
	case graph.OpReinterpret:
		if n.Result.IsFloat() {
			return fmt.Sprintf("(%s %s)", toFPHead(n.Result), args[0])
		}
		return fmt.Sprintf("(fp.to_ieee_bv %s)", args[0])
	case graph.OpObjectEquals:
		// SMT-LIB = on FloatingPoint sorts is object equality: the theory
		// has a single NaN and distinguishes the zeros.
		return fmt.Sprintf("(= %s %s)", args[0], args[1])
	case graph.OpAdd:
		if !n.Result.IsFloat() {
			return fmt.Sprintf("(bvadd %s %s)", args[0], args[1])
		}
	}

	sym := opSymbol(n.Op)
	if n.Op.Info().TakesRounding {
		return fmt.Sprintf("(%s %s %s)", sym, rm, strings.Join(args, " "))
	}
	return fmt.Sprintf("(%s %s)", sym, strings.Join(args, " "))
}

func castBody(n graph.Node, arg, rm string) string {
	from := n.Operands[0].Kind
	to := n.Result
	switch {
	case to.IsFloat():
		switch {
		case from.IsUnsigned():
			return fmt.Sprintf("(%s %s %s)", toFPUnsignedHead(to), rm, arg)
		case from == kind.BigInt:
			return fmt.Sprintf("(%s %s (to_real %s))", toFPHead(to), rm, arg)
		default: // floats, signed bitvectors, Real
			return fmt.Sprintf("(%s %s %s)", toFPHead(to), rm, arg)
		}
	case to.IsUnsigned():
		return fmt.Sprintf("((_ fp.to_ubv %d) %s %s)", to.Desc().Bits, rm, arg)
	case to.IsFixed():
		return fmt.Sprintf("((_ fp.to_sbv %d) %s %s)", to.Desc().Bits, rm, arg)
	case to == kind.BigInt:
		return fmt.Sprintf("(to_int (fp.to_real %s))", arg)
	case to == kind.Rational:
		return fmt.Sprintf("(fp.to_real %s)", arg)
	}
	panic(fmt.Sprintf("smtlib: cast %v -> %v", from, to))
}

func toFPHead(k kind.Kind) string {
	d := k.Desc()
	return fmt.Sprintf("(_ to_fp %d %d)", d.ExponentBits, d.MantissaBits+1)
}

func toFPUnsignedHead(k kind.Kind) string {
	d := k.Desc()
	return fmt.Sprintf("(_ to_fp_unsigned %d %d)", d.ExponentBits, d.MantissaBits+1)
}

var opSymbols = map[graph.Op]string{
	graph.OpAbs:             "fp.abs",
	graph.OpNeg:             "fp.neg",
	graph.OpAdd:             "fp.add",
	graph.OpSub:             "fp.sub",
	graph.OpMul:             "fp.mul",
	graph.OpDiv:             "fp.div",
	graph.OpFMA:             "fp.fma",
	graph.OpSqrt:            "fp.sqrt",
	graph.OpRem:             "fp.rem",
	graph.OpRoundToIntegral: "fp.roundToIntegral",
	graph.OpMin:             "fp.min",
	graph.OpMax:             "fp.max",
	graph.OpIsNormal:        "fp.isNormal",
	graph.OpIsSubnormal:     "fp.isSubnormal",
	graph.OpIsZero:          "fp.isZero",
	graph.OpIsInfinite:      "fp.isInfinite",
	graph.OpIsNaN:           "fp.isNaN",
	graph.OpIsNegative:      "fp.isNegative",
	graph.OpIsPositive:      "fp.isPositive",
	graph.OpNot:             "not",
	graph.OpAnd:             "and",
	graph.OpOr:              "or",
	graph.OpIte:             "ite",
}

func opSymbol(op graph.Op) string {
	s, ok := opSymbols[op]
	if !ok {
		panic(fmt.Sprintf("smtlib: no symbol for op %v", op))
	}
	return s
}

// roundingName renders a rounding-mode operand, defaulting to
// NearestTiesToEven when the node carries none.
func roundingName(r *graph.Ref, names []string) string {
	if r == nil {
		return "roundNearestTiesToEven"
	}
	return refString(*r, names)
}

var roundingSymbols = map[graph.RoundingMode]string{
	graph.NearestTiesToEven: "roundNearestTiesToEven",
	graph.NearestTiesAway:   "roundNearestTiesToAway",
	graph.TowardPositive:    "roundTowardPositive",
	graph.TowardNegative:    "roundTowardNegative",
	graph.TowardZero:        "roundTowardZero",
}

func sortName(k kind.Kind) string {
	switch {
	case k == kind.Bool:
		return "Bool"
	case k.IsFloat():
		d := k.Desc()
		return fmt.Sprintf("(_ FloatingPoint %d %d)", d.ExponentBits, d.MantissaBits+1)
	case k.IsFixed():
		return fmt.Sprintf("(_ BitVec %d)", k.Desc().Bits)
	case k == kind.BigInt:
		return "Int"
	case k == kind.Rational:
		return "Real"
	case k == kind.RoundMode:
		return "RoundingMode"
	}
	panic(fmt.Sprintf("smtlib: no sort for kind %v", k))
}

func literal(l graph.Literal) string {
	switch {
	case l.Kind() == kind.Bool:
		if l.Bool() {
			return "true"
		}
		return "false"
	case l.Kind() == kind.Float32:
		return fpLiteral(uint64(math.Float32bits(l.Float32())), 8, 23)
	case l.Kind() == kind.Float64:
		return fpLiteral(math.Float64bits(l.Float64()), 11, 52)
	case l.Kind().IsUnsigned():
		return fmt.Sprintf("(_ bv%d %d)", l.Uint64(), l.Kind().Desc().Bits)
	case l.Kind().IsFixed():
		w := l.Kind().Desc().Bits
		u := uint64(l.Int64())
		if w < 64 {
			u &= (uint64(1) << w) - 1
		}
		return fmt.Sprintf("(_ bv%d %d)", u, w)
	case l.Kind() == kind.BigInt:
		return intLiteral(l.BigInt())
	case l.Kind() == kind.Rational:
		return ratLiteral(l.Rat())
	case l.Kind() == kind.RoundMode:
		return roundingSymbols[l.Mode()]
	}
	panic(fmt.Sprintf("smtlib: no literal form for kind %v", l.Kind()))
}

// fpLiteral prints the (fp #b<sign> #b<exponent> #b<mantissa>) form.
func fpLiteral(bits uint64, eb, mb int) string {
	sign := bits >> (eb + mb) & 1
	exp := bits >> mb & ((uint64(1) << eb) - 1)
	mant := bits & ((uint64(1) << mb) - 1)
	return fmt.Sprintf("(fp #b%d #b%0*b #b%0*b)", sign, eb, exp, mb, mant)
}

func intLiteral(v *big.Int) string {
	if v.Sign() < 0 {
		return fmt.Sprintf("(- %s)", new(big.Int).Neg(v).String())
	}
	return v.String()
}

func ratLiteral(v *big.Rat) string {
	neg := v.Sign() < 0
	a := new(big.Rat).Abs(v)
	var s string
	if a.IsInt() {
		s = a.Num().String() + ".0"
	} else {
		s = fmt.Sprintf("(/ %s %s)", a.Num().String(), a.Denom().String())
	}
	if neg {
		return fmt.Sprintf("(- %s)", s)
	}
	return s
}

// symbol NFC-normalizes a variable name and quotes it unless it is a simple
// SMT-LIB symbol.
func symbol(name string) string {
	name = norm.NFC.String(name)
	if isSimpleSymbol(name) {
		return name
	}
	return "|" + strings.ReplaceAll(name, "|", "_") + "|"
}

func isSimpleSymbol(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		case strings.ContainsRune("~!@$%^&*_+=<>.?/-", r):
		default:
			return false
		}
	}
	return true
}
