package harness

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/felixdae/sbv/internal/bits"
	"github.com/felixdae/sbv/internal/convert"
	"github.com/felixdae/sbv/internal/float"
	"github.com/felixdae/sbv/internal/graph"
	"github.com/felixdae/sbv/internal/kind"
)

var kindNames = map[string]kind.Kind{
	"bool":     kind.Bool,
	"float32":  kind.Float32,
	"float64":  kind.Float64,
	"int8":     kind.Int8,
	"int16":    kind.Int16,
	"int32":    kind.Int32,
	"int64":    kind.Int64,
	"uint8":    kind.Uint8,
	"uint16":   kind.Uint16,
	"uint32":   kind.Uint32,
	"uint64":   kind.Uint64,
	"bigint":   kind.BigInt,
	"rational": kind.Rational,
}

var roundingNames = map[string]graph.RoundingMode{
	"rne": graph.NearestTiesToEven,
	"rna": graph.NearestTiesAway,
	"rtp": graph.TowardPositive,
	"rtn": graph.TowardNegative,
	"rtz": graph.TowardZero,
}

// Build constructs the scenario's root values, realizes them in a fresh
// context, and returns the context with the resolved root references.
func (s *Scenario) Build() (*graph.Context, []graph.Ref, error) {
	vars := make(map[string]graph.Value, len(s.Vars))
	for _, v := range s.Vars {
		k, ok := kindNames[v.Kind]
		if !ok {
			return nil, nil, fmt.Errorf("scenario %s: unknown kind %q for var %q", s.Name, v.Kind, v.Name)
		}
		vars[v.Name] = graph.Var(k, v.Name)
	}

	ctx := graph.NewContext()
	refs := make([]graph.Ref, 0, len(s.Roots))
	for i, root := range s.Roots {
		v, err := buildExpr(root, vars)
		if err != nil {
			return nil, nil, fmt.Errorf("scenario %s: root %d: %w", s.Name, i, err)
		}
		refs = append(refs, ctx.Resolve(v))
	}
	return ctx, refs, nil
}

func buildExpr(e Expr, vars map[string]graph.Value) (graph.Value, error) {
	switch {
	case e.Var != "":
		v, ok := vars[e.Var]
		if !ok {
			return nil, fmt.Errorf("undeclared var %q", e.Var)
		}
		return v, nil
	case e.Lit != nil:
		lit, err := parseLiteral(*e.Lit)
		if err != nil {
			return nil, err
		}
		return graph.Const{Lit: lit}, nil
	case e.Op != "":
		return buildOp(e, vars)
	}
	return nil, fmt.Errorf("expression needs one of var, lit, op")
}

func buildOp(e Expr, vars map[string]graph.Value) (graph.Value, error) {
	args := make([]graph.Value, len(e.Args))
	for i, a := range e.Args {
		v, err := buildExpr(a, vars)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	rm, err := parseRounding(e.Rounding)
	if err != nil {
		return nil, err
	}

	want, ok := opArity[e.Op]
	if !ok {
		return nil, fmt.Errorf("unknown op %q", e.Op)
	}
	if len(args) != want {
		return nil, fmt.Errorf("op %q takes %d args, got %d", e.Op, want, len(args))
	}

	switch e.Op {
	case "abs":
		return float.Abs(args[0]), nil
	case "neg":
		return float.Neg(args[0]), nil
	case "add":
		return float.Add(rm, args[0], args[1]), nil
	case "sub":
		return float.Sub(rm, args[0], args[1]), nil
	case "mul":
		return float.Mul(rm, args[0], args[1]), nil
	case "div":
		return float.Div(rm, args[0], args[1]), nil
	case "fma":
		return float.FMA(rm, args[0], args[1], args[2]), nil
	case "sqrt":
		return float.Sqrt(rm, args[0]), nil
	case "rem":
		return float.Rem(args[0], args[1]), nil
	case "roundToIntegral":
		return float.RoundToIntegral(rm, args[0]), nil
	case "min":
		return float.Min(args[0], args[1]), nil
	case "max":
		return float.Max(args[0], args[1]), nil
	case "objectEquals":
		return float.ObjectEquals(args[0], args[1]), nil
	case "isNormal":
		return float.IsNormal(args[0]), nil
	case "isSubnormal":
		return float.IsSubnormal(args[0]), nil
	case "isZero":
		return float.IsZero(args[0]), nil
	case "isInfinite":
		return float.IsInfinite(args[0]), nil
	case "isNaN":
		return float.IsNaN(args[0]), nil
	case "isNegative":
		return float.IsNegative(args[0]), nil
	case "isPositive":
		return float.IsPositive(args[0]), nil
	case "isNegativeZero":
		return float.IsNegativeZero(args[0]), nil
	case "isPositiveZero":
		return float.IsPositiveZero(args[0]), nil
	case "isPoint":
		return float.IsPoint(args[0]), nil
	case "not":
		return graph.Not(args[0]), nil
	case "and":
		return graph.And(args[0], args[1]), nil
	case "or":
		return graph.Or(args[0], args[1]), nil
	case "ite":
		return graph.Ite(args[0], args[1], args[2]), nil
	case "convert":
		to, ok := kindNames[e.To]
		if !ok {
			return nil, fmt.Errorf("convert: unknown target kind %q", e.To)
		}
		return convert.Convert(rm, args[0], to), nil
	case "toBits":
		return bits.ToBits(args[0]), nil
	case "fromBits":
		return bits.FromBits(args[0]), nil
	case "bitsEqual":
		return bits.BitsEqual(args[0], args[1]), nil
	}
	return nil, fmt.Errorf("unknown op %q", e.Op)
}

var opArity = map[string]int{
	"abs": 1, "neg": 1, "sqrt": 1, "roundToIntegral": 1,
	"add": 2, "sub": 2, "mul": 2, "div": 2, "rem": 2, "min": 2, "max": 2,
	"fma": 3,
	"objectEquals": 2,
	"isNormal":     1, "isSubnormal": 1, "isZero": 1, "isInfinite": 1,
	"isNaN": 1, "isNegative": 1, "isPositive": 1,
	"isNegativeZero": 1, "isPositiveZero": 1, "isPoint": 1,
	"not": 1, "and": 2, "or": 2, "ite": 3,
	"convert": 1, "toBits": 1, "fromBits": 1, "bitsEqual": 2,
}

func parseRounding(name string) (graph.Value, error) {
	if name == "" {
		return nil, nil
	}
	m, ok := roundingNames[name]
	if !ok {
		return nil, fmt.Errorf("unknown rounding mode %q", name)
	}
	return graph.RM(m), nil
}

func parseLiteral(spec LitSpec) (graph.Literal, error) {
	k, ok := kindNames[spec.Kind]
	if !ok {
		return graph.Literal{}, fmt.Errorf("unknown literal kind %q", spec.Kind)
	}

	switch {
	case k == kind.Bool:
		b, err := strconv.ParseBool(spec.Value)
		if err != nil {
			return graph.Literal{}, fmt.Errorf("bool literal %q: %w", spec.Value, err)
		}
		return graph.NewBool(b), nil
	case k == kind.Float32:
		f, err := strconv.ParseFloat(spec.Value, 32)
		if err != nil {
			return graph.Literal{}, fmt.Errorf("float32 literal %q: %w", spec.Value, err)
		}
		return graph.NewFloat32(float32(f)), nil
	case k == kind.Float64:
		f, err := strconv.ParseFloat(spec.Value, 64)
		if err != nil {
			return graph.Literal{}, fmt.Errorf("float64 literal %q: %w", spec.Value, err)
		}
		return graph.NewFloat64(f), nil
	case k.IsUnsigned():
		u, err := strconv.ParseUint(spec.Value, 0, k.Desc().Bits)
		if err != nil {
			return graph.Literal{}, fmt.Errorf("%s literal %q: %w", spec.Kind, spec.Value, err)
		}
		return graph.NewUint(k, u), nil
	case k.IsFixed():
		i, err := strconv.ParseInt(spec.Value, 0, k.Desc().Bits)
		if err != nil {
			return graph.Literal{}, fmt.Errorf("%s literal %q: %w", spec.Kind, spec.Value, err)
		}
		return graph.NewInt(k, i), nil
	case k == kind.BigInt:
		n, ok := new(big.Int).SetString(spec.Value, 10)
		if !ok {
			return graph.Literal{}, fmt.Errorf("bigint literal %q", spec.Value)
		}
		return graph.NewBigInt(n), nil
	case k == kind.Rational:
		r, ok := new(big.Rat).SetString(spec.Value)
		if !ok {
			return graph.Literal{}, fmt.Errorf("rational literal %q", spec.Value)
		}
		if spec.Exact != nil && !*spec.Exact {
			return graph.NewAlgebraic(r), nil
		}
		return graph.NewRational(r), nil
	}
	return graph.Literal{}, fmt.Errorf("kind %q cannot appear as a literal", spec.Kind)
}
