package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a lifting conformance scenario.
type Scenario struct {
	// Name uniquely identifies this scenario; it doubles as the golden
	// file name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Vars declares the free symbolic inputs available to the expression
	// tree.
	Vars []VarDecl `yaml:"vars,omitempty"`

	// Roots are the expressions to realize, in order. Boolean roots are
	// asserted in the rendering.
	Roots []Expr `yaml:"roots"`
}

// VarDecl declares a free symbolic input.
type VarDecl struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

// Expr is one node of the scenario expression tree. Exactly one of Var,
// Lit, or Op must be set.
type Expr struct {
	// Var references a declared variable by name.
	Var string `yaml:"var,omitempty"`

	// Lit embeds a literal operand.
	Lit *LitSpec `yaml:"lit,omitempty"`

	// Op names a lifted operation (add, fma, isNaN, convert, bitsEqual, ...).
	Op string `yaml:"op,omitempty"`

	// Rounding names the rounding mode for rounding-gated operations:
	// rne, rna, rtp, rtn, rtz.
	Rounding string `yaml:"rounding,omitempty"`

	// To names the target kind of a convert operation.
	To string `yaml:"to,omitempty"`

	// Args are the ordered operands.
	Args []Expr `yaml:"args,omitempty"`
}

// LitSpec describes a literal operand.
type LitSpec struct {
	Kind  string `yaml:"kind"`
	Value string `yaml:"value"`

	// Exact marks rational literals; false means an algebraic
	// approximation, which never takes the concrete conversion path.
	// Defaults to true.
	Exact *bool `yaml:"exact,omitempty"`
}

// LoadScenario reads and parses a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("scenario %s: missing name", path)
	}
	if len(s.Roots) == 0 {
		return nil, fmt.Errorf("scenario %s: no roots", path)
	}
	return &s, nil
}
