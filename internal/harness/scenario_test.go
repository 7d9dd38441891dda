package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioGolden(t *testing.T) {
	for _, name := range []string{"mixed_lifting", "fma_literals", "convert_guard"} {
		t.Run(name, func(t *testing.T) {
			RunWithGolden(t, filepath.Join("testdata", "scenarios", name+".yaml"))
		})
	}
}

func TestLoadScenario(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "scenarios", "mixed_lifting.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "mixed_lifting", s.Name)
	require.Len(t, s.Vars, 1)
	assert.Equal(t, "x", s.Vars[0].Name)
	assert.Equal(t, "float32", s.Vars[0].Kind)
	require.Len(t, s.Roots, 1)
	assert.Equal(t, "objectEquals", s.Roots[0].Op)
}

func TestLoadScenarioMissingName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("roots:\n  - op: abs\n"), 0o644))

	_, err := LoadScenario(path)
	assert.ErrorContains(t, err, "missing name")
}

func TestLoadScenarioNoRoots(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: empty\n"), 0o644))

	_, err := LoadScenario(path)
	assert.ErrorContains(t, err, "no roots")
}

func TestBuildUnknownOp(t *testing.T) {
	s := &Scenario{
		Name:  "bad",
		Roots: []Expr{{Op: "frobnicate", Args: []Expr{{Lit: &LitSpec{Kind: "float32", Value: "1"}}}}},
	}

	_, _, err := s.Build()
	assert.ErrorContains(t, err, `unknown op "frobnicate"`)
}

func TestBuildUndeclaredVar(t *testing.T) {
	s := &Scenario{
		Name:  "bad",
		Roots: []Expr{{Op: "isNaN", Args: []Expr{{Var: "ghost"}}}},
	}

	_, _, err := s.Build()
	assert.ErrorContains(t, err, `undeclared var "ghost"`)
}

func TestBuildArityMismatch(t *testing.T) {
	s := &Scenario{
		Name: "bad",
		Roots: []Expr{{Op: "add", Rounding: "rne", Args: []Expr{
			{Lit: &LitSpec{Kind: "float32", Value: "1"}},
		}}},
	}

	_, _, err := s.Build()
	assert.ErrorContains(t, err, "takes 2 args")
}

func TestParseLiteralSpecials(t *testing.T) {
	tests := []struct {
		kind, value string
	}{
		{"float32", "nan"},
		{"float32", "-inf"},
		{"float64", "-0"},
		{"rational", "3/4"},
		{"bigint", "-12345678901234567890"},
		{"uint64", "18446744073709551615"},
	}
	for _, tt := range tests {
		t.Run(tt.kind+"/"+tt.value, func(t *testing.T) {
			_, err := parseLiteral(LitSpec{Kind: tt.kind, Value: tt.value})
			assert.NoError(t, err)
		})
	}
}
