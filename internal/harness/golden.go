package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/felixdae/sbv/internal/smtlib"
)

// RunWithGolden builds a scenario and compares its SMT-LIB rendering
// against the golden file testdata/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenarioPath string) {
	t.Helper()

	scenario, err := LoadScenario(scenarioPath)
	if err != nil {
		t.Fatalf("load scenario: %v", err)
	}

	ctx, roots, err := scenario.Build()
	if err != nil {
		t.Fatalf("build scenario: %v", err)
	}

	out := smtlib.Render(ctx, roots)

	g := goldie.New(t)
	g.Assert(t, scenario.Name, []byte(out))
}
