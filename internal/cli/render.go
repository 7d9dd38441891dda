package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/felixdae/sbv/internal/harness"
	"github.com/felixdae/sbv/internal/smtlib"
)

// RenderResult holds the rendered scenario.
type RenderResult struct {
	Scenario    string `json:"scenario"`
	Session     string `json:"session"`
	Nodes       int    `json:"nodes"`
	Fingerprint string `json:"fingerprint"`
	Script      string `json:"script"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "render <scenario.yaml>",
		Short: "Build a scenario and print its SMT-LIB rendering",
		Long: `Load a YAML lifting scenario, realize its roots in a fresh context, and
print the resulting node table as an SMT-LIB script. Boolean roots are
asserted; other roots are noted in comments.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(rootOpts, args[0], cmd)
		},
	}
}

func runRender(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		msg := fmt.Sprintf("scenario file not found: %s", path)
		_ = formatter.Error(ErrCodeNotFound, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	scenario, err := harness.LoadScenario(path)
	if err != nil {
		msg := fmt.Sprintf("cannot load scenario %s", path)
		_ = formatter.Error(ErrCodeScenario, msg, err.Error())
		return WrapExitError(ExitFailure, msg, err)
	}

	ctx, roots, err := scenario.Build()
	if err != nil {
		msg := fmt.Sprintf("cannot build scenario %s", scenario.Name)
		_ = formatter.Error(ErrCodeScenario, msg, err.Error())
		return WrapExitError(ExitFailure, msg, err)
	}

	formatter.VerboseLog("scenario %s: %d node(s), session %s, fingerprint %016x",
		scenario.Name, ctx.Len(), ctx.SessionID(), ctx.Fingerprint())

	script := smtlib.Render(ctx, roots)

	if formatter.Format == "json" {
		return formatter.Success(RenderResult{
			Scenario:    scenario.Name,
			Session:     ctx.SessionID(),
			Nodes:       ctx.Len(),
			Fingerprint: fmt.Sprintf("%016x", ctx.Fingerprint()),
			Script:      script,
		})
	}

	fmt.Fprint(formatter.Writer, script)
	return nil
}
