package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/felixdae/sbv/internal/kind"
)

// KindInfo is one row of the kinds listing.
type KindInfo struct {
	Name          string `json:"name"`
	Bits          int    `json:"bits,omitempty"`
	Signed        bool   `json:"signed"`
	ExponentBits  int    `json:"exponent_bits,omitempty"`
	MantissaBits  int    `json:"mantissa_bits,omitempty"`
	HasNativeEval bool   `json:"has_native_eval"`
}

// NewKindsCommand creates the kinds command.
func NewKindsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the supported value kinds",
		Long: `List every supported value kind with its width, signedness, IEEE-754
field layout (for floating kinds), and whether the host provides a
concrete evaluator for its literals.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKinds(rootOpts, cmd)
		},
	}
}

func runKinds(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	infos := make([]KindInfo, 0, len(kind.All()))
	for _, k := range kind.All() {
		d := k.Desc()
		infos = append(infos, KindInfo{
			Name:          d.Name,
			Bits:          d.Bits,
			Signed:        d.Signed,
			ExponentBits:  d.ExponentBits,
			MantissaBits:  d.MantissaBits,
			HasNativeEval: d.HasNativeEval,
		})
	}

	if formatter.Format == "json" {
		return formatter.Success(infos)
	}

	w := tabwriter.NewWriter(formatter.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tBITS\tSIGNED\tEXP\tMANT\tNATIVE EVAL")
	for _, i := range infos {
		bits := "-"
		if i.Bits > 0 {
			bits = fmt.Sprintf("%d", i.Bits)
		}
		fmt.Fprintf(w, "%s\t%s\t%v\t%d\t%d\t%v\n",
			i.Name, bits, i.Signed, i.ExponentBits, i.MantissaBits, i.HasNativeEval)
	}
	return w.Flush()
}
