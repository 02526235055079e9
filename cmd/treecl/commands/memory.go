package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flopezo/treeCl/pkg/jobmem"
	"github.com/flopezo/treeCl/pkg/units"
)

const (
	flagMultiplier = "multiplier"
	flagSpareMB    = "spare-mb"
)

func newMemoryCommand(state *app) *cobra.Command {
	var (
		multiplier float64
		spareMB    uint64
	)

	cmd := &cobra.Command{
		Use:   "memory <required-size>",
		Short: "Compute the LSF memory request for a PhyML memory estimate",
		Long: `Scale PhyML's memory estimate by the configured multiplier and add the
spare allowance. Sizes accept units (800MB, 1.5GiB); a bare number is MiB.`,
		Example: "  treecl memory 1.5GiB\n  treecl memory 900 --multiplier 1.5",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sizing := state.cfg.Sizing()

			if cmd.Flags().Changed(flagMultiplier) {
				sizing.Multiplier = multiplier
			}

			if cmd.Flags().Changed(flagSpareMB) {
				sizing.SpareMB = spareMB
			}

			required, err := jobmem.ParseSize(args[0])
			if err != nil {
				return err
			}

			request, err := sizing.RequestBytes(required)
			if err != nil {
				return err
			}

			state.logger.DebugContext(cmd.Context(), "memory request",
				"required_bytes", required, "multiplier", sizing.Multiplier,
				"spare_mb", sizing.SpareMB, "epsilon", sizing.Epsilon, "request_mb", request)

			requiredMB := units.BytesToMiBCeil(required)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "estimate: %s (%d MiB)\n", jobmem.FormatMB(requiredMB), requiredMB)
			fmt.Fprintf(out, "request:  %s (%d MiB)\n", jobmem.FormatMB(request), request)
			fmt.Fprintf(out, "bsub -M %d -R \"rusage[mem=%d]\"\n", request, request)

			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&multiplier, flagMultiplier, jobmem.DefaultMultiplier, "headroom multiplier (default from config)")
	f.Uint64Var(&spareMB, flagSpareMB, jobmem.DefaultSpareMB, "extra MiB added to every job (default from config)")

	return cmd
}
