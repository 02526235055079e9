package commands

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/flopezo/treeCl/pkg/analysis"
)

func newAnalysesCommand(state *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyses",
		Short: "List the supported tree-inference analysis methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := table.NewWriter()
			tw.SetStyle(table.StyleLight)
			tw.AppendHeader(table.Row{"Method", "Default", "Description"})

			for _, m := range analysis.All() {
				def := ""
				if m.String() == state.cfg.Analysis.DefaultMethod {
					def = "*"
				}

				tw.AppendRow(table.Row{m, def, m.Description()})
			}

			fmt.Fprintln(cmd.OutOrStdout(), tw.Render())

			return nil
		},
	}

	cmd.AddCommand(newAnalysesCheckCommand())

	return cmd
}

func newAnalysesCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <method>...",
		Short: "Validate analysis method names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			ok := color.New(color.FgGreen)
			bad := color.New(color.FgRed)

			var errs []error

			for _, arg := range args {
				m, err := analysis.Parse(arg)
				if err != nil {
					bad.Fprintf(out, "%-8s unknown\n", arg)

					errs = append(errs, err)

					continue
				}

				ok.Fprintf(out, "%-8s ok (%s)\n", m, m.Description())
			}

			return errors.Join(errs...)
		},
	}
}
