package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/flopezo/treeCl/pkg/natsort"
)

type tokenView struct {
	Kind  string `json:"kind"  yaml:"kind"`
	Text  string `json:"text"  yaml:"text"`
	Value string `json:"value" yaml:"value"`
}

type keyView struct {
	Input  string      `json:"input"  yaml:"input"`
	Tokens []tokenView `json:"tokens" yaml:"tokens"`
}

func newTokensCommand(state *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tokens <string>...",
		Short: "Show the natural sort key of each argument",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatErr := checkFormat(format, formatTable, formatJSON, formatYAML)
			if formatErr != nil {
				return formatErr
			}

			views := make([]keyView, len(args))

			for i, arg := range args {
				views[i] = newKeyView(arg, natsort.KeyOf(arg))
			}

			state.inst.RecordLabels(cmd.Context(), "tokens", args)

			if format != formatTable {
				return writeStructured(cmd.OutOrStdout(), format, views)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTokenTable(views))

			return nil
		},
	}

	cmd.Flags().StringVarP(&format, flagFormat, "f", formatTable, "output format: table, json, yaml")

	return cmd
}

func newKeyView(input string, key natsort.Key) keyView {
	tokens := make([]tokenView, len(key))

	for i, tok := range key {
		tokens[i] = tokenView{Kind: tok.Kind.String(), Text: tok.Text, Value: tok.Digits()}
	}

	return keyView{Input: input, Tokens: tokens}
}

func renderTokenTable(views []keyView) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Input", "#", "Kind", "Text", "Value"})

	for _, v := range views {
		if len(v.Tokens) == 0 {
			tw.AppendRow(table.Row{fmt.Sprintf("%q", v.Input), "-", "-", "", ""})

			continue
		}

		for i, tok := range v.Tokens {
			tw.AppendRow(table.Row{fmt.Sprintf("%q", v.Input), i, tok.Kind, fmt.Sprintf("%q", tok.Text), tok.Value})
		}

		tw.AppendSeparator()
	}

	return tw.Render()
}
