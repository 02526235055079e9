package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/flopezo/treeCl/pkg/seqtype"
)

const fastaHeaderPrefix = ">"

type seqRecord struct {
	name string
	seq  strings.Builder
}

func newDNACommand(state *app) *cobra.Command {
	var threshold float64

	cmd := &cobra.Command{
		Use:   "dna [file]",
		Short: "Classify sequences as DNA or protein by ACGT content",
		Long: `Read one sequence per line, or FASTA records, from a file or stdin and
report the ACGT proportion of each. A sequence at or above the threshold is DNA.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("threshold") {
				threshold = state.cfg.DNA.Threshold
			}

			lines, err := readLines(cmd, args)
			if err != nil {
				return err
			}

			tw := table.NewWriter()
			tw.SetStyle(table.StyleLight)
			tw.AppendHeader(table.Row{"Sequence", "Residues", "ACGT", "Type"})

			for _, rec := range parseRecords(lines) {
				seq := rec.seq.String()
				tw.AppendRow(table.Row{
					rec.name,
					seqtype.Residues(seq),
					fmt.Sprintf("%.3f", seqtype.ACGTProportion(seq)),
					seqtype.Classify(seq, threshold),
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), tw.Render())

			return nil
		},
	}

	cmd.Flags().Float64Var(&threshold, "threshold", seqtype.DefaultDNAThreshold, "ACGT proportion needed to call DNA (default from config)")

	return cmd
}

// parseRecords groups FASTA records; outside any record each non-empty line
// is a sequence of its own, named seqN.
func parseRecords(lines []string) []*seqRecord {
	var (
		records []*seqRecord
		current *seqRecord
	)

	for _, line := range lines {
		line = strings.TrimSpace(line)

		if name, ok := strings.CutPrefix(line, fastaHeaderPrefix); ok {
			current = &seqRecord{name: strings.TrimSpace(name)}
			records = append(records, current)

			continue
		}

		if line == "" {
			continue
		}

		if current == nil {
			rec := &seqRecord{name: fmt.Sprintf("seq%d", len(records)+1)}
			rec.seq.WriteString(line)
			records = append(records, rec)

			continue
		}

		current.seq.WriteString(line)
	}

	return records
}
