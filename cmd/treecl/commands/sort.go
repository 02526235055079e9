package commands

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/flopezo/treeCl/pkg/natsort"
)

// ErrNotSorted is returned by sort --check when the input is out of order.
var ErrNotSorted = errors.New("input is not in natural order")

type sortOptions struct {
	format  string
	reverse bool
	unique  bool
	strict  bool
	check   bool
}

func newSortCommand(state *app) *cobra.Command {
	var opts sortOptions

	cmd := &cobra.Command{
		Use:   "sort [file...]",
		Short: "Sort lines in natural order (item2 before item10)",
		Long: `Sort lines read from files, or stdin, so that embedded numbers compare
by value. Lines that differ only in leading zeros keep a stable bytewise order.

With --strict, a number and a text run at the same position make the
command fail instead of sorting numbers first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(cmd, state, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.format, flagFormat, "f", formatPlain, "output format: plain, json, yaml")
	f.BoolVarP(&opts.reverse, "reverse", "r", false, "reverse the result")
	f.BoolVarP(&opts.unique, "unique", "u", false, "drop duplicate lines")
	f.BoolVar(&opts.strict, "strict", false, "fail on number/text mismatches instead of ordering numbers first")
	f.BoolVarP(&opts.check, "check", "c", false, "only check the input order, duplicates allowed; print a diff when unsorted")

	return cmd
}

func runSort(cmd *cobra.Command, state *app, opts sortOptions, args []string) error {
	formatErr := checkFormat(opts.format, formatPlain, formatJSON, formatYAML)
	if formatErr != nil {
		return formatErr
	}

	ctx, span := state.tracer.Start(cmd.Context(), "treecl.sort")
	defer span.End()

	lines, err := readLines(cmd, args)
	if err != nil {
		return err
	}

	sorted := make([]string, len(lines))
	copy(sorted, lines)

	if opts.strict {
		err = natsort.SortStrict(sorted, func(s string) string { return s })
		if err != nil {
			return fmt.Errorf("sort: %w", err)
		}
	} else {
		natsort.Strings(sorted)
	}

	state.inst.RecordLabels(ctx, "sort", lines)

	if opts.reverse {
		slices.Reverse(sorted)
	}

	// Order is checked before --unique: duplicates never make input unsorted.
	if opts.check {
		state.logger.DebugContext(ctx, "checked lines", "in", len(lines), "strict", opts.strict)

		if slices.Equal(lines, sorted) {
			return nil
		}

		writeLineDiff(cmd.ErrOrStderr(), lines, sorted)

		return ErrNotSorted
	}

	if opts.unique {
		sorted = slices.Compact(sorted)
	}

	state.logger.DebugContext(ctx, "sorted lines", "in", len(lines), "out", len(sorted), "strict", opts.strict)

	out := cmd.OutOrStdout()

	if opts.format != formatPlain {
		return writeStructured(out, opts.format, sorted)
	}

	for _, line := range sorted {
		fmt.Fprintln(out, line)
	}

	return nil
}

// writeLineDiff prints a line-oriented diff from got to want.
func writeLineDiff(w io.Writer, got, want []string) {
	dmp := diffmatchpatch.New()

	gotText := strings.Join(got, "\n") + "\n"
	wantText := strings.Join(want, "\n") + "\n"

	gotChars, wantChars, lineArray := dmp.DiffLinesToChars(gotText, wantText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(gotChars, wantChars, false), lineArray)

	fmt.Fprintln(w, "--- input")
	fmt.Fprintln(w, "+++ natural order")

	for _, d := range diffs {
		prefix := " "

		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffEqual:
		}

		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}

			fmt.Fprint(w, prefix+line)
		}
	}
}
