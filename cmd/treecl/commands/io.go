package commands

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	stdinArg      = "-"
	maxLineBytes  = 16 << 20
	initialBuffer = 64 << 10
)

// Output formats.
const (
	formatPlain = "plain"
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// ErrUnknownFormat is returned for an unsupported --format value.
var ErrUnknownFormat = errors.New("unknown output format")

// readLines reads lines from each named file, or from the command's stdin
// when no file (or "-") is given.
func readLines(cmd *cobra.Command, paths []string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{stdinArg}
	}

	var lines []string

	for _, path := range paths {
		fileLines, err := readLinesFrom(cmd, path)
		if err != nil {
			return nil, err
		}

		lines = append(lines, fileLines...)
	}

	return lines, nil
}

func readLinesFrom(cmd *cobra.Command, path string) ([]string, error) {
	if path == stdinArg {
		return scanLines(cmd.InOrStdin(), "stdin")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	return scanLines(f, path)
}

func scanLines(r io.Reader, name string) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialBuffer), maxLineBytes)

	var lines []string

	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}

	err := scanner.Err()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	return lines, nil
}

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		err := enc.Encode(v)
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)

		err := enc.Encode(v)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		err = enc.Close()
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func checkFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}

	return fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, format, strings.Join(allowed, ", "))
}
