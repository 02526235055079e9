// Package main provides the entry point for the treecl CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/flopezo/treeCl/cmd/treecl/commands"
)

func main() {
	err := commands.NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
