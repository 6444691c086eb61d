// Command puzzle prints and solves daily strategy puzzles offline.
//
// Usage:
//
//	puzzle generate [--date YYYY-MM-DD] [--json]
//	puzzle solve --file config.json
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "puzzle",
		Short:        "Generate and solve daily strategy puzzles",
		SilenceUsage: true,
	}

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newSolveCmd())
	return root
}
