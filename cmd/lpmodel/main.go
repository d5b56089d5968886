// Command lpmodel loads a problem description from a YAML file, solves it
// against an external LP/MIP solver, and prints the result.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "lpmodel",
		Short: "lpmodel",
		Long:  "lpmodel builds and solves linear and mixed-integer programs described in YAML.",
	}

	var verbose bool
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		zerolog.SetGlobalLevel(level)
	}

	root.AddCommand(newSolveCmd())
	root.AddCommand(newEmitCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
