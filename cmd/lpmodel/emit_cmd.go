package main

import (
	"fmt"

	"github.com/costela-lab/lpmodel/lp"
	"github.com/spf13/cobra"
)

func newEmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "emit <problem.yaml>",
		Short: "Print a problem's LP-format text without solving it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pf, err := loadProblemFile(args[0])
			if err != nil {
				return err
			}
			problem, err := buildProblem(pf)
			if err != nil {
				return err
			}

			text, err := lp.Emit(problem)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
