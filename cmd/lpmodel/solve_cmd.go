package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/costela-lab/lpmodel"
	"github.com/costela-lab/lpmodel/solve"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newSolveCmd() *cobra.Command {
	var (
		solverPath string
		timeLimit  float64
		computeIIS bool
		mipRelGap  float64
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "solve <problem.yaml>",
		Short: "Solve a problem described in YAML against an external solver",
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

			opts := solve.Options{
				SolverPath: solverPath,
				TimeLimit:  timeLimit,
				ComputeIIS: computeIIS,
				Logger:     lpmodel.ZerologLogger{Z: zerolog.New(os.Stderr).With().Timestamp().Logger()},
			}
			if cmd.Flags().Changed("mip-rel-gap") {
				opts.MIPRelGap = &mipRelGap
			}

			ctx := context.Background()
			if timeLimit > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, time.Duration(timeLimit*float64(time.Second))+30*time.Second)
				defer cancel()
			}

			result, err := solve.Solve(ctx, problem, opts)
			if err != nil {
				return err
			}

			return printResult(cmd, result, asJSON)
		},
	}

	cmd.Flags().StringVar(&solverPath, "solver", "", "path to the solver binary")
	cmd.Flags().Float64Var(&timeLimit, "time-limit", 0, "solver time limit in seconds")
	cmd.Flags().BoolVar(&computeIIS, "iis", false, "compute an IIS report when the problem is infeasible")
	cmd.Flags().Float64Var(&mipRelGap, "mip-rel-gap", 0, "MIP relative gap tolerance")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	if err := cmd.MarkFlagRequired("solver"); err != nil {
		panic(err)
	}

	return cmd
}

func printResult(cmd *cobra.Command, result solve.Result, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(resultToJSON(result))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "status: %s\n", result.Tag)
	switch result.Tag {
	case solve.Infeasible:
		fmt.Fprintln(out, "problem is infeasible")
		if result.IIS != nil {
			fmt.Fprintf(out, "IIS constraints: %v\n", result.IIS.Constraints)
			fmt.Fprintf(out, "IIS variables: %v\n", result.IIS.Variables)
		}
	case solve.Unbounded:
		fmt.Fprintln(out, "problem is unbounded")
	case solve.Error:
		fmt.Fprintf(out, "solver error (%s): %s\n", result.Reason, result.Details)
		return errors.Errorf("solve failed: %s", result.Reason)
	default:
		fmt.Fprintf(out, "objective: %v\n", result.Solution.Objective)
		for name, v := range result.Solution.Variables {
			fmt.Fprintf(out, "  %s = %v\n", name, v)
		}
	}
	return nil
}

func resultToJSON(result solve.Result) map[string]interface{} {
	m := map[string]interface{}{"status": result.Tag.String()}
	switch result.Tag {
	case solve.Infeasible:
		if result.IIS != nil {
			m["iis_constraints"] = result.IIS.Constraints
			m["iis_variables"] = result.IIS.Variables
		}
	case solve.Error:
		m["reason"] = result.Reason
		m["details"] = result.Details
	default:
		if result.Solution != nil {
			m["objective"] = result.Solution.Objective
			m["variables"] = result.Solution.Variables
			m["constraints"] = result.Solution.Constraints
		}
	}
	return m
}
