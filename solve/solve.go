// Package solve orchestrates an external MIP/LP solver: it emits a problem
// to LP-format text, invokes a solver binary as a child process, and parses
// back its solution (and, optionally, its IIS report) into a Result.
package solve

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"github.com/costela-lab/lpmodel"
	"github.com/costela-lab/lpmodel/lp"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Solve emits problem to LP format, runs the solver at opts.SolverPath
// against it, and returns a classified Result. It never returns a non-nil
// error for solver failures — those become Result{Tag: Error}; the error
// return is reserved for problems Solve itself cannot proceed past (a
// degree-too-high objective/constraint, a temp-directory failure).
func Solve(ctx context.Context, problem *lpmodel.Problem, opts Options) (Result, error) {
	log := opts.logger()

	lpText, err := lp.Emit(problem)
	if err != nil {
		var tooHigh *lpmodel.DegreeTooHighError
		if errors.As(err, &tooHigh) {
			return Result{}, err
		}
		return Result{}, errors.Wrap(err, "solve: emitting LP text")
	}

	dir, err := os.MkdirTemp("", "lpmodel-solve-*")
	if err != nil {
		return Result{}, errors.Wrap(err, "solve: creating temp directory")
	}
	defer os.RemoveAll(dir)

	// Names reserved per spec.md §4.D step 1: model.lp, solution.lp,
	// options.txt, and — only when IIS is requested — iis_options.txt and
	// iis.lp, which must never be shared with the main pass's artifacts.
	modelPath := filepath.Join(dir, "model.lp")
	if err := os.WriteFile(modelPath, []byte(lpText), 0o600); err != nil {
		return Result{}, errors.Wrap(err, "solve: writing model file")
	}

	optsPath, err := writeMainOptionsFile(dir, opts)
	if err != nil {
		return Result{}, errors.Wrap(err, "solve: writing options file")
	}

	solutionPath := filepath.Join(dir, "solution.lp")
	iisOptsPath := filepath.Join(dir, "iis_options.txt")
	iisModelPath := filepath.Join(dir, "iis.lp")

	iisAttempt := opts.ComputeIIS

	var (
		iisCtx    context.Context
		iisCancel context.CancelFunc
		iisDone   chan error
	)

	// The IIS task is spawned before the main solver is invoked (spec.md §5
	// "Ordering"), so both children read a stable model file. Its context is
	// independent of the main pass's: per §4.D step 7 / §5 "Cancellation", an
	// infeasible main result waits for the IIS pass (bounded by time_limit),
	// but every other main outcome forcibly cancels it immediately rather
	// than waiting for it to finish naturally.
	if iisAttempt {
		if opts.TimeLimit > 0 {
			iisCtx, iisCancel = context.WithTimeout(ctx, time.Duration(opts.TimeLimit*float64(time.Second)))
		} else {
			iisCtx, iisCancel = context.WithCancel(ctx)
		}
		defer iisCancel()

		if err := writeIISOptionsFile(iisOptsPath, iisModelPath); err != nil {
			return Result{}, errors.Wrap(err, "solve: writing IIS options file")
		}

		log.Print("solve: starting IIS pass")
		iisDone = make(chan error, 1)
		go func() {
			var out bytes.Buffer
			_, runErr := runSolver(iisCtx, opts.SolverPath, &out, opts.TimeLimit, modelPath, iisOptsPath, "")
			iisDone <- runErr
		}()
	}

	var (
		mainOut  bytes.Buffer
		mainExit int
	)

	var mainGroup errgroup.Group
	mainGroup.Go(func() error {
		log.Print("solve: starting main solver pass")
		code, runErr := runSolver(ctx, opts.SolverPath, &mainOut, opts.TimeLimit, modelPath, optsPath, solutionPath)
		mainExit = code
		return runErr
	})

	// Exit codes 0 and 1 both mean "ran to completion" (spec.md §4.D/§6);
	// only codes outside that pair are solver_error. errgroup surfaces the
	// main pass's *exec.ExitError here regardless of which exit code it
	// carries, so that has to be inspected before treating it as a failure.
	if waitErr := mainGroup.Wait(); waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) && (exitErr.ExitCode() == 0 || exitErr.ExitCode() == 1) {
			mainExit = exitErr.ExitCode()
		} else {
			if iisAttempt {
				iisCancel()
			}
			if errors.As(waitErr, &exitErr) {
				return Result{
					Tag:      Error,
					Reason:   ReasonSolverError,
					Details:  mainOut.String(),
					ExitCode: exitErr.ExitCode(),
					Model:    lpText,
				}, nil
			}
			return Result{
				Tag:     Error,
				Reason:  ReasonSolverError,
				Details: waitErr.Error(),
				Model:   lpText,
			}, nil
		}
	}

	result, err := interpretResult(solutionPath, mainOut.String(), mainExit, lpText)
	if !iisAttempt {
		return result, err
	}

	if err != nil || result.Tag != Infeasible {
		iisCancel()
		return result, err
	}

	select {
	case iisErr := <-iisDone:
		if iisErr != nil {
			log.Print(fmt.Sprintf("solve: IIS pass failed: %v", iisErr))
		}
	case <-time.After(iisDeadline(opts.TimeLimit)):
		log.Print("solve: IIS pass exceeded its deadline, abandoning")
		iisCancel()
	}

	result.IIS, _ = ParseIISFile(iisModelPath)
	return result, nil
}

// iisDeadline bounds the IIS pass's wait by time_limit seconds exactly
// (spec.md §5), falling back to 30s when no TimeLimit was set so a hung
// solver can never block Solve forever.
func iisDeadline(timeLimit float64) time.Duration {
	if timeLimit > 0 {
		return time.Duration(timeLimit * float64(time.Second))
	}
	return 30 * time.Second
}

// runSolver invokes the solver binary per spec.md §6's CLI contract:
// positional model file, --solution_file <path> (main pass only,
// solutionPath == "" for the IIS pass), optional --time_limit <seconds>,
// and --options_file <path>.
func runSolver(ctx context.Context, solverPath string, out *bytes.Buffer, timeLimit float64, modelPath, optsPath, solutionPath string) (int, error) {
	args := []string{modelPath}
	if solutionPath != "" {
		args = append(args, "--solution_file", solutionPath)
	}
	if timeLimit > 0 {
		args = append(args, "--time_limit", strconv.FormatFloat(timeLimit, 'f', -1, 64))
	}
	if optsPath != "" {
		args = append(args, "--options_file", optsPath)
	}

	cmd := exec.CommandContext(ctx, solverPath, args...)
	cmd.Stdout = out
	cmd.Stderr = out

	if err := cmd.Run(); err != nil {
		if cmd.ProcessState != nil {
			return cmd.ProcessState.ExitCode(), err
		}
		return -1, err
	}
	return cmd.ProcessState.ExitCode(), nil
}

// writeMainOptionsFile serializes the Options fields spec.md §6 recognizes
// for the main pass's options file, "key = value" per line, each included
// only when the corresponding user option is present. Returns "" when no
// option applies, so Solve passes no --options_file flag at all.
func writeMainOptionsFile(dir string, opts Options) (string, error) {
	var lines []string
	if opts.MIPRelGap != nil {
		lines = append(lines, fmt.Sprintf("mip_rel_gap = %s", strconv.FormatFloat(*opts.MIPRelGap, 'f', -1, 64)))
	}
	if opts.LogToConsole != nil {
		lines = append(lines, fmt.Sprintf("log_to_console = %s", strconv.FormatBool(*opts.LogToConsole)))
	}
	if opts.MIPMaxStallNodes != nil {
		lines = append(lines, fmt.Sprintf("mip_max_stall_nodes = %d", *opts.MIPMaxStallNodes))
	}

	if len(lines) == 0 {
		return "", nil
	}

	path := filepath.Join(dir, "options.txt")
	text := ""
	for _, l := range lines {
		text += l + "\n"
	}
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// writeIISOptionsFile writes the IIS pass's own options file, containing
// exactly the three lines spec.md §4.D mandates — never the main pass's
// options, to keep the two passes' artifacts from cross-contaminating.
func writeIISOptionsFile(path, iisModelPath string) error {
	text := fmt.Sprintf("write_iis_model_file = %s\niis_strategy = 2\npresolve = off\n", iisModelPath)
	return os.WriteFile(path, []byte(text), 0o600)
}

// mip_gap extraction (spec.md §4.D): from the captured output, absolute
// "Relative gap: <float>" or percent "Gap: <float>%" (divided by 100).
var (
	relGapRe = regexp.MustCompile(`Relative gap:\s*([\d.]+)`)
	pctGapRe = regexp.MustCompile(`Gap:\s*([\d.]+)%`)
)

func extractMIPGap(output string) *float64 {
	if m := relGapRe.FindStringSubmatch(output); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return &v
		}
	}
	if m := pctGapRe.FindStringSubmatch(output); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			v /= 100
			return &v
		}
	}
	return nil
}

// Fallback status regexes (spec.md §4.D), tried against the captured output
// when the solution file is unreadable or its "Model status" header is
// missing or unrecognized.
var (
	fallbackInfeasibleRe = regexp.MustCompile(`(?m)^\s*Status\s+Infeasible\s*$`)
	fallbackPrimalRe     = regexp.MustCompile(`(?m)^\s*Status\s+Primal infeasible or unbounded\s*$`)
	fallbackUnboundedRe  = regexp.MustCompile(`(?m)^\s*Status\s+Unbounded\s*$`)
)

func fallbackStatus(output string) (Tag, bool) {
	switch {
	case fallbackInfeasibleRe.MatchString(output), fallbackPrimalRe.MatchString(output):
		return Infeasible, true
	case fallbackUnboundedRe.MatchString(output):
		return Unbounded, true
	default:
		return 0, false
	}
}

// interpretResult applies spec.md §4.D's result-interpretation rules. The
// caller has already filtered out exit codes outside {0, 1}; it attaches an
// IIS report of its own afterward, for an Infeasible result only.
func interpretResult(solutionPath, output string, exitCode int, lpText string) (Result, error) {
	data, readErr := os.ReadFile(solutionPath)
	if readErr == nil {
		sol, sawStatus, parseErr := ParseSolution(string(data))
		if parseErr != nil {
			return Result{
				Tag:      Error,
				Reason:   ReasonParseError,
				Details:  parseErr.Error(),
				ExitCode: exitCode,
				Model:    lpText,
			}, nil
		}
		if sawStatus {
			switch sol.Status {
			case Infeasible:
				return Result{Tag: Infeasible, Output: output, Model: lpText}, nil
			case Unbounded:
				return Result{Tag: Unbounded, Output: output, Model: lpText}, nil
			default:
				sol.MIPGap = extractMIPGap(output)
				return Result{Tag: sol.Status, Solution: sol}, nil
			}
		}
	}

	// Solution file unreadable, or its "Model status" header missing or
	// unrecognized: fall back to regex-matching the captured output.
	if tag, ok := fallbackStatus(output); ok {
		return Result{Tag: tag, Output: output, Model: lpText}, nil
	}

	if readErr != nil && os.IsNotExist(readErr) {
		return Result{
			Tag:      Error,
			Reason:   ReasonNoSolution,
			Details:  output,
			ExitCode: exitCode,
			Model:    lpText,
		}, nil
	}

	return Result{
		Tag:      Error,
		Reason:   ReasonUnknownStatus,
		Details:  output,
		ExitCode: exitCode,
		Model:    lpText,
	}, nil
}
