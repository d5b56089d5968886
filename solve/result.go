package solve

import (
	"context"
	"fmt"

	"github.com/costela-lab/lpmodel"
	"github.com/pkg/errors"
)

// Tag classifies a Result the way spec.md §4.D's table does.
type Tag int

const (
	Optimal Tag = iota
	TimeLimit
	IterationLimit
	ObjectiveBound
	ObjectiveTarget
	SolutionLimit
	Infeasible
	Unbounded
	Error
)

func (t Tag) String() string {
	switch t {
	case Optimal:
		return "optimal"
	case TimeLimit:
		return "time_limit"
	case IterationLimit:
		return "iteration_limit"
	case ObjectiveBound:
		return "objective_bound"
	case ObjectiveTarget:
		return "objective_target"
	case SolutionLimit:
		return "solution_limit"
	case Infeasible:
		return "infeasible"
	case Unbounded:
		return "unbounded"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// feasible reports whether t is one of the "solution present" tags.
func (t Tag) feasible() bool {
	switch t {
	case Optimal, TimeLimit, IterationLimit, ObjectiveBound, ObjectiveTarget, SolutionLimit:
		return true
	default:
		return false
	}
}

// Solution is a parsed solver solution: status, feasibility, objective
// value, and the variable/constraint value maps (spec.md §3 "Solution").
type Solution struct {
	Status      Tag
	Feasible    bool
	Objective   float64
	Variables   map[string]float64
	Constraints map[string]float64
	MIPGap      *float64
}

// Reason values name the error kinds of spec.md §7's taxonomy table that
// apply to the orchestrator's Result (as opposed to the pure polynomial
// algebra, which fails with plain Go errors instead of a Result). Degree-
// too-high is also in that taxonomy, but it never reaches this point as a
// Result: Solve returns it as a raw *lpmodel.DegreeTooHighError before a
// temp directory is even created, since it's a problem Solve itself cannot
// proceed past rather than something the external solver reported.
const (
	ReasonNoSolution    = "no-solution"
	ReasonParseError    = "parse-error"
	ReasonUnknownStatus = "unknown-status"
	ReasonSolverError   = "solver-error"
)

// Result is the tagged union Solve returns. Only the fields relevant to Tag
// are populated; see spec.md §4.D's table.
type Result struct {
	Tag Tag

	// Populated for feasible tags (Optimal .. SolutionLimit).
	Solution *Solution

	// Populated for Infeasible and Unbounded: the solver's captured output.
	Output string

	// Populated for Infeasible only, and only if IIS computation was
	// requested and completed in time.
	IIS *IIS

	// Populated for Error. Details holds the solver's captured output
	// (or, for ReasonParseError, the parse error's message).
	Reason   string
	Details  string
	ExitCode int

	// The emitted LP text; populated for Error, and also for Infeasible and
	// Unbounded.
	Model string
}

// SolveError adapts a non-feasible Result into an error, for MustSolve.
type SolveError struct {
	Result Result
}

func (e *SolveError) Error() string {
	switch e.Result.Tag {
	case Infeasible:
		msg := "lpmodel/solve: problem is infeasible"
		if e.Result.IIS != nil {
			msg += fmt.Sprintf(" (IIS: %d constraints, %d variables)", len(e.Result.IIS.Constraints), len(e.Result.IIS.Variables))
		}
		return msg
	case Unbounded:
		return "lpmodel/solve: problem is unbounded"
	case Error:
		return fmt.Sprintf("lpmodel/solve: %s: %s", e.Result.Reason, e.Result.Details)
	default:
		return fmt.Sprintf("lpmodel/solve: unexpected result tag %s", e.Result.Tag)
	}
}

// MustSolve wraps Solve and converts Infeasible, Unbounded and Error results
// into a single *SolveError, so callers who would rather handle solver
// failure as a Go error than inspect a Result can do so, mirroring the
// teacher's own SolveError/Error() pattern for lp_solve's return codes.
func MustSolve(ctx context.Context, problem *lpmodel.Problem, opts Options) (*Solution, error) {
	result, err := Solve(ctx, problem, opts)
	if err != nil {
		return nil, err
	}

	if result.Tag.feasible() {
		return result.Solution, nil
	}

	return nil, errors.WithStack(&SolveError{Result: result})
}
