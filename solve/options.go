package solve

import "github.com/costela-lab/lpmodel"

// Options configures a Solve call. SolverPath is the only required field:
// the solver binary's location is an injected dependency (spec.md §9
// "Global state") — this package never looks for or downloads one.
//
// TimeLimit, ComputeIIS, MIPRelGap, MIPMaxStallNodes and LogToConsole are
// the options spec.md §4.D recognizes; any other configuration a caller
// sets on Options beyond these fields is simply ignored by Solve.
type Options struct {
	SolverPath string

	// TimeLimit is passed to the solver as the --time_limit CLI flag on both
	// the main and IIS passes, bounding each. When ComputeIIS is set it also
	// bounds, on the Go side, how long Solve waits for the IIS pass before
	// abandoning it, since IIS computation is best-effort and not worth
	// failing the whole solve over. Zero means unset.
	TimeLimit float64

	ComputeIIS bool

	MIPRelGap        *float64
	MIPMaxStallNodes *int
	LogToConsole     *bool

	// Logger receives diagnostic messages about the solve's progress. The
	// zero value logs nothing.
	Logger lpmodel.Logger
}

func (o Options) logger() lpmodel.Logger {
	if o.Logger == nil {
		return noopLogger{}
	}
	return o.Logger
}

type noopLogger struct{}

func (noopLogger) Print(v ...interface{}) {}
