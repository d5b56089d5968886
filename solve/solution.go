package solve

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// statusTable maps the exact status strings spec.md §4.D's solution-file
// header carries on its second line to a Tag.
var statusTable = map[string]Tag{
	"Optimal":                        Optimal,
	"Bound on objective reached":     ObjectiveBound,
	"Target for objective reached":   ObjectiveTarget,
	"Time limit reached":             TimeLimit,
	"Iteration limit reached":        IterationLimit,
	"Solution limit reached":         SolutionLimit,
	"Infeasible":                     Infeasible,
	"Unbounded":                      Unbounded,
	"Primal infeasible or unbounded": Infeasible,
}

// Solution-file grammar (spec.md §4.D/§4.E/§6): the file begins with the
// two-line header "Model status\n<status string>\n". Everything after that
// is a solver-defined, "opaque" block layout; we tolerate the common
// HiGHS-style Columns/Rows name-value blocks and an "Objective value" line,
// and tolerate a missing block by leaving its map empty.
var (
	objectiveLineRe = regexp.MustCompile(`(?i)^\s*objective\s+value\s*:\s*(\S+)\s*$`)
	columnsHeaderRe = regexp.MustCompile(`(?i)^\s*columns\s+(\d+)\s*$`)
	rowsHeaderRe    = regexp.MustCompile(`(?i)^\s*rows\s+(\d+)\s*$`)
	nameValueRe     = regexp.MustCompile(`^\s*(\S+)\s+([-+0-9.eE]+)\s*$`)
)

// ParseSolution parses a solution file per spec.md §4.D/§4.E. It returns
// (nil, false, nil) when the two-line "Model status\n<status string>"
// header is absent, or carries a status string outside the recognized
// table — both of which the orchestrator treats as "fall back to
// regex-matching the captured output" per §4.D. A non-nil error means the
// header was recognized but the body (objective/column/row values) could
// not be parsed.
func ParseSolution(text string) (*Solution, bool, error) {
	lines := strings.Split(text, "\n")
	if len(lines) < 2 || strings.TrimSpace(lines[0]) != "Model status" {
		return nil, false, nil
	}

	tag, ok := statusTable[strings.TrimSpace(lines[1])]
	if !ok {
		return nil, false, nil
	}

	sol := &Solution{
		Status:      tag,
		Feasible:    tag.feasible(),
		Variables:   map[string]float64{},
		Constraints: map[string]float64{},
	}

	var inColumns, inRows bool
	for _, line := range lines[2:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if m := objectiveLineRe.FindStringSubmatch(line); m != nil {
			v, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				return nil, true, errors.Wrap(err, "solve: parsing objective value")
			}
			sol.Objective = v
			inColumns, inRows = false, false
			continue
		}
		if columnsHeaderRe.MatchString(line) {
			inColumns, inRows = true, false
			continue
		}
		if rowsHeaderRe.MatchString(line) {
			inColumns, inRows = false, true
			continue
		}
		if m := nameValueRe.FindStringSubmatch(line); m != nil && (inColumns || inRows) {
			v, err := strconv.ParseFloat(m[2], 64)
			if err != nil {
				return nil, true, errors.Wrapf(err, "solve: parsing value for %q", m[1])
			}
			if inColumns {
				sol.Variables[m[1]] = v
			} else {
				sol.Constraints[m[1]] = v
			}
		}
	}

	return sol, true, nil
}
