package solve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSolutionOptimal(t *testing.T) {
	text := `Model status
Optimal
Objective value              : 42.5
Columns 2
x0  1.5
x1  2
Rows 1
c0  10
`
	sol, ok, err := ParseSolution(text)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Optimal, sol.Status)
	assert.True(t, sol.Feasible)
	assert.Equal(t, 42.5, sol.Objective)
	assert.Equal(t, 1.5, sol.Variables["x0"])
	assert.Equal(t, 2.0, sol.Variables["x1"])
	assert.Equal(t, 10.0, sol.Constraints["c0"])
}

func TestParseSolutionInfeasible(t *testing.T) {
	sol, ok, err := ParseSolution("Model status\nInfeasible\n")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Infeasible, sol.Status)
	assert.False(t, sol.Feasible)
}

func TestParseSolutionPrimalInfeasibleOrUnboundedMapsToInfeasible(t *testing.T) {
	sol, ok, err := ParseSolution("Model status\nPrimal infeasible or unbounded\n")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Infeasible, sol.Status)
}

func TestParseSolutionMissingHeader(t *testing.T) {
	sol, ok, err := ParseSolution("just some unrelated text\n\n")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, sol)
}

func TestParseSolutionSingleLineIsMissingHeader(t *testing.T) {
	// The header is always two lines; a lone "Model status" with nothing
	// after it must not be mistaken for a recognized header.
	sol, ok, err := ParseSolution("Model status\n")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, sol)
}

func TestParseSolutionUnrecognizedStatus(t *testing.T) {
	sol, ok, err := ParseSolution("Model status\nsome-made-up-status\n")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, sol)
}

func TestParseSolutionAllStatusStrings(t *testing.T) {
	cases := map[string]Tag{
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
	for status, want := range cases {
		sol, ok, err := ParseSolution("Model status\n" + status + "\n")
		require.NoError(t, err)
		require.True(t, ok, status)
		assert.Equal(t, want, sol.Status, status)
	}
}

func TestParseSolutionMissingBlocks(t *testing.T) {
	// A file with the two-line header and an objective line but no
	// Columns/Rows blocks still parses: a missing block is tolerated.
	text := `Model status
Optimal
Objective value              : 0
`
	sol, ok, err := ParseSolution(text)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Optimal, sol.Status)
	assert.Equal(t, 0.0, sol.Objective)
}

func TestParseSolutionUnparseableObjectiveIsParseError(t *testing.T) {
	text := "Model status\nOptimal\nObjective value              : not-a-number\n"
	_, ok, err := ParseSolution(text)
	require.True(t, ok)
	require.Error(t, err)
}
