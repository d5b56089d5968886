package lpmodel

import (
	"fmt"
	"sync"
	"testing"

	"github.com/costela-lab/lpmodel/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	bigProblem     *Problem
	bigProblemOnce sync.Once
)

// getBigProblem builds a 10,000-variable problem once, mirroring the
// teacher's getBigModelCopy fixture in golpa_test.go.
func getBigProblem(t *testing.T) *Problem {
	t.Helper()

	bigProblemOnce.Do(func() {
		p, err := NewProblem(Maximize)
		require.NoError(t, err)

		terms := make([]interface{}, 0, 10000)
		for i := 0; i < 10000; i++ {
			_, vp, err := p.NewVariable(fmt.Sprintf("x%d", i), WithBounds(-float64(i), float64(i)))
			require.NoError(t, err)
			terms = append(terms, vp)
		}
		obj, err := poly.SumLinear(terms)
		require.NoError(t, err)
		require.NoError(t, p.IncrementObjective(obj))

		bigProblem = p
	})

	return bigProblem
}

func TestNewProblemDirection(t *testing.T) {
	p, err := NewProblem(Maximize)
	require.NoError(t, err)
	assert.Equal(t, Maximize, p.Direction())
}

func TestNewVariableRegistersAndMangles(t *testing.T) {
	p, err := NewProblem(Minimize)
	require.NoError(t, err)

	v1, _, err := p.NewVariable("x")
	require.NoError(t, err)
	v2, _, err := p.NewVariable("y")
	require.NoError(t, err)

	assert.NotEqual(t, v1.ID, v2.ID)
	assert.Less(t, v1.ID, v2.ID)
	assert.Len(t, p.Variables(), 2)
}

func TestAddConstraintRejectsUnregisteredVariable(t *testing.T) {
	p, err := NewProblem(Minimize)
	require.NoError(t, err)

	stray, err := poly.Var("not-registered")
	require.NoError(t, err)

	_, err = p.AddConstraint("c", stray, LE, 10)
	require.Error(t, err)
	var unreg *UnregisteredVariableError
	assert.ErrorAs(t, err, &unreg)
}

func TestAddConstraintRejectsDegreeTooHigh(t *testing.T) {
	p, err := NewProblem(Minimize)
	require.NoError(t, err)

	_, xp, err := p.NewVariable("x")
	require.NoError(t, err)

	cubic, err := poly.Power(xp, 3)
	require.NoError(t, err)

	_, err = p.AddConstraint("c", cubic, LE, 10)
	require.Error(t, err)
	var tooHigh *DegreeTooHighError
	assert.ErrorAs(t, err, &tooHigh)
}

func TestConstraintsSortedByID(t *testing.T) {
	p, err := NewProblem(Minimize)
	require.NoError(t, err)

	_, xp, err := p.NewVariable("x")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := p.AddConstraint(fmt.Sprintf("c%d", i), xp, LE, float64(i))
		require.NoError(t, err)
	}

	cs := p.Constraints()
	for i := 1; i < len(cs); i++ {
		assert.Less(t, cs[i-1].ID, cs[i].ID)
	}
}

func TestDirectionalObjectiveHelpers(t *testing.T) {
	max, err := NewProblem(Maximize)
	require.NoError(t, err)
	_, xp, err := max.NewVariable("x")
	require.NoError(t, err)
	require.NoError(t, max.Maximize(xp))
	assert.True(t, poly.Equal(max.Objective(), xp))

	min, err := NewProblem(Minimize)
	require.NoError(t, err)
	_, yp, err := min.NewVariable("y")
	require.NoError(t, err)
	require.NoError(t, min.Maximize(yp))
	negYP := poly.Scale(yp, -1)
	assert.True(t, poly.Equal(min.Objective(), negYP))
}

func TestBigProblemBuilds(t *testing.T) {
	p := getBigProblem(t)
	assert.Len(t, p.Variables(), 10000)
}
