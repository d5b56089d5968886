package lpmodel

import (
	"fmt"
	"sort"
	"sync"

	"github.com/costela-lab/lpmodel/poly"
)

// Direction is the sense of a Problem's objective.
type Direction int

const (
	Minimize Direction = iota
	Maximize
)

func (d Direction) String() string {
	if d == Maximize {
		return "Maximize"
	}
	return "Minimize"
}

// Problem is the aggregate of variables, constraints, an objective
// polynomial and a direction submitted to a solver. A Problem is mutable:
// NewVariable and AddConstraint register new entities on it in place,
// mirroring the teacher's Model, which is the idiomatic Go shape for an
// incrementally-built aggregate (a purely functional "return a new Problem
// each time" API would fight the language, not embrace it).
type Problem struct {
	mu     sync.RWMutex
	dir    Direction
	logger Logger

	vars        map[string]*Variable
	constraints map[string]*Constraint
	objective   poly.Polynomial

	varSeq int
	conSeq int
}

// NewProblem creates an empty problem with the given optimization direction.
func NewProblem(dir Direction, opts ...Option) (*Problem, error) {
	p := &Problem{
		dir:         dir,
		logger:      noopLogger{},
		vars:        make(map[string]*Variable),
		constraints: make(map[string]*Constraint),
		objective:   poly.Const(0),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, fmt.Errorf("lpmodel: applying option: %w", err)
		}
	}
	return p, nil
}

// Direction returns the problem's optimization direction.
func (p *Problem) Direction() Direction {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.dir
}

// Objective returns the problem's current objective polynomial.
func (p *Problem) Objective() poly.Polynomial {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.objective
}

// NewVariable registers a fresh variable on the problem and returns both the
// Variable record and the polynomial x ↦ 1 ("the variable polynomial") that
// expressions are built from. Mangled IDs are a zero-padded monotonically
// increasing counter, so id ordering and insertion ordering coincide and LP
// output is deterministic.
func (p *Problem) NewVariable(name string, opts ...VarOption) (*Variable, poly.Polynomial, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := fmt.Sprintf("v%06d", p.varSeq)
	p.varSeq++

	v := &Variable{ID: id, Name: name, Type: ContinuousVariable}
	for _, opt := range opts {
		opt(v)
	}
	p.vars[id] = v

	vp, err := poly.Var(id)
	if err != nil {
		return nil, poly.Polynomial{}, err
	}

	p.logger.Print(fmt.Sprintf("lpmodel: registered variable %s (%s)", id, name))

	return v, vp, nil
}

// Variables returns the problem's variables sorted by mangled ID.
func (p *Problem) Variables() []*Variable {
	p.mu.RLock()
	defer p.mu.RUnlock()

	ids := make([]string, 0, len(p.vars))
	for id := range p.vars {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]*Variable, len(ids))
	for i, id := range ids {
		out[i] = p.vars[id]
	}
	return out
}

func (p *Problem) checkRegisteredLocked(lhs poly.Polynomial, where string) error {
	if d := poly.Degree(lhs); d > 2 {
		return &DegreeTooHighError{Where: where, Degree: d}
	}
	for _, id := range poly.Variables(lhs) {
		if _, ok := p.vars[id]; !ok {
			return &UnregisteredVariableError{ID: id}
		}
	}
	return nil
}

// AddConstraint registers a new constraint, returning it along with any
// error encountered validating it (degree <= 2, all variables registered).
func (p *Problem) AddConstraint(name string, lhs poly.Polynomial, op Op, rhs float64) (*Constraint, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.checkRegisteredLocked(lhs, fmt.Sprintf("constraint %q", name)); err != nil {
		return nil, err
	}

	id := fmt.Sprintf("c%06d", p.conSeq)
	p.conSeq++

	c := &Constraint{ID: id, Name: name, LHS: lhs, Op: op, RHS: rhs}
	p.constraints[id] = c

	p.logger.Print(fmt.Sprintf("lpmodel: registered constraint %s (%s)", id, name))

	return c, nil
}

// Constraints returns the problem's constraints sorted by mangled ID, the
// order the LP emitter is required to reproduce.
func (p *Problem) Constraints() []*Constraint {
	p.mu.RLock()
	defer p.mu.RUnlock()

	ids := make([]string, 0, len(p.constraints))
	for id := range p.constraints {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]*Constraint, len(ids))
	for i, id := range ids {
		out[i] = p.constraints[id]
	}
	return out
}
