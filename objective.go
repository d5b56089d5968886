package lpmodel

import (
	"fmt"

	"github.com/costela-lab/lpmodel/poly"
)

// IncrementObjective adds x to the objective, regardless of direction.
func (p *Problem) IncrementObjective(x poly.Polynomial) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.checkRegisteredLocked(x, "objective"); err != nil {
		return err
	}
	sum, err := poly.Add(p.objective, x)
	if err != nil {
		return fmt.Errorf("lpmodel: incrementing objective: %w", err)
	}
	p.objective = sum
	return nil
}

// DecrementObjective subtracts x from the objective, regardless of
// direction.
func (p *Problem) DecrementObjective(x poly.Polynomial) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.checkRegisteredLocked(x, "objective"); err != nil {
		return err
	}
	diff, err := poly.Subtract(p.objective, x)
	if err != nil {
		return fmt.Errorf("lpmodel: decrementing objective: %w", err)
	}
	p.objective = diff
	return nil
}

// Maximize and Minimize are directional helpers: they mutate the objective
// by adding x when x's intended sense (maximize/minimize) matches the
// problem's own Direction, and by subtracting it otherwise, so a term can be
// expressed as "this should be maximized" even inside a Minimize problem
// (and vice versa) without the caller having to negate it by hand.
func (p *Problem) Maximize(x poly.Polynomial) error {
	if p.Direction() == Maximize {
		return p.IncrementObjective(x)
	}
	return p.DecrementObjective(x)
}

// Minimize is the dual of Maximize; see its documentation.
func (p *Problem) Minimize(x poly.Polynomial) error {
	if p.Direction() == Minimize {
		return p.IncrementObjective(x)
	}
	return p.DecrementObjective(x)
}
