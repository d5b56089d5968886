package lpmodel

import "github.com/costela-lab/lpmodel/poly"

// Op is a constraint's comparison operator.
type Op int

const (
	LE Op = iota
	GE
	EQ
)

func (o Op) String() string {
	switch o {
	case LE:
		return "<="
	case GE:
		return ">="
	case EQ:
		return "="
	default:
		return "?"
	}
}

// Constraint is a named relation LHS Op RHS, owned by a Problem. LHS must
// have degree <= 2.
type Constraint struct {
	ID   string
	Name string
	LHS  poly.Polynomial
	Op   Op
	RHS  float64
}
