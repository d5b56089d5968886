package main

import (
	"os"

	"github.com/costela-lab/lpmodel"
	"github.com/costela-lab/lpmodel/poly"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// problemFile is the YAML shape a user-supplied problem description is
// decoded into, e.g.:
//
//	direction: maximize
//	variables:
//	  - name: x
//	    min: 0
//	    max: 10
//	  - name: y
//	    type: integer
//	objective:
//	  - var: x
//	    coef: 2
//	  - var: y
//	    coef: 3
//	constraints:
//	  - name: capacity
//	    terms:
//	      - {var: x, coef: 1}
//	      - {var: y, coef: 1}
//	    op: "<="
//	    rhs: 10
type problemFile struct {
	Direction   string           `yaml:"direction"`
	Variables   []variableSpec   `yaml:"variables"`
	Objective   []termSpec       `yaml:"objective"`
	Constraints []constraintSpec `yaml:"constraints"`
}

type variableSpec struct {
	Name string   `yaml:"name"`
	Min  *float64 `yaml:"min"`
	Max  *float64 `yaml:"max"`
	Type string   `yaml:"type"`
}

type termSpec struct {
	Var  string  `yaml:"var"`
	Coef float64 `yaml:"coef"`
}

type constraintSpec struct {
	Name  string     `yaml:"name"`
	Terms []termSpec `yaml:"terms"`
	Op    string     `yaml:"op"`
	RHS   float64    `yaml:"rhs"`
}

func loadProblemFile(path string) (*problemFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading problem file")
	}

	var pf problemFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, errors.Wrap(err, "parsing problem file")
	}
	return &pf, nil
}

func variableType(s string) (lpmodel.VariableType, error) {
	switch s {
	case "", "continuous":
		return lpmodel.ContinuousVariable, nil
	case "integer":
		return lpmodel.IntegerVariable, nil
	case "binary":
		return lpmodel.BinaryVariable, nil
	default:
		return 0, errors.Errorf("unknown variable type %q", s)
	}
}

func direction(s string) (lpmodel.Direction, error) {
	switch s {
	case "", "maximize", "max":
		return lpmodel.Maximize, nil
	case "minimize", "min":
		return lpmodel.Minimize, nil
	default:
		return 0, errors.Errorf("unknown direction %q", s)
	}
}

func constraintOp(s string) (lpmodel.Op, error) {
	switch s {
	case "<=", "le":
		return lpmodel.LE, nil
	case ">=", "ge":
		return lpmodel.GE, nil
	case "=", "==", "eq":
		return lpmodel.EQ, nil
	default:
		return 0, errors.Errorf("unknown constraint operator %q", s)
	}
}

// buildProblem turns a decoded problemFile into a *lpmodel.Problem,
// resolving each YAML term list into a polynomial via poly.SumLinear — the
// same bulk-construction path the library's tests exercise against
// iterated poly.Add for equivalence.
func buildProblem(pf *problemFile) (*lpmodel.Problem, error) {
	dir, err := direction(pf.Direction)
	if err != nil {
		return nil, err
	}

	p, err := lpmodel.NewProblem(dir)
	if err != nil {
		return nil, err
	}

	polys := make(map[string]poly.Polynomial, len(pf.Variables))
	for _, vs := range pf.Variables {
		vt, err := variableType(vs.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "variable %q", vs.Name)
		}

		opts := []lpmodel.VarOption{lpmodel.WithType(vt)}
		switch {
		case vs.Min != nil && vs.Max != nil:
			opts = append(opts, lpmodel.WithBounds(*vs.Min, *vs.Max))
		case vs.Min != nil:
			opts = append(opts, lpmodel.WithMin(*vs.Min))
		case vs.Max != nil:
			opts = append(opts, lpmodel.WithMax(*vs.Max))
		}

		_, vp, err := p.NewVariable(vs.Name, opts...)
		if err != nil {
			return nil, errors.Wrapf(err, "variable %q", vs.Name)
		}
		polys[vs.Name] = vp
	}

	objective, err := termsToPolynomial(pf.Objective, polys)
	if err != nil {
		return nil, errors.Wrap(err, "objective")
	}
	if err := p.IncrementObjective(objective); err != nil {
		return nil, errors.Wrap(err, "objective")
	}

	for _, cs := range pf.Constraints {
		lhs, err := termsToPolynomial(cs.Terms, polys)
		if err != nil {
			return nil, errors.Wrapf(err, "constraint %q", cs.Name)
		}
		op, err := constraintOp(cs.Op)
		if err != nil {
			return nil, errors.Wrapf(err, "constraint %q", cs.Name)
		}
		if _, err := p.AddConstraint(cs.Name, lhs, op, cs.RHS); err != nil {
			return nil, errors.Wrapf(err, "constraint %q", cs.Name)
		}
	}

	return p, nil
}

func termsToPolynomial(terms []termSpec, vars map[string]poly.Polynomial) (poly.Polynomial, error) {
	scaled := make([]interface{}, 0, len(terms))
	for _, t := range terms {
		vp, ok := vars[t.Var]
		if !ok {
			return poly.Polynomial{}, errors.Errorf("undefined variable %q", t.Var)
		}
		scaled = append(scaled, poly.Scale(vp, t.Coef))
	}
	return poly.SumLinear(scaled)
}
