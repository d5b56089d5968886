// Package lp serializes a lpmodel.Problem into the LP-format text an
// external solver consumes: a deterministic function of the problem's
// value, so that two calls with equal problems emit byte-identical output.
package lp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/costela-lab/lpmodel"
	"github.com/costela-lab/lpmodel/poly"
)

// Emit serializes p into LP-format text.
func Emit(p *lpmodel.Problem) (string, error) {
	var b strings.Builder

	if p.Direction() == lpmodel.Maximize {
		b.WriteString("Maximize\n")
	} else {
		b.WriteString("Minimize\n")
	}

	objText, err := formatPolynomial(p.Objective(), true, "objective")
	if err != nil {
		return "", err
	}
	b.WriteString("  " + objText + "\n")

	b.WriteString("Subject To\n")
	for _, c := range p.Constraints() {
		lhsText, err := formatPolynomial(c.LHS, false, fmt.Sprintf("constraint %q", c.Name))
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "  %s: %s %s %s\n", c.Name, lhsText, c.Op.String(), formatNumber(c.RHS))
	}

	b.WriteString("Bounds\n")
	for _, v := range p.Variables() {
		if v.Type == lpmodel.BinaryVariable {
			continue
		}
		b.WriteString(formatBounds(v))
	}

	b.WriteString("General\n")
	for _, v := range p.Variables() {
		if v.Type == lpmodel.IntegerVariable {
			fmt.Fprintf(&b, "  %s\n", v.ID)
		}
	}

	b.WriteString("Binary\n")
	for _, v := range p.Variables() {
		if v.Type == lpmodel.BinaryVariable {
			fmt.Fprintf(&b, "  %s\n", v.ID)
		}
	}

	b.WriteString("End\n")

	return b.String(), nil
}

// formatPolynomial renders an objective or constraint LHS. isObjective
// controls the asymmetry spec.md §9 calls out: the quadratic block's
// coefficients are doubled for objectives (the solver halves them back via
// its own "/2" convention) and left as-is for constraints.
func formatPolynomial(p poly.Polynomial, isObjective bool, where string) (string, error) {
	terms := p.Terms()

	var linear, quad []poly.Term
	for _, t := range terms {
		switch len(t.Vars) {
		case 0, 1:
			linear = append(linear, t)
		case 2:
			quad = append(quad, t)
		default:
			return "", &lpmodel.DegreeTooHighError{Where: where, Degree: len(t.Vars)}
		}
	}

	linearText := formatExpr(linear)

	if len(quad) == 0 {
		return linearText, nil
	}

	quadTerms := make([]poly.Term, len(quad))
	copy(quadTerms, quad)
	if isObjective {
		for i := range quadTerms {
			quadTerms[i].Coef *= 2
		}
	}
	block := fmt.Sprintf("[ %s ] / 2", formatExpr(quadTerms))

	if len(linear) == 0 {
		return "+ " + block, nil
	}
	return linearText + " + " + block, nil
}

// formatExpr renders a sorted term list as "c1 t1 + c2 t2 - c3 t3", omitting
// a redundant leading "+" on the first term.
func formatExpr(terms []poly.Term) string {
	if len(terms) == 0 {
		return "0"
	}

	parts := make([]string, 0, len(terms))
	for i, t := range terms {
		sign := "+"
		mag := t.Coef
		if mag < 0 {
			sign = "-"
			mag = -mag
		}

		var piece string
		if len(t.Vars) == 0 {
			piece = formatNumber(mag)
		} else {
			piece = formatNumber(mag) + " " + formatVars(t.Vars)
		}

		if i == 0 && sign == "+" {
			parts = append(parts, piece)
		} else {
			parts = append(parts, sign+" "+piece)
		}
	}
	return strings.Join(parts, " ")
}

// formatVars renders a sorted monomial's variables, grouping repeats as
// name^k and joining distinct variables with " * ".
func formatVars(vars []string) string {
	out := make([]string, 0, len(vars))
	i := 0
	for i < len(vars) {
		j := i
		for j < len(vars) && vars[j] == vars[i] {
			j++
		}
		if j-i == 1 {
			out = append(out, vars[i])
		} else {
			out = append(out, fmt.Sprintf("%s^%d", vars[i], j-i))
		}
		i = j
	}
	return strings.Join(out, " * ")
}

func formatBounds(v *lpmodel.Variable) string {
	switch {
	case v.Min == nil && v.Max == nil:
		return fmt.Sprintf("  %s free\n", v.ID)
	case v.Min == nil:
		return fmt.Sprintf("  %s <= %s\n", v.ID, formatNumber(*v.Max))
	case v.Max == nil:
		return fmt.Sprintf("  %s <= %s\n", formatNumber(*v.Min), v.ID)
	default:
		return fmt.Sprintf("  %s <= %s\n  %s <= %s\n", formatNumber(*v.Min), v.ID, v.ID, formatNumber(*v.Max))
	}
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
