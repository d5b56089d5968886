package poly

import "fmt"

// NonConstantDivisorError is returned by Divide when asked to divide by a
// non-constant polynomial.
type NonConstantDivisorError struct {
	Divisor Polynomial
}

func (e *NonConstantDivisorError) Error() string {
	return fmt.Sprintf("lpmodel/poly: divisor is not a constant (degree %d)", Degree(e.Divisor))
}

// FreeVariablesError is returned by ToNumber (and anything built on it) when
// the polynomial still has free variables after substitution.
type FreeVariablesError struct {
	Variables []string
}

func (e *FreeVariablesError) Error() string {
	return fmt.Sprintf("lpmodel/poly: cannot evaluate to a number, free variables remain: %v", e.Variables)
}
