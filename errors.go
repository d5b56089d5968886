package lpmodel

import "fmt"

// DegreeTooHighError is returned when a polynomial used as an objective or
// constraint left-hand side has degree greater than 2.
type DegreeTooHighError struct {
	Where  string
	Degree int
}

func (e *DegreeTooHighError) Error() string {
	return fmt.Sprintf("lpmodel: %s has degree %d, only degree <= 2 is supported", e.Where, e.Degree)
}

// UnregisteredVariableError is returned when a polynomial references a
// variable identifier that was never registered on the problem.
type UnregisteredVariableError struct {
	ID string
}

func (e *UnregisteredVariableError) Error() string {
	return fmt.Sprintf("lpmodel: variable %q is not registered on this problem", e.ID)
}
