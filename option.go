package lpmodel

// Option configures a Problem at construction time, following the same
// functional-option shape the rest of this codebase's dependency surface
// uses for optional configuration.
type Option func(*Problem) error

// WithLogger attaches a Logger to a Problem. The default is a no-op.
func WithLogger(logger Logger) Option {
	return func(p *Problem) error {
		p.logger = logger
		return nil
	}
}

// VarOption configures a Variable at construction time.
type VarOption func(*Variable)

// WithBounds sets both bounds on a variable. Use math.Inf(-1)/math.Inf(1)
// explicitly is not required: pass WithMin/WithMax individually to leave
// the other bound null (unbounded on that side).
func WithBounds(min, max float64) VarOption {
	return func(v *Variable) {
		lo, hi := min, max
		v.Min = &lo
		v.Max = &hi
	}
}

// WithMin sets only the lower bound, leaving the upper bound null (free).
func WithMin(min float64) VarOption {
	return func(v *Variable) {
		lo := min
		v.Min = &lo
	}
}

// WithMax sets only the upper bound, leaving the lower bound null (free).
func WithMax(max float64) VarOption {
	return func(v *Variable) {
		hi := max
		v.Max = &hi
	}
}

// WithType sets the variable's type. ContinuousVariable is the default.
func WithType(t VariableType) VarOption {
	return func(v *Variable) {
		v.Type = t
	}
}
