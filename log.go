package lpmodel

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Logger is the narrow logging seam the rest of this package writes
// diagnostic output through. It is shaped so any of the teacher-style
// Print-based loggers can satisfy it; ZerologLogger below is the concrete
// implementation problems default away from (problems default to a no-op).
type Logger interface {
	Print(v ...interface{})
}

type noopLogger struct{}

func (noopLogger) Print(v ...interface{}) {}

// ZerologLogger adapts a github.com/rs/zerolog.Logger to the Logger
// interface, so callers who want real structured logs of variable/
// constraint registration and solver invocation can plug one in via
// WithLogger without this package depending on a concrete backend.
type ZerologLogger struct {
	Z zerolog.Logger
}

// Print implements Logger by joining its arguments into a single message
// field, matching the teacher's Print(v ...interface{}) shape.
func (l ZerologLogger) Print(v ...interface{}) {
	l.Z.Info().Msg(sprint(v...))
}

func sprint(v ...interface{}) string {
	if len(v) == 1 {
		if s, ok := v[0].(string); ok {
			return s
		}
	}
	out := ""
	for i, x := range v {
		if i > 0 {
			out += " "
		}
		out += toString(x)
	}
	return out
}

func toString(x interface{}) string {
	if s, ok := x.(string); ok {
		return s
	}
	if s, ok := x.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", x)
}
