package config

import "strings"

// Error collects every problem found while loading one config file, so that
// `citypaper config test` can report them together.
type Error struct {
	Path    string
	Missing []string // unresolved environment references
	Errors  []string // Validate output
}

func (e *Error) Error() string {
	var b strings.Builder
	if len(e.Missing) > 0 {
		b.WriteString("missing environment variables: ")
		b.WriteString(strings.Join(e.Missing, ", "))
	}
	if len(e.Errors) > 0 {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("validation failed:")
		for _, msg := range e.Errors {
			b.WriteString("\n  - ")
			b.WriteString(msg)
		}
	}
	return b.String()
}

// Is reports ErrInvalid for any Error that carries problems.
func (e *Error) Is(target error) bool {
	return target == ErrInvalid && e.HasErrors()
}

// HasErrors reports whether anything was collected.
func (e *Error) HasErrors() bool {
	return len(e.Missing)+len(e.Errors) > 0
}
