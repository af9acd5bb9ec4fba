package params

import "fmt"

// ValidationError reports a rejected parameter value. Construction of a
// parameter set either succeeds completely or fails with one of these;
// partially-validated sets are never returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Field, e.Reason)
}

func invalidf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
