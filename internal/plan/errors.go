package plan

import "fmt"

// ValidationError reports a bad generation argument. It is returned
// before any session is composed, so a failed generation never leaves
// a partial plan behind.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
