package lead

import "errors"

var ErrPersistence = errors.New("lead could not be recorded")

// ValidationError carries the field→code map produced by the form policy.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validation failed" }
