package schema

import "fmt"

// FieldError describes a single constraint violation. Detail describes the
// shape of the rejected value (its JSON type or the bound it missed), never
// the value itself, so error responses cannot echo sensitive input.
type FieldError struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
	Detail     string `json:"detail"`
}

// ValidationError carries every failing field of a payload, not just the
// first one found.
type ValidationError struct {
	Kind   string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s validation failed: %d invalid field(s)", e.Kind, len(e.Fields))
}
