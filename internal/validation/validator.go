// Package validation provides request field validation helpers.
package validation

import "strings"

// Validator collects field validation errors.
type Validator struct {
	Errors map[string]string
}

// New creates a new validator
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid checks if there are any validation errors
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError adds an error to the validator
func (v *Validator) AddError(field, message string) {
	v.Errors[field] = message
}

// Check adds an error if the condition is false
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Required checks if a string is not empty
func (v *Validator) Required(field, value string) {
	v.Check(strings.TrimSpace(value) != "", field, "is required")
}

// RequiredID checks if a numeric identifier is set
func (v *Validator) RequiredID(field string, value uint) {
	v.Check(value != 0, field, "is required")
}
