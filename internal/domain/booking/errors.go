package booking

import (
	"fmt"
	"sort"
	"strings"
)

// AvailabilityError carries per-field reasons a booking cannot proceed.
type AvailabilityError struct {
	Fields map[string][]string
}

func NewAvailabilityError(field string, reasons ...string) *AvailabilityError {
	e := &AvailabilityError{Fields: map[string][]string{}}
	for _, r := range reasons {
		e.Add(field, r)
	}
	return e
}

func (e *AvailabilityError) Add(field, reason string) {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	e.Fields[field] = append(e.Fields[field], reason)
}

func (e *AvailabilityError) Empty() bool {
	return e == nil || len(e.Fields) == 0
}

func (e *AvailabilityError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], "; ")))
	}
	return "availability: " + strings.Join(parts, ", ")
}

// ValidationError is a user-correctable problem with a single field.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
