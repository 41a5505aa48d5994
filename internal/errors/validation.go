package errors

import (
	"fmt"
	"strings"
)

// ValidationBuilder collects field problems and reports them as one
// InvalidArgument error. Fields keep the order they were first reported in.
type ValidationBuilder struct {
	order  []string
	fields map[string][]string
}

// NewValidationBuilder creates an empty builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: make(map[string][]string)}
}

// Field records a problem with a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	if _, seen := vb.fields[field]; !seen {
		vb.order = append(vb.order, field)
	}
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

// Fieldf records a formatted problem with a field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField records a missing field
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// InvalidField records a field with an unusable value
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Fieldf(field, "is invalid: %s", reason)
}

// HasErrors reports whether any problem was recorded
func (vb *ValidationBuilder) HasErrors() bool {
	return len(vb.order) > 0
}

// Build returns nil when nothing was recorded. Otherwise it returns an
// InvalidArgument error with the problems under the "fields" metadata key.
func (vb *ValidationBuilder) Build() error {
	if !vb.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(vb.order))
	fields := make(map[string][]string, len(vb.fields))
	for _, field := range vb.order {
		parts = append(parts, fmt.Sprintf("%s %s", field, strings.Join(vb.fields[field], ", ")))
		fields[field] = append([]string(nil), vb.fields[field]...)
	}

	return InvalidArgument("validation failed: "+strings.Join(parts, "; ")).WithMeta("fields", fields)
}

// ValidateRequired records field as missing when value is blank
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}
