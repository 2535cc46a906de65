package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationBuilder collects per-field problems found while validating a
// Config. Build returns nil when nothing was recorded.
type ValidationBuilder struct {
	fields map[string][]string
}

// NewValidationBuilder creates an empty builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: make(map[string][]string)}
}

// Field records a problem with field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

// Fieldf records a formatted problem with field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField records a missing field
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// OneOf records a problem unless value is one of allowed
func (vb *ValidationBuilder) OneOf(field, value string, allowed ...string) *ValidationBuilder {
	for _, a := range allowed {
		if value == a {
			return vb
		}
	}
	return vb.Fieldf(field, "must be one of %s, got %q", strings.Join(allowed, ", "), value)
}

// Build returns an InvalidArgument error listing every field in name order,
// e.g. "validation failed: Cache: is required; HTTPTimeout: must not be negative".
// The raw field map is kept under the "validation_errors" metadata key.
func (vb *ValidationBuilder) Build() error {
	if len(vb.fields) == 0 {
		return nil
	}

	names := make([]string, 0, len(vb.fields))
	for field := range vb.fields {
		names = append(names, field)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, field := range names {
		parts[i] = field + ": " + strings.Join(vb.fields[field], ", ")
	}
	return InvalidArgument("validation failed: "+strings.Join(parts, "; ")).
		WithMeta("validation_errors", vb.fields)
}
