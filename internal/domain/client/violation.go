package client

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies which rule a field failed.
type Kind string

const (
	KindBlankField        Kind = "blank_field"
	KindFieldTooLong      Kind = "field_too_long"
	KindInvalidFormat     Kind = "invalid_format"
	KindMissingIdentifier Kind = "missing_identifier"
)

type Violation struct {
	Field   string `json:"field"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// Violations is the result of a validation pass. An empty list means valid.
type Violations []Violation

func (vs Violations) Error() string {
	if len(vs) == 0 {
		return "no violations"
	}

	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, v.String())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (vs Violations) IsEmpty() bool {
	return len(vs) == 0
}

func (vs Violations) Has(field string) bool {
	for _, v := range vs {
		if v.Field == field {
			return true
		}
	}
	return false
}

func (vs Violations) HasKind(field string, kind Kind) bool {
	for _, v := range vs {
		if v.Field == field && v.Kind == kind {
			return true
		}
	}
	return false
}

func (vs Violations) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, v := range vs {
		if !seen[v.Field] {
			fields = append(fields, v.Field)
			seen[v.Field] = true
		}
	}
	return fields
}

// Err returns vs as an error, or nil when there is nothing to report.
func (vs Violations) Err() error {
	if vs.IsEmpty() {
		return nil
	}
	return vs
}

// AsViolations extracts Violations from an error chain.
func AsViolations(err error) (Violations, bool) {
	if err == nil {
		return nil, false
	}
	var vs Violations
	if errors.As(err, &vs) {
		return vs, true
	}
	return nil, false
}
