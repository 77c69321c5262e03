// Package validation provides the structured validation error used by
// all repositories and command handlers: every invalid field is reported
// at once, keyed by field name.
package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errors maps field names to human-readable problems. It implements
// error and is returned before any mutation is attempted.
type Errors map[string]string

// Add records a problem for a field. The first message per field wins.
func (e Errors) Add(field, message string) {
	if _, ok := e[field]; !ok {
		e[field] = message
	}
}

// Addf records a formatted problem for a field.
func (e Errors) Addf(field, format string, args ...any) {
	e.Add(field, fmt.Sprintf(format, args...))
}

// Err returns e as an error, or nil when no problems were recorded.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsErrors unwraps err into Errors when it carries one.
func AsErrors(err error) (Errors, bool) {
	var verrs Errors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}
