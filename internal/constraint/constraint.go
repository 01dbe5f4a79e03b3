// Package constraint validates cell values against column-name constraints.
//
// A constraint is bound to a column by its reserved name, not by a type.
// The only one today is a column named exactly "IPv4", whose values must be
// dotted-quad addresses.
package constraint

import (
	"fmt"

	"colDB/internal/storage"
)

// IPv4Column is the reserved column name that enables IPv4 validation.
// The match is case-sensitive.
const IPv4Column = "IPv4"

// ValidateIPv4 reports whether token looks like a dotted-quad address:
// four runs of 1-3 digits separated by exactly three dots.
//
// Octets are not range checked, so "999.999.999.999" is accepted.
func ValidateIPv4(token string) bool {
	dots := 0
	run := 0

	for i := 0; i < len(token); i++ {
		c := token[i]
		switch {
		case c == '.':
			if run == 0 || run > 3 {
				return false
			}
			dots++
			run = 0
		case c >= '0' && c <= '9':
			run++
		default:
			return false
		}
	}

	return dots == 3 && run > 0 && run <= 3
}

// Check validates value against the constraint bound to column, if any.
// The returned error wraps storage.ErrInvalidConstraint.
func Check(column, value string) error {
	if column != IPv4Column {
		return nil
	}
	if !ValidateIPv4(value) {
		return &Violation{Column: column, Value: value}
	}
	return nil
}

// Violation describes a value rejected by a column constraint.
type Violation struct {
	Column string
	Value  string
}

func (v *Violation) Error() string {
	if v.Column == IPv4Column {
		return fmt.Sprintf("Invalid IPv4 address '%s'.", v.Value)
	}
	return fmt.Sprintf("Invalid value '%s' for column '%s'.", v.Value, v.Column)
}

func (v *Violation) Unwrap() error { return storage.ErrInvalidConstraint }
