package hero

import (
	"fmt"

	"github.com/cory-johannsen/herogen/internal/game/derived"
)

// InvalidInputError reports a missing, empty, or unknown request or attribute field.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// RangeError reports a value outside the domain of a lookup table.
type RangeError = derived.RangeError

func invalid(field, format string, args ...any) error {
	return &InvalidInputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
