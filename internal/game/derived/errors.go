package derived

import "fmt"

// RangeError reports a value outside the domain of a lookup table.
type RangeError struct {
	Name     string
	Value    int
	Min, Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [%d, %d]", e.Name, e.Value, e.Min, e.Max)
}
