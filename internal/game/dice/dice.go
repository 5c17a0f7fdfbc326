// Package dice provides the randomness abstraction and roll-result types used by
// every stage of hero generation.
package dice

import (
	"fmt"
	"strings"
)

// Source is the randomness provider for dice rolls. Generation draws from one
// Source in a fixed order, so a seeded Source reproduces a hero exactly.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// RollResult records one evaluated roll.
type RollResult struct {
	Expression string // e.g. "4d6kh3"
	Dice       []int  // kept results
	Dropped    []int  // discarded by a kh suffix
	Modifier   int
}

// Total is the sum of the kept dice plus the modifier.
func (r RollResult) Total() int {
	total := r.Modifier
	for _, d := range r.Dice {
		total += d
	}
	return total
}

// String renders the roll for logs, for example
//
//	"4d6kh3 → [6 5 3] drop [1] +0 = 14"
//
// An empty Expression renders as "roll".
func (r RollResult) String() string {
	var b strings.Builder
	if r.Expression == "" {
		b.WriteString("roll")
	} else {
		b.WriteString(r.Expression)
	}
	fmt.Fprintf(&b, " → %v", r.Dice)
	if len(r.Dropped) > 0 {
		fmt.Fprintf(&b, " drop %v", r.Dropped)
	}
	fmt.Fprintf(&b, " %+d = %d", r.Modifier, r.Total())
	return b.String()
}
