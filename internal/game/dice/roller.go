package dice

import "sort"

// rollObserver is implemented by sources that want to see every evaluated roll.
type rollObserver interface {
	observe(RollResult)
}

// Roll evaluates an Expression using the given Source and returns a RollResult.
// When src is a *Roller the result is also logged.
//
// Precondition: expr must come from Parse (Count >= 1, Sides >= 2); src must be non-nil.
// Postcondition: len(result.Dice) == expr.Count when KeepHighest == 0, or
//
//	len(result.Dice) == expr.KeepHighest when KeepHighest > 0.
//	result.Total() == sum(result.Dice) + result.Modifier.
func Roll(expr Expression, src Source) (RollResult, error) {
	rolled := make([]int, expr.Count)
	for i := range rolled {
		rolled[i] = src.Intn(expr.Sides) + 1
	}

	result := RollResult{Expression: expr.Raw, Dice: rolled, Modifier: expr.Modifier}
	if expr.KeepHighest > 0 {
		sorted := make([]int, len(rolled))
		copy(sorted, rolled)
		sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
		result.Dice = sorted[:expr.KeepHighest]
		result.Dropped = sorted[expr.KeepHighest:]
	}

	if o, ok := src.(rollObserver); ok {
		o.observe(result)
	}
	return result, nil
}

// RollExpr parses expr and rolls it using src in a single call.
//
// Precondition: expr must be a valid dice expression string; src must be non-nil.
// Postcondition: Returns a RollResult or a parse/roll error.
func RollExpr(expr string, src Source) (RollResult, error) {
	e, err := Parse(expr)
	if err != nil {
		return RollResult{}, err
	}
	return Roll(e, src)
}

// Percent returns a percentile roll in [1, 100].
func Percent(src Source) int {
	return src.Intn(100) + 1
}

// MustParse parses expr and panics on error. Useful for package-level constants.
//
// Precondition: expr must be a valid dice expression.
func MustParse(expr string) Expression {
	e, err := Parse(expr)
	if err != nil {
		panic("dice: MustParse failed for expression " + expr + ": " + err.Error())
	}
	return e
}

// MustRoll rolls a package-level Expression that is known to be valid.
func MustRoll(expr Expression, src Source) int {
	r, err := Roll(expr, src)
	if err != nil {
		panic("dice: MustRoll failed for expression " + expr.Raw + ": " + err.Error())
	}
	return r.Total()
}
