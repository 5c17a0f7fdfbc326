package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger. It is itself a Source, so it can be handed to
// any generation stage; every roll evaluated through it is logged at debug level
// with expression, dice values, modifier, and total.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs each roll to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Intn delegates to the wrapped Source.
func (r *Roller) Intn(n int) int {
	return r.src.Intn(n)
}

// Roll evaluates expr and logs the result.
//
// Precondition: expr must come from Parse.
func (r *Roller) Roll(expr Expression) (RollResult, error) {
	return Roll(expr, r)
}

// RollExpr parses expr and rolls it, logging the result.
//
// Precondition: expr must be a valid dice expression string.
// Postcondition: Returns a RollResult or a parse/roll error.
func (r *Roller) RollExpr(expr string) (RollResult, error) {
	return RollExpr(expr, r)
}

func (r *Roller) observe(result RollResult) {
	r.logger.Debug("dice roll",
		zap.String("expression", result.Expression),
		zap.Ints("dice", result.Dice),
		zap.Ints("dropped", result.Dropped),
		zap.Int("modifier", result.Modifier),
		zap.Int("total", result.Total()),
	)
}
