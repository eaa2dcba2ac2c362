package calculator

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Invalid input errors. Every calculation fails as a whole; nothing is dropped silently.
var (
	ErrNoParticipants   = errors.New("must have at least one participant")
	ErrUnknownPayer     = errors.New("payer is not a participant")
	ErrNegativeAmount   = errors.New("expense amount cannot be negative")
	ErrUnknownCategory  = errors.New("unknown expense category")
	ErrInvalidDateRange = errors.New("date range requires a start and end date with start on or before end")
)

// Epsilon is the settlement tolerance: balances within one cent of zero are settled.
var Epsilon = decimal.New(1, -2)

var hundred = decimal.NewFromInt(100)

// settled reports whether an amount is within Epsilon of zero.
func settled(amount decimal.Decimal) bool {
	return amount.Abs().LessThanOrEqual(Epsilon)
}
