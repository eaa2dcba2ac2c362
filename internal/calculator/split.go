package calculator

import (
	"github.com/shopspring/decimal"
)

// EqualShare computes how much each participant owes under the equal split:
// every participant owes total / n regardless of who paid or when they joined.
func EqualShare(total decimal.Decimal, participants int) (decimal.Decimal, error) {
	if participants <= 0 {
		return decimal.Zero, ErrNoParticipants
	}
	return total.Div(decimal.NewFromInt(int64(participants))), nil
}
