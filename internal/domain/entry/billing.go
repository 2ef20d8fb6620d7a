package entry

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrExitBeforeEntry = errors.New("exit time before entry time")

var millisPerHour = decimal.NewFromInt(3_600_000)

// ComputeCharge bills elapsed fractional hours at the lot's hourly rate,
// rounded half-up to currency precision. A zero-duration stay yields 0.00;
// there is no minimum-stay surcharge (current policy, not an omission).
func ComputeCharge(enteredAt, exitedAt time.Time, hourlyRate decimal.Decimal) (decimal.Decimal, error) {
	if exitedAt.Before(enteredAt) {
		return decimal.Zero, ErrExitBeforeEntry
	}

	elapsedMillis := decimal.NewFromInt(exitedAt.Sub(enteredAt).Milliseconds())
	hours := elapsedMillis.Div(millisPerHour)

	// Round on non-negative amounts is round-half-up.
	return hours.Mul(hourlyRate).Round(2), nil
}
