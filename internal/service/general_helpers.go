package service

import (
	"fmt"
	"math"
	"time"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/request"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
)

// Invalidator is notified after every successful mutation so derived views can be recomputed.
type Invalidator interface {
	Invalidate()
}

// parseDate parses a YYYY-MM-DD request date as UTC midnight.
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(request.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

// checkNotFuture returns apperrors.ErrFutureDate when date falls after the day of now.
func checkNotFuture(date, now time.Time) error {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if date.After(today) {
		return fmt.Errorf("%w: %s", apperrors.ErrFutureDate, date.Format(request.DateLayout))
	}
	return nil
}

// normaliseAmount gives amount the sign implied by the transaction type:
// income is stored non-negative and expenses non-positive.
//
// Example:
//
//	normaliseAmount(45, model.TransactionExpense)  // returns -45
//	normaliseAmount(-3500, model.TransactionIncome) // returns 3500
func normaliseAmount(amount float64, t model.TransactionType) float64 {
	if t == model.TransactionExpense {
		return -math.Abs(amount)
	}
	return math.Abs(amount)
}
