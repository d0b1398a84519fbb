package aggregate

import (
	"fmt"
	"time"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
)

// YearMonth identifies a calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// YearMonthOf returns the calendar month containing t.
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// Key returns the sortable YYYY-MM form of the month.
func (ym YearMonth) Key() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// First returns the first day of the month at UTC midnight.
func (ym YearMonth) First() time.Time {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Last returns the last day of the month at UTC midnight.
func (ym YearMonth) Last() time.Time {
	return ym.First().AddDate(0, 1, -1)
}

// Previous returns the month before ym.
func (ym YearMonth) Previous() YearMonth {
	return YearMonthOf(ym.First().AddDate(0, -1, 0))
}

// Period is a contiguous date range. A nil bound is unconstrained on that side.
// Both bounds are inclusive and compared at day granularity.
type Period struct {
	From *time.Time
	To   *time.Time
}

// AllTime returns the unbounded period.
func AllTime() Period {
	return Period{}
}

// MonthPeriod returns the closed period covering the calendar month ym.
func MonthPeriod(ym YearMonth) Period {
	from, to := ym.First(), ym.Last()
	return Period{From: &from, To: &to}
}

// CurrentMonthPeriod returns the "this month so far" period relative to now.
// It starts on the first day of now's month and has no upper bound, so
// transactions dated later than today are still counted.
func CurrentMonthPeriod(now time.Time) Period {
	from := YearMonthOf(now).First()
	return Period{From: &from}
}

// PreviousMonthPeriod returns the closed period covering the month before now.
func PreviousMonthPeriod(now time.Time) Period {
	return MonthPeriod(YearMonthOf(now).Previous())
}

// Contains reports whether the day of d falls within the period.
func (p Period) Contains(d time.Time) bool {
	day := truncateDay(d)
	if p.From != nil && day.Before(truncateDay(*p.From)) {
		return false
	}
	if p.To != nil && day.After(truncateDay(*p.To)) {
		return false
	}
	return true
}

// SelectByMonth returns the transactions dated within the calendar month ym.
func SelectByMonth(transactions []model.Transaction, ym YearMonth) []model.Transaction {
	return selectPeriod(transactions, MonthPeriod(ym))
}

// SelectByRange returns the transactions dated between from and to, inclusive.
// A nil bound leaves that side unconstrained. Input order is preserved.
func SelectByRange(transactions []model.Transaction, from, to *time.Time) []model.Transaction {
	return selectPeriod(transactions, Period{From: from, To: to})
}

// SelectSince returns the transactions dated on or after from.
func SelectSince(transactions []model.Transaction, from time.Time) []model.Transaction {
	return selectPeriod(transactions, Period{From: &from})
}

// CurrentMonth returns the transactions of the current month so far, see CurrentMonthPeriod.
func CurrentMonth(transactions []model.Transaction, now time.Time) []model.Transaction {
	return selectPeriod(transactions, CurrentMonthPeriod(now))
}

// PreviousMonth returns the transactions of the calendar month before now.
func PreviousMonth(transactions []model.Transaction, now time.Time) []model.Transaction {
	return selectPeriod(transactions, PreviousMonthPeriod(now))
}

func selectPeriod(transactions []model.Transaction, p Period) []model.Transaction {
	result := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if p.Contains(t.Date) {
			result = append(result, t)
		}
	}
	return result
}

// truncateDay drops the time of day while keeping the calendar date as written.
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
