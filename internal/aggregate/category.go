package aggregate

import (
	"fmt"
	"slices"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
)

// MaxMonthBuckets is the number of most recent months kept by ByMonth.
const MaxMonthBuckets = 6

var shortMonthNames = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sept", "oct", "nov", "dic",
}

// ByCategory totals expense magnitudes per category.
// Categories are grouped by their exact, case-sensitive text and returned in
// the order they first appear. Income is ignored.
func ByCategory(transactions []model.Transaction) []model.CategoryTotal {
	index := make(map[string]int)
	totals := []decimal.Decimal{}
	result := []model.CategoryTotal{}

	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		i, seen := index[t.Category]
		if !seen {
			i = len(result)
			index[t.Category] = i
			result = append(result, model.CategoryTotal{
				Category: t.Category,
				Label:    CapitalizeLabel(t.Category),
			})
			totals = append(totals, decimal.Zero)
		}
		totals[i] = totals[i].Add(decimal.NewFromFloat(t.Amount).Abs())
	}

	for i := range result {
		result[i].Total = totals[i].InexactFloat64()
	}
	return result
}

// CapitalizeLabel upper-cases the first letter of a category for display.
func CapitalizeLabel(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

type monthAccumulator struct {
	ym       YearMonth
	income   decimal.Decimal
	expenses decimal.Decimal
}

// ByMonth groups all transactions by calendar month for the income vs
// expenses chart. Income is summed with its sign, expenses as magnitudes.
// Buckets are ordered by their YYYY-MM key and only the most recent
// MaxMonthBuckets are kept. now only affects the labels: months outside
// now's year carry a two-digit year suffix.
func ByMonth(transactions []model.Transaction, now time.Time) []model.MonthBucket {
	buckets := make(map[string]*monthAccumulator)
	for _, t := range transactions {
		ym := YearMonthOf(t.Date)
		acc, ok := buckets[ym.Key()]
		if !ok {
			acc = &monthAccumulator{ym: ym}
			buckets[ym.Key()] = acc
		}
		amount := decimal.NewFromFloat(t.Amount)
		if t.IsIncome() {
			acc.income = acc.income.Add(amount)
		} else {
			acc.expenses = acc.expenses.Add(amount.Abs())
		}
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	if len(keys) > MaxMonthBuckets {
		keys = keys[len(keys)-MaxMonthBuckets:]
	}

	result := make([]model.MonthBucket, 0, len(keys))
	for _, key := range keys {
		acc := buckets[key]
		result = append(result, model.MonthBucket{
			Key:      key,
			Label:    MonthLabel(acc.ym, now),
			Income:   acc.income.InexactFloat64(),
			Expenses: acc.expenses.InexactFloat64(),
		})
	}
	return result
}

// MonthLabel returns the short Spanish month name, e.g. "jul", or "jul 24"
// when the month lies outside now's year.
func MonthLabel(ym YearMonth, now time.Time) string {
	name := shortMonthNames[ym.Month-1]
	if ym.Year != now.Year() {
		return fmt.Sprintf("%s %02d", name, ym.Year%100)
	}
	return name
}

// Categories returns the distinct categories in first-seen order.
func Categories(transactions []model.Transaction) []string {
	seen := make(map[string]bool)
	result := []string{}
	for _, t := range transactions {
		if t.Category == "" || seen[t.Category] {
			continue
		}
		seen[t.Category] = true
		result = append(result, t.Category)
	}
	return result
}
