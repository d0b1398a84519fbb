package aggregate

import (
	"math"
	"strings"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
)

// ResetFilters returns the filter set that lets every transaction through.
func ResetFilters() model.TransactionFilters {
	return model.TransactionFilters{Type: model.FilterAll}
}

// ApplyFilters returns the transactions matching every active filter, in input order.
//
//   - Type: "all" (or empty) matches both types
//   - Category: exact match, empty matches any
//   - DateFrom/DateTo: inclusive, day granularity
//   - AmountMin/AmountMax: inclusive, compared against abs(amount)
//   - SearchText: case-insensitive substring of the description
func ApplyFilters(transactions []model.Transaction, f model.TransactionFilters) []model.Transaction {
	search := strings.ToLower(f.SearchText)
	period := Period{From: f.DateFrom, To: f.DateTo}

	result := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if f.Type != "" && f.Type != model.FilterAll && string(f.Type) != string(t.Type) {
			continue
		}
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		if !period.Contains(t.Date) {
			continue
		}
		magnitude := math.Abs(t.Amount)
		if f.AmountMin != nil && magnitude < *f.AmountMin {
			continue
		}
		if f.AmountMax != nil && magnitude > *f.AmountMax {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		result = append(result, t)
	}
	return result
}

// HasActiveFilters reports whether any filter constrains the listing.
func HasActiveFilters(f model.TransactionFilters) bool {
	return ActiveFilterCount(f) > 0
}

// ActiveFilterCount counts the active filter groups. A date range counts
// once whichever bounds are set, and so does an amount range.
func ActiveFilterCount(f model.TransactionFilters) int {
	count := 0
	if f.Type != "" && f.Type != model.FilterAll {
		count++
	}
	if f.Category != "" {
		count++
	}
	if f.DateFrom != nil || f.DateTo != nil {
		count++
	}
	if f.AmountMin != nil || f.AmountMax != nil {
		count++
	}
	if f.SearchText != "" {
		count++
	}
	return count
}
