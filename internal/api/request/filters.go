package request

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
)

// DateLayout is the wire format of every date in requests and query parameters.
const DateLayout = "2006-01-02"

// TransactionFilterParams holds the raw query parameters of GET /api/transaction.
type TransactionFilterParams struct {
	Type      string
	Category  string
	DateFrom  string
	DateTo    string
	AmountMin string
	AmountMax string
	Search    string
}

// ParseTransactionFilters converts raw query parameters into model.TransactionFilters.
// All parameters are optional; an empty value leaves that dimension unconstrained.
//
// Validation rules:
//   - type: all, income or expense (defaults to all)
//   - date_from/date_to: YYYY-MM-DD, date_from not after date_to
//   - amount_min/amount_max: finite non-negative numbers, min not above max
//
// Every returned error wraps apperrors.ErrInvalidFilter.
//
//nolint:gocyclo // One branch per query parameter
func ParseTransactionFilters(p TransactionFilterParams) (model.TransactionFilters, error) {
	filters := model.TransactionFilters{
		Type:       model.FilterAll,
		Category:   p.Category,
		SearchText: p.Search,
	}

	if p.Type != "" {
		switch ft := model.FilterType(strings.ToLower(strings.TrimSpace(p.Type))); ft {
		case model.FilterAll, model.FilterIncome, model.FilterExpense:
			filters.Type = ft
		default:
			return model.TransactionFilters{}, fmt.Errorf("%w: type must be all, income or expense", apperrors.ErrInvalidFilter)
		}
	}

	var err error
	if filters.DateFrom, err = parseOptionalDate("date_from", p.DateFrom); err != nil {
		return model.TransactionFilters{}, err
	}
	if filters.DateTo, err = parseOptionalDate("date_to", p.DateTo); err != nil {
		return model.TransactionFilters{}, err
	}
	if filters.DateFrom != nil && filters.DateTo != nil && filters.DateFrom.After(*filters.DateTo) {
		return model.TransactionFilters{}, fmt.Errorf("%w: %w", apperrors.ErrInvalidFilter, apperrors.ErrInvalidDateRange)
	}

	if filters.AmountMin, err = parseOptionalAmount("amount_min", p.AmountMin); err != nil {
		return model.TransactionFilters{}, err
	}
	if filters.AmountMax, err = parseOptionalAmount("amount_max", p.AmountMax); err != nil {
		return model.TransactionFilters{}, err
	}
	if filters.AmountMin != nil && filters.AmountMax != nil && *filters.AmountMin > *filters.AmountMax {
		return model.TransactionFilters{}, fmt.Errorf("%w: amount_min is greater than amount_max", apperrors.ErrInvalidFilter)
	}

	return filters, nil
}

// ParseDateRange parses optional from/to query parameters of a summary request.
// Returns apperrors.ErrInvalidDateRange when from is after to.
func ParseDateRange(fromParam, toParam string) (from, to *time.Time, err error) {
	if from, err = parseOptionalDate("from", fromParam); err != nil {
		return nil, nil, err
	}
	if to, err = parseOptionalDate("to", toParam); err != nil {
		return nil, nil, err
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, nil, apperrors.ErrInvalidDateRange
	}
	return from, to, nil
}

func parseOptionalDate(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid %s format, expected YYYY-MM-DD", apperrors.ErrInvalidFilter, name)
	}
	return &t, nil
}

func parseOptionalAmount(name, value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: %s must be a number", apperrors.ErrInvalidFilter, name)
	}
	if f < 0 {
		return nil, fmt.Errorf("%w: %s must not be negative", apperrors.ErrInvalidFilter, name)
	}
	return &f, nil
}
