package model

import "time"

// FilterType restricts a transaction listing by type.
type FilterType string

const (
	FilterAll     FilterType = "all"
	FilterIncome  FilterType = "income"
	FilterExpense FilterType = "expense"
)

// TransactionFilters is the query object behind the transaction filter panel.
// Nil bounds and empty strings leave that dimension unconstrained.
// Amount bounds apply to the absolute amount and are inclusive, as are the date bounds.
type TransactionFilters struct {
	Type       FilterType `json:"type"`
	Category   string     `json:"category"`
	DateFrom   *time.Time `json:"dateFrom,omitempty"`
	DateTo     *time.Time `json:"dateTo,omitempty"`
	AmountMin  *float64   `json:"amountMin,omitempty"`
	AmountMax  *float64   `json:"amountMax,omitempty"`
	SearchText string     `json:"searchText"`
}
