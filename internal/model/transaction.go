package model

import "time"

// TransactionType classifies a transaction as money coming in or going out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction represents a single income or expense event.
// Expense amounts are stored non-positive and income amounts non-negative;
// the service layer normalises the sign before anything is persisted.
type Transaction struct {
	ID          string          `json:"id"`
	Amount      float64         `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Tags        []string        `json:"tags,omitempty"`
}

// IsIncome reports whether the transaction is an income record.
func (t Transaction) IsIncome() bool {
	return t.Type == TransactionIncome
}

// IsExpense reports whether the transaction is an expense record.
func (t Transaction) IsExpense() bool {
	return t.Type == TransactionExpense
}
