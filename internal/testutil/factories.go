package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/repository"
)

// TransactionBuilder provides a fluent interface for creating test transactions.
//
// Example usage:
//
//	// Simple creation with defaults (a 100.00 income today)
//	tx := testutil.NewTransaction().Build(t, db)
//
//	// Customized expense
//	tx := testutil.NewTransaction().
//	    Expense(45.50).
//	    WithCategory("Alimentación").
//	    WithDate(testutil.Date(2025, 7, 5)).
//	    Build(t, db)
type TransactionBuilder struct {
	tx model.Transaction
}

// NewTransaction creates a TransactionBuilder with sensible defaults.
func NewTransaction() *TransactionBuilder {
	return &TransactionBuilder{tx: model.Transaction{
		ID:          MakeID(),
		Amount:      100,
		Type:        model.TransactionIncome,
		Category:    "Salario",
		Description: MakeDescription("Test transaction"),
		Date:        Today(),
	}}
}

// WithID sets a custom ID.
func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	b.tx.ID = id
	return b
}

// Income makes the transaction an income of the given magnitude.
func (b *TransactionBuilder) Income(amount float64) *TransactionBuilder {
	b.tx.Type = model.TransactionIncome
	b.tx.Amount = amount
	return b
}

// Expense makes the transaction an expense of the given magnitude (stored negative).
func (b *TransactionBuilder) Expense(amount float64) *TransactionBuilder {
	b.tx.Type = model.TransactionExpense
	b.tx.Amount = -amount
	return b
}

// WithCategory sets a custom category.
func (b *TransactionBuilder) WithCategory(category string) *TransactionBuilder {
	b.tx.Category = category
	return b
}

// WithDescription sets a custom description.
func (b *TransactionBuilder) WithDescription(desc string) *TransactionBuilder {
	b.tx.Description = desc
	return b
}

// WithDate sets a custom date.
func (b *TransactionBuilder) WithDate(date time.Time) *TransactionBuilder {
	b.tx.Date = date
	return b
}

// WithTags sets custom tags.
func (b *TransactionBuilder) WithTags(tags ...string) *TransactionBuilder {
	b.tx.Tags = tags
	return b
}

// Model returns the transaction without storing it.
func (b *TransactionBuilder) Model() model.Transaction {
	return b.tx
}

// Build creates the transaction in the database and returns it.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	tx := b.tx
	if err := repository.NewTransactionRepository(db).InsertTransaction(context.Background(), &tx); err != nil {
		t.Fatalf("Failed to create test transaction: %v", err)
	}
	return tx
}

// InvestmentBuilder provides a fluent interface for creating test investment lots.
//
// Example usage:
//
//	lot := testutil.NewInvestment().
//	    WithPrices(100, 110).
//	    WithQuantity(2).
//	    Build(t, db)
type InvestmentBuilder struct {
	inv model.Investment
}

// NewInvestment creates an InvestmentBuilder with sensible defaults.
func NewInvestment() *InvestmentBuilder {
	return &InvestmentBuilder{inv: model.Investment{
		ID:            MakeID(),
		Name:          MakeDescription("Test Holding"),
		Type:          model.InvestmentStocks,
		Amount:        1000,
		PurchasePrice: 10,
		CurrentPrice:  10,
		Quantity:      100,
		Date:          Today(),
	}}
}

// WithID sets a custom ID.
func (b *InvestmentBuilder) WithID(id string) *InvestmentBuilder {
	b.inv.ID = id
	return b
}

// WithName sets a custom name.
func (b *InvestmentBuilder) WithName(name string) *InvestmentBuilder {
	b.inv.Name = name
	return b
}

// WithType sets the asset class.
func (b *InvestmentBuilder) WithType(t model.InvestmentType) *InvestmentBuilder {
	b.inv.Type = t
	return b
}

// WithPrices sets the purchase and current unit prices.
func (b *InvestmentBuilder) WithPrices(purchase, current float64) *InvestmentBuilder {
	b.inv.PurchasePrice = purchase
	b.inv.CurrentPrice = current
	return b
}

// WithQuantity sets the number of units held.
func (b *InvestmentBuilder) WithQuantity(q float64) *InvestmentBuilder {
	b.inv.Quantity = q
	return b
}

// WithDate sets the purchase date.
func (b *InvestmentBuilder) WithDate(date time.Time) *InvestmentBuilder {
	b.inv.Date = date
	return b
}

// Model returns the lot without storing it.
func (b *InvestmentBuilder) Model() model.Investment {
	return b.inv
}

// Build creates the lot in the database and returns it.
func (b *InvestmentBuilder) Build(t *testing.T, db *sql.DB) model.Investment {
	t.Helper()

	inv := b.inv
	if err := repository.NewInvestmentRepository(db).InsertInvestment(context.Background(), &inv); err != nil {
		t.Fatalf("Failed to create test investment: %v", err)
	}
	return inv
}

// Convenience functions

// CreateIncome stores an income of amount on date.
func CreateIncome(t *testing.T, db *sql.DB, amount float64, date time.Time) model.Transaction {
	t.Helper()
	return NewTransaction().Income(amount).WithDate(date).Build(t, db)
}

// CreateExpense stores an expense of magnitude amount in category on date.
func CreateExpense(t *testing.T, db *sql.DB, amount float64, category string, date time.Time) model.Transaction {
	t.Helper()
	return NewTransaction().Expense(amount).WithCategory(category).WithDate(date).Build(t, db)
}
