package aggregate_test

import (
	"math"
	"testing"
	"time"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func income(id string, amount float64, category string, d time.Time) model.Transaction {
	return model.Transaction{
		ID:          id,
		Amount:      amount,
		Type:        model.TransactionIncome,
		Category:    category,
		Description: "income " + id,
		Date:        d,
	}
}

func expense(id string, amount float64, category string, d time.Time) model.Transaction {
	return model.Transaction{
		ID:          id,
		Amount:      amount,
		Type:        model.TransactionExpense,
		Category:    category,
		Description: "expense " + id,
		Date:        d,
	}
}

func lot(purchase, current, quantity float64) model.Investment {
	return model.Investment{
		ID:            "lot",
		Name:          "Lot",
		Type:          model.InvestmentStocks,
		PurchasePrice: purchase,
		CurrentPrice:  current,
		Quantity:      quantity,
		Date:          date(2025, time.January, 1),
	}
}

func ptr[T any](v T) *T {
	return &v
}

func assertFloat(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func ids(transactions []model.Transaction) []string {
	out := make([]string, len(transactions))
	for i, tx := range transactions {
		out[i] = tx.ID
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
