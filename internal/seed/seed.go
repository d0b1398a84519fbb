// Package seed loads the bundled sample transactions and investment lots
// into an empty store.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
)

// namespace scopes the deterministic sample IDs so that a reseeded store
// serves the same URLs.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("finance-dashboard/sample-data"))

// TransactionStore is the subset of the transaction repository the loader needs.
type TransactionStore interface {
	CountTransactions(ctx context.Context) (int, error)
	InsertTransaction(ctx context.Context, t *model.Transaction) error
}

// InvestmentStore is the subset of the investment repository the loader needs.
type InvestmentStore interface {
	CountInvestments(ctx context.Context) (int, error)
	InsertInvestment(ctx context.Context, inv *model.Investment) error
}

// Result reports how many records Load inserted.
type Result struct {
	Transactions int
	Investments  int
}

// TransactionID returns the stable ID of the sample transaction with the given key ("1" to "28").
func TransactionID(key string) string {
	return uuid.NewSHA1(namespace, []byte("transaction/"+key)).String()
}

// InvestmentID returns the stable ID of the sample lot with the given key ("inv1" to "inv3").
func InvestmentID(key string) string {
	return uuid.NewSHA1(namespace, []byte("investment/"+key)).String()
}

// Transactions returns a fresh copy of the sample transactions in display order.
func Transactions() []model.Transaction {
	out := make([]model.Transaction, 0, len(sampleTransactions))
	for _, s := range sampleTransactions {
		out = append(out, model.Transaction{
			ID:          TransactionID(s.key),
			Amount:      s.amount,
			Type:        s.txType,
			Category:    s.category,
			Description: s.description,
			Date:        mustDate(s.date),
			Tags:        slices.Clone(s.tags),
		})
	}
	return out
}

// Investments returns a fresh copy of the sample lots in display order.
func Investments() []model.Investment {
	out := make([]model.Investment, 0, len(sampleInvestments))
	for _, s := range sampleInvestments {
		out = append(out, model.Investment{
			ID:            InvestmentID(s.key),
			Name:          s.name,
			Type:          s.invType,
			Amount:        s.amount,
			PurchasePrice: s.purchasePrice,
			CurrentPrice:  s.currentPrice,
			Quantity:      s.quantity,
			Date:          mustDate(s.date),
		})
	}
	return out
}

// Load inserts the sample data into each store that is still empty.
// Records are inserted last-to-first because listings return the most
// recently inserted record first.
func Load(ctx context.Context, txs TransactionStore, invs InvestmentStore) (Result, error) {
	var res Result

	count, err := txs.CountTransactions(ctx)
	if err != nil {
		return res, err
	}
	if count == 0 {
		records := Transactions()
		slices.Reverse(records)
		for i := range records {
			if err := txs.InsertTransaction(ctx, &records[i]); err != nil {
				return res, fmt.Errorf("failed to seed transaction %s: %w", records[i].ID, err)
			}
			res.Transactions++
		}
	}

	count, err = invs.CountInvestments(ctx)
	if err != nil {
		return res, err
	}
	if count == 0 {
		records := Investments()
		slices.Reverse(records)
		for i := range records {
			if err := invs.InsertInvestment(ctx, &records[i]); err != nil {
				return res, fmt.Errorf("failed to seed investment %s: %w", records[i].ID, err)
			}
			res.Investments++
		}
	}

	slog.InfoContext(ctx, "sample data loaded",
		"transactions", res.Transactions,
		"investments", res.Investments,
	)
	return res, nil
}

func mustDate(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(fmt.Sprintf("seed: bad sample date %q: %v", s, err))
	}
	return t
}
