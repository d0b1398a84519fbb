package service

import (
	"context"
	"testing"
	"time"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/database"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/repository"
)

func newCacheTestService(t *testing.T, ttl time.Duration) (*DashboardService, *repository.TransactionRepository) {
	t.Helper()

	db, err := database.Open(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	txRepo := repository.NewTransactionRepository(db)
	svc := NewDashboardService(txRepo, repository.NewInvestmentRepository(db), ttl).
		WithClock(func() time.Time { return time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC) })
	return svc, txRepo
}

// TestDashboardCache verifies when computed dashboards are stored and dropped.
func TestDashboardCache(t *testing.T) {
	ctx := context.Background()

	t.Run("identical snapshots share one entry", func(t *testing.T) {
		svc, _ := newCacheTestService(t, time.Minute)

		for i := 0; i < 3; i++ {
			if _, err := svc.GetDashboard(ctx); err != nil {
				t.Fatalf("GetDashboard() returned unexpected error: %v", err)
			}
		}
		if n := svc.cache.ItemCount(); n != 1 {
			t.Errorf("ItemCount = %d, want 1", n)
		}
	})

	t.Run("changed snapshot gets a new entry and Invalidate flushes", func(t *testing.T) {
		svc, txRepo := newCacheTestService(t, time.Minute)

		if _, err := svc.GetDashboard(ctx); err != nil {
			t.Fatalf("GetDashboard() returned unexpected error: %v", err)
		}
		tx := model.Transaction{
			ID: "c0ffee00-0000-4000-8000-000000000001", Amount: 10, Type: model.TransactionIncome,
			Category: "Otros", Date: time.Date(2025, time.September, 2, 0, 0, 0, 0, time.UTC),
		}
		if err := txRepo.InsertTransaction(ctx, &tx); err != nil {
			t.Fatalf("InsertTransaction() returned unexpected error: %v", err)
		}
		if _, err := svc.GetDashboard(ctx); err != nil {
			t.Fatalf("GetDashboard() returned unexpected error: %v", err)
		}
		if n := svc.cache.ItemCount(); n != 2 {
			t.Errorf("ItemCount = %d, want 2", n)
		}

		svc.Invalidate()
		if n := svc.cache.ItemCount(); n != 0 {
			t.Errorf("ItemCount after Invalidate = %d, want 0", n)
		}
	})

	t.Run("zero TTL disables caching", func(t *testing.T) {
		svc, _ := newCacheTestService(t, 0)

		if svc.cache != nil {
			t.Fatal("cache created for zero TTL")
		}
		if _, err := svc.GetDashboard(ctx); err != nil {
			t.Fatalf("GetDashboard() returned unexpected error: %v", err)
		}
		svc.Invalidate()
	})

	t.Run("key depends on month", func(t *testing.T) {
		a, err := snapshotKey(nil, nil, time.Date(2025, time.September, 30, 0, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatal(err)
		}
		b, err := snapshotKey(nil, nil, time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatal(err)
		}
		if a == b {
			t.Error("keys for different months are equal")
		}
	})
}

func TestNormaliseAmount(t *testing.T) {
	tests := []struct {
		amount float64
		txType model.TransactionType
		want   float64
	}{
		{45, model.TransactionExpense, -45},
		{-45, model.TransactionExpense, -45},
		{3500, model.TransactionIncome, 3500},
		{-3500, model.TransactionIncome, 3500},
	}
	for _, tt := range tests {
		if got := normaliseAmount(tt.amount, tt.txType); got != tt.want {
			t.Errorf("normaliseAmount(%v, %s) = %v, want %v", tt.amount, tt.txType, got, tt.want)
		}
	}
}
