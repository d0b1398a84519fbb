package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/repository"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/testutil"
)

func TestInvestmentRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips every field", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewInvestmentRepository(db)

		want := testutil.NewInvestment().
			WithName("Bitcoin").
			WithType(model.InvestmentCrypto).
			WithPrices(65000, 68500).
			WithQuantity(0.0077).
			WithDate(testutil.Date(2025, 8, 20)).
			Build(t, db)

		got, err := repo.GetInvestment(ctx, want.ID)
		if err != nil {
			t.Fatalf("GetInvestment() returned unexpected error: %v", err)
		}
		if got.Name != "Bitcoin" || got.Type != model.InvestmentCrypto ||
			got.PurchasePrice != 65000 || got.CurrentPrice != 68500 || got.Quantity != 0.0077 {
			t.Errorf("got %+v, want %+v", got, want)
		}
		if !got.Date.Equal(want.Date) {
			t.Errorf("Date = %v, want %v", got.Date, want.Date)
		}
	})

	t.Run("lists newest first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewInvestmentRepository(db)

		a := testutil.NewInvestment().Build(t, db)
		b := testutil.NewInvestment().Build(t, db)

		investments, err := repo.GetInvestments(ctx)
		if err != nil {
			t.Fatalf("GetInvestments() returned unexpected error: %v", err)
		}
		if len(investments) != 2 || investments[0].ID != b.ID || investments[1].ID != a.ID {
			t.Errorf("unexpected order: %+v", investments)
		}
	})

	t.Run("update and delete", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewInvestmentRepository(db)

		inv := testutil.NewInvestment().Build(t, db)
		inv.CurrentPrice = 12.5
		if err := repo.UpdateInvestment(ctx, &inv); err != nil {
			t.Fatalf("UpdateInvestment() returned unexpected error: %v", err)
		}

		got, _ := repo.GetInvestment(ctx, inv.ID)
		if got.CurrentPrice != 12.5 {
			t.Errorf("CurrentPrice = %v, want 12.5", got.CurrentPrice)
		}

		if err := repo.DeleteInvestment(ctx, inv.ID); err != nil {
			t.Fatalf("DeleteInvestment() returned unexpected error: %v", err)
		}
		if count, _ := repo.CountInvestments(ctx); count != 0 {
			t.Errorf("Expected 0 investments, got %d", count)
		}
	})

	t.Run("missing lot", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewInvestmentRepository(db)
		id := testutil.MakeID()

		if _, err := repo.GetInvestment(ctx, id); !errors.Is(err, apperrors.ErrInvestmentNotFound) {
			t.Errorf("GetInvestment: expected ErrInvestmentNotFound, got %v", err)
		}
		inv := testutil.NewInvestment().WithID(id).Model()
		if err := repo.UpdateInvestment(ctx, &inv); !errors.Is(err, apperrors.ErrInvestmentNotFound) {
			t.Errorf("UpdateInvestment: expected ErrInvestmentNotFound, got %v", err)
		}
		if err := repo.DeleteInvestment(ctx, id); !errors.Is(err, apperrors.ErrInvestmentNotFound) {
			t.Errorf("DeleteInvestment: expected ErrInvestmentNotFound, got %v", err)
		}
	})
}
