package handlers

import (
	"context"
	"database/sql"
	"testing"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/repository"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/seed"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/service"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/testutil"
)

// testServices holds services sharing one seeded database. Mutations made
// through the transaction and investment services invalidate the dashboard.
type testServices struct {
	db          *sql.DB
	dashboard   *service.DashboardService
	transaction *service.TransactionService
	investment  *service.InvestmentService
}

func setupServices(t *testing.T, seeded bool) testServices {
	t.Helper()

	db := testutil.SetupTestDB(t)
	if seeded {
		_, err := seed.Load(context.Background(),
			repository.NewTransactionRepository(db),
			repository.NewInvestmentRepository(db))
		if err != nil {
			t.Fatalf("seed.Load() returned unexpected error: %v", err)
		}
	}

	dashboard := testutil.NewTestDashboardService(t, db)
	return testServices{
		db:          db,
		dashboard:   dashboard,
		transaction: testutil.NewTestTransactionService(t, db, dashboard),
		investment:  testutil.NewTestInvestmentService(t, db, dashboard),
	}
}
