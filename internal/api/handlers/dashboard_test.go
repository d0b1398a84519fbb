package handlers

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/aggregate"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/seed"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/testutil"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func getDashboard(t *testing.T, handler *DashboardHandler) model.Dashboard {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	w := httptest.NewRecorder()

	handler.Dashboard(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	return testutil.DecodeJSON[model.Dashboard](t, w)
}

func TestDashboardHandler_Dashboard(t *testing.T) {
	t.Run("sample data for September", func(t *testing.T) {
		handler := NewDashboardHandler(setupServices(t, true).dashboard)

		dashboard := getDashboard(t, handler)

		if !near(dashboard.Summary.TotalIncome, 3800) || !near(dashboard.Summary.TotalExpenses, 1643) {
			t.Errorf("Expected 3800/1643, got %v/%v", dashboard.Summary.TotalIncome, dashboard.Summary.TotalExpenses)
		}
		if len(dashboard.RecentTransactions) != 5 {
			t.Errorf("Expected 5 recent transactions, got %d", len(dashboard.RecentTransactions))
		}
		if len(dashboard.Monthly) != 3 {
			t.Errorf("Expected 3 monthly buckets, got %d", len(dashboard.Monthly))
		}
		if dashboard.Changes.Investment.Direction == model.DirectionNoHolding {
			t.Error("Expected an investment change with holdings present")
		}
	})

	t.Run("empty store uses sentinels", func(t *testing.T) {
		handler := NewDashboardHandler(setupServices(t, false).dashboard)

		dashboard := getDashboard(t, handler)

		if dashboard.Summary.SavingsRate != 0 {
			t.Errorf("Expected savings rate 0, got %v", dashboard.Summary.SavingsRate)
		}
		if dashboard.Changes.Income.Text != aggregate.TextNoChange {
			t.Errorf("Expected %q, got %q", aggregate.TextNoChange, dashboard.Changes.Income.Text)
		}
		if dashboard.Changes.Investment.Text != aggregate.TextNoHoldings {
			t.Errorf("Expected %q, got %q", aggregate.TextNoHoldings, dashboard.Changes.Investment.Text)
		}
	})

	t.Run("reflects a deleted transaction", func(t *testing.T) {
		svc := setupServices(t, true)
		handler := NewDashboardHandler(svc.dashboard)
		transactionHandler := NewTransactionHandler(svc.transaction)

		getDashboard(t, handler)

		id := seed.TransactionID("25")
		req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/transaction/"+id, map[string]string{"uuid": id})
		w := httptest.NewRecorder()
		transactionHandler.DeleteTransaction(w, req)
		if w.Code != http.StatusNoContent {
			t.Fatalf("Expected 204, got %d: %s", w.Code, w.Body.String())
		}

		dashboard := getDashboard(t, handler)
		if !near(dashboard.Summary.TotalExpenses, 443) {
			t.Errorf("Expected expenses 443 after deleting the rent, got %v", dashboard.Summary.TotalExpenses)
		}
	})
}

func TestDashboardHandler_Summary(t *testing.T) {
	handler := NewDashboardHandler(setupServices(t, true).dashboard)

	t.Run("defaults to the current month", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
		w := httptest.NewRecorder()

		handler.Summary(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		summary := testutil.DecodeJSON[model.FinancialSummary](t, w)
		if !near(summary.TotalIncome, 3800) || !near(summary.TotalExpenses, 1643) {
			t.Errorf("Expected 3800/1643, got %v/%v", summary.TotalIncome, summary.TotalExpenses)
		}
	})

	t.Run("explicit range", func(t *testing.T) {
		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/dashboard/summary", map[string]string{
			"from": "2025-07-01",
			"to":   "2025-07-31",
		})
		w := httptest.NewRecorder()

		handler.Summary(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		summary := testutil.DecodeJSON[model.FinancialSummary](t, w)
		if !near(summary.TotalIncome, 3750) || !near(summary.TotalExpenses, 2230) {
			t.Errorf("Expected 3750/2230, got %v/%v", summary.TotalIncome, summary.TotalExpenses)
		}
		if summary.MonthlyChange != 0 {
			t.Errorf("Expected monthly change 0, got %v", summary.MonthlyChange)
		}
	})

	tests := []struct {
		name  string
		query map[string]string
	}{
		{"inverted range", map[string]string{"from": "2025-08-01", "to": "2025-07-01"}},
		{"malformed from", map[string]string{"from": "July"}},
		{"malformed to", map[string]string{"to": "2025-13-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/dashboard/summary", tt.query)
			w := httptest.NewRecorder()

			handler.Summary(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestDashboardHandler_Charts(t *testing.T) {
	handler := NewDashboardHandler(setupServices(t, true).dashboard)

	t.Run("expenses by category", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/categories", nil)
		w := httptest.NewRecorder()

		handler.ExpensesByCategory(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}

		categories := testutil.DecodeJSON[[]model.CategoryTotal](t, w)
		totals := make(map[string]float64)
		for _, c := range categories {
			totals[c.Category] = c.Total
		}
		if !near(totals["Vivienda"], 3600) {
			t.Errorf("Expected Vivienda 3600, got %v", totals["Vivienda"])
		}
		if _, ok := totals["Salario"]; ok {
			t.Error("Income categories must not appear in the expense chart")
		}
	})

	t.Run("monthly", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/monthly", nil)
		w := httptest.NewRecorder()

		handler.Monthly(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}

		buckets := testutil.DecodeJSON[[]model.MonthBucket](t, w)
		if len(buckets) != 3 {
			t.Fatalf("Expected 3 buckets, got %d", len(buckets))
		}
		if buckets[0].Key != "2025-07" || buckets[2].Key != "2025-09" {
			t.Errorf("Expected July through September ascending, got %s..%s", buckets[0].Key, buckets[2].Key)
		}
	})
}
