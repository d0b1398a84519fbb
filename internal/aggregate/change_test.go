package aggregate_test

import (
	"testing"
	"time"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/aggregate"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
)

func TestComputeChange(t *testing.T) {
	tests := []struct {
		name      string
		current   float64
		previous  float64
		kind      aggregate.MetricKind
		text      string
		direction model.ChangeDirection
		outcome   model.ChangeOutcome
	}{
		{"income increase", 1100, 1000, aggregate.MetricIncome, "+10.0% desde el mes pasado", model.DirectionUp, model.OutcomePositive},
		{"income decrease", 750, 1000, aggregate.MetricIncome, "-25.0% desde el mes pasado", model.DirectionDown, model.OutcomeNegative},
		{"income unchanged", 1000, 1000, aggregate.MetricIncome, "+0.0% desde el mes pasado", model.DirectionFlat, model.OutcomeNeutral},
		{"income new this period", 500, 0, aggregate.MetricIncome, aggregate.TextNewThisPeriod, model.DirectionNew, model.OutcomeNeutral},
		{"income no change", 0, 0, aggregate.MetricIncome, aggregate.TextNoChange, model.DirectionNone, model.OutcomeNeutral},
		{"expense decrease reads as improvement", 900, 1000, aggregate.MetricExpenses, "+10.0% desde el mes pasado", model.DirectionDown, model.OutcomePositive},
		{"expense increase reads as deterioration", 1200, 1000, aggregate.MetricExpenses, "-20.0% desde el mes pasado", model.DirectionUp, model.OutcomeNegative},
		{"expense new this period", 80, 0, aggregate.MetricExpenses, aggregate.TextNewThisPeriod, model.DirectionNew, model.OutcomeNeutral},
		{"balance from negative baseline", 100, -200, aggregate.MetricBalance, "+150.0% desde el mes pasado", model.DirectionUp, model.OutcomePositive},
		{"balance to negative", -50, 100, aggregate.MetricBalance, "-150.0% desde el mes pasado", model.DirectionDown, model.OutcomeNegative},
		{"net worth new from zero", -10, 0, aggregate.MetricNetWorth, aggregate.TextNewThisPeriod, model.DirectionNew, model.OutcomeNeutral},
		{"net worth no change", 0, 0, aggregate.MetricNetWorth, aggregate.TextNoChange, model.DirectionNone, model.OutcomeNeutral},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := aggregate.ComputeChange(tc.current, tc.previous, tc.kind)

			if got.Text != tc.text {
				t.Errorf("Text = %q, want %q", got.Text, tc.text)
			}
			if got.Direction != tc.direction {
				t.Errorf("Direction = %q, want %q", got.Direction, tc.direction)
			}
			if got.Outcome != tc.outcome {
				t.Errorf("Outcome = %q, want %q", got.Outcome, tc.outcome)
			}
		})
	}
}

// TestComputeChange_ZeroBaseline verifies the sentinel policy.
//
// WHY: a zero baseline must never produce a number such as "+Inf%"; the
// descriptor carries no percentage at all.
func TestComputeChange_ZeroBaseline(t *testing.T) {
	kinds := []aggregate.MetricKind{
		aggregate.MetricIncome, aggregate.MetricExpenses, aggregate.MetricBalance, aggregate.MetricNetWorth,
	}
	for _, kind := range kinds {
		for _, current := range []float64{-500, 0.01, 500} {
			got := aggregate.ComputeChange(current, 0, kind)
			if got.Text != aggregate.TextNewThisPeriod || got.Percent != nil {
				t.Errorf("kind %d, current %v: got %+v, want new-this-period sentinel", kind, current, got)
			}
		}

		got := aggregate.ComputeChange(0, 0, kind)
		if got.Text != aggregate.TextNoChange || got.Percent != nil {
			t.Errorf("kind %d: got %+v, want no-change sentinel", kind, got)
		}
	}
}

func TestComputeChange_RawPercentKept(t *testing.T) {
	got := aggregate.ComputeChange(900, 1000, aggregate.MetricExpenses)
	if got.Percent == nil {
		t.Fatal("Expected a percentage")
	}
	assertFloat(t, "Percent", *got.Percent, -10)
}

func TestFormatPercent(t *testing.T) {
	cases := map[float64]string{
		12.345: "+12.3%",
		-4:     "-4.0%",
		0:      "+0.0%",
		-0.04:  "+0.0%",
		0.05:   "+0.1%",
	}
	for in, want := range cases {
		if got := aggregate.FormatPercent(in); got != want {
			t.Errorf("FormatPercent(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestInvestmentChange(t *testing.T) {
	// WHY: the portfolio indicator is the plain mean of per-lot returns, not a value-weighted figure.
	t.Run("unweighted mean across lots", func(t *testing.T) {
		invs := []model.Investment{lot(100, 110, 1), lot(50, 45, 2)}

		got := aggregate.InvestmentChange(invs)

		if got.Percent == nil {
			t.Fatalf("Expected a percentage, got %+v", got)
		}
		assertFloat(t, "Percent", *got.Percent, 0)
		if got.Text != "+0.0% desde el mes pasado" {
			t.Errorf("Text = %q", got.Text)
		}
	})

	t.Run("no holdings sentinel instead of zero", func(t *testing.T) {
		got := aggregate.InvestmentChange(nil)

		if got.Text != aggregate.TextNoHoldings {
			t.Errorf("Text = %q, want %q", got.Text, aggregate.TextNoHoldings)
		}
		if got.Direction != model.DirectionNoHolding || got.Percent != nil {
			t.Errorf("Expected no-holdings descriptor, got %+v", got)
		}
	})

	t.Run("lots without purchase price are excluded", func(t *testing.T) {
		invs := []model.Investment{lot(100, 120, 1), lot(0, 10, 5)}

		got := aggregate.InvestmentChange(invs)

		if got.ExcludedLots != 1 {
			t.Errorf("ExcludedLots = %d, want 1", got.ExcludedLots)
		}
		if got.Percent == nil {
			t.Fatal("Expected a percentage")
		}
		assertFloat(t, "Percent", *got.Percent, 20)
	})

	t.Run("only unpriced lots fall back to the sentinel", func(t *testing.T) {
		got := aggregate.InvestmentChange([]model.Investment{lot(0, 10, 5)})

		if got.Text != aggregate.TextNoHoldings || got.ExcludedLots != 1 {
			t.Errorf("Expected no-holdings sentinel with one excluded lot, got %+v", got)
		}
	})
}

func TestMonthlyChanges(t *testing.T) {
	now := date(2025, time.September, 10)

	t.Run("compares current month against the previous one", func(t *testing.T) {
		txs := []model.Transaction{
			income("aug-salary", 1000, "Salario", date(2025, time.August, 1)),
			expense("aug-rent", -500, "Vivienda", date(2025, time.August, 2)),
			income("sep-salary", 1100, "Salario", date(2025, time.September, 1)),
			expense("sep-rent", -400, "Vivienda", date(2025, time.September, 2)),
		}
		invs := []model.Investment{lot(100, 110, 1)}

		got := aggregate.MonthlyChanges(txs, invs, now)

		if got.Income.Text != "+10.0% desde el mes pasado" {
			t.Errorf("Income = %q", got.Income.Text)
		}
		if got.Expenses.Text != "+20.0% desde el mes pasado" || got.Expenses.Outcome != model.OutcomePositive {
			t.Errorf("Expenses = %+v", got.Expenses)
		}
		// balance 500 -> 700
		if got.Balance.Text != "+40.0% desde el mes pasado" {
			t.Errorf("Balance = %q", got.Balance.Text)
		}
		// net worth: previous 500 + 100 (purchase) = 600, current 1200 + 110 = 1310
		if got.NetWorth.Percent == nil {
			t.Fatalf("Expected net worth percentage, got %+v", got.NetWorth)
		}
		assertFloat(t, "NetWorth", *got.NetWorth.Percent, (1310.0-600.0)/600.0*100)
		if got.Investment.Text != "+10.0% desde el mes pasado" {
			t.Errorf("Investment = %q", got.Investment.Text)
		}
	})

	t.Run("first month of activity", func(t *testing.T) {
		txs := []model.Transaction{
			income("sep-salary", 1100, "Salario", date(2025, time.September, 1)),
		}

		got := aggregate.MonthlyChanges(txs, nil, now)

		if got.Income.Text != aggregate.TextNewThisPeriod {
			t.Errorf("Income = %q", got.Income.Text)
		}
		if got.Expenses.Text != aggregate.TextNoChange {
			t.Errorf("Expenses = %q", got.Expenses.Text)
		}
		if got.Balance.Text != aggregate.TextNewThisPeriod {
			t.Errorf("Balance = %q", got.Balance.Text)
		}
		if got.NetWorth.Text != aggregate.TextNewThisPeriod {
			t.Errorf("NetWorth = %q", got.NetWorth.Text)
		}
		if got.Investment.Text != aggregate.TextNoHoldings {
			t.Errorf("Investment = %q", got.Investment.Text)
		}
	})

	t.Run("empty snapshots", func(t *testing.T) {
		got := aggregate.MonthlyChanges(nil, nil, now)

		for name, d := range map[string]model.ChangeDescriptor{
			"income": got.Income, "expenses": got.Expenses, "balance": got.Balance, "netWorth": got.NetWorth,
		} {
			if d.Text != aggregate.TextNoChange {
				t.Errorf("%s = %q, want %q", name, d.Text, aggregate.TextNoChange)
			}
		}
	})
}
