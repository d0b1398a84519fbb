package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
)

var hundred = decimal.NewFromInt(100)

// flows holds the income and expense totals of a set of transactions.
// Expenses are kept as a non-negative magnitude.
type flows struct {
	income   decimal.Decimal
	expenses decimal.Decimal
}

func (f flows) balance() decimal.Decimal {
	return f.income.Sub(f.expenses)
}

// sumFlows totals the transactions that fall within p.
// Expense magnitudes use abs(amount) so a caller that stored an unsigned
// expense still gets the same figure.
func sumFlows(transactions []model.Transaction, p Period) flows {
	var f flows
	for _, t := range transactions {
		if !p.Contains(t.Date) {
			continue
		}
		amount := decimal.NewFromFloat(t.Amount)
		switch t.Type {
		case model.TransactionIncome:
			f.income = f.income.Add(amount)
		case model.TransactionExpense:
			f.expenses = f.expenses.Add(amount.Abs())
		}
	}
	return f
}

// ComputeSummary reduces the snapshots to the FinancialSummary of period.
//
// Income, expenses and the savings rate only look at transactions inside
// the period. Net worth is a balance-sheet figure and always covers the
// full history plus the current value of every holding, whatever period
// was requested. Investments are never period filtered.
//
// The savings rate is (income - expenses) / income * 100 and 0 when there
// is no income.
func ComputeSummary(transactions []model.Transaction, investments []model.Investment, period Period) model.FinancialSummary {
	inPeriod := sumFlows(transactions, period)
	allTime := sumFlows(transactions, AllTime())
	invested := investmentValue(investments)

	savingsRate := decimal.Zero
	if inPeriod.income.IsPositive() {
		savingsRate = inPeriod.balance().Div(inPeriod.income).Mul(hundred)
	}

	return model.FinancialSummary{
		TotalIncome:      inPeriod.income.InexactFloat64(),
		TotalExpenses:    inPeriod.expenses.InexactFloat64(),
		NetWorth:         allTime.balance().Add(invested).InexactFloat64(),
		TotalInvestments: invested.InexactFloat64(),
		SavingsRate:      savingsRate.InexactFloat64(),
		MonthlyChange:    0,
	}
}

// TotalIncome returns the summed income of the transactions within p.
func TotalIncome(transactions []model.Transaction, p Period) float64 {
	return sumFlows(transactions, p).income.InexactFloat64()
}

// TotalExpenses returns the summed expense magnitude of the transactions within p.
func TotalExpenses(transactions []model.Transaction, p Period) float64 {
	return sumFlows(transactions, p).expenses.InexactFloat64()
}

// NetFlow returns the signed sum of the transactions within p, counting every
// expense as a negative magnitude regardless of its stored sign.
func NetFlow(transactions []model.Transaction, p Period) float64 {
	return sumFlows(transactions, p).balance().InexactFloat64()
}
