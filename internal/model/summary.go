package model

// FinancialSummary is the derived summary of a period.
// MonthlyChange is reserved and never populated by the summary itself;
// month-over-month changes are reported as ChangeDescriptors.
type FinancialSummary struct {
	TotalIncome      float64 `json:"totalIncome"`
	TotalExpenses    float64 `json:"totalExpenses"` // always a non-negative magnitude
	NetWorth         float64 `json:"netWorth"`
	TotalInvestments float64 `json:"totalInvestments"`
	SavingsRate      float64 `json:"savingsRate"` // percentage
	MonthlyChange    float64 `json:"monthlyChange"`
}

// ChangeDirection is the raw arithmetic direction of a change.
type ChangeDirection string

const (
	DirectionUp        ChangeDirection = "up"
	DirectionDown      ChangeDirection = "down"
	DirectionFlat      ChangeDirection = "flat"
	DirectionNew       ChangeDirection = "new"
	DirectionNone      ChangeDirection = "none"
	DirectionNoHolding ChangeDirection = "no_holdings"
)

// ChangeOutcome tells the UI how to colour a change.
type ChangeOutcome string

const (
	OutcomePositive ChangeOutcome = "positive"
	OutcomeNegative ChangeOutcome = "negative"
	OutcomeNeutral  ChangeOutcome = "neutral"
)

// ChangeDescriptor is a display-ready month-over-month indicator.
// Percent is nil for the sentinel descriptors, which carry no number.
type ChangeDescriptor struct {
	Text      string          `json:"text"`
	Direction ChangeDirection `json:"direction"`
	Outcome   ChangeOutcome   `json:"outcome"`
	Percent   *float64        `json:"percent,omitempty"`
}

// InvestmentChange is the portfolio-level return indicator.
// ExcludedLots counts lots whose return could not be computed.
type InvestmentChange struct {
	ChangeDescriptor
	ExcludedLots int `json:"excludedLots,omitempty"`
}

// DashboardChanges groups the change indicators shown on the dashboard cards.
type DashboardChanges struct {
	Income     ChangeDescriptor `json:"income"`
	Expenses   ChangeDescriptor `json:"expenses"`
	Balance    ChangeDescriptor `json:"balance"`
	NetWorth   ChangeDescriptor `json:"netWorth"`
	Investment InvestmentChange `json:"investment"`
}

// CategoryTotal is one slice of the expense-by-category chart.
// Category is the grouping key; Label is the capitalised display form.
type CategoryTotal struct {
	Category string  `json:"category"`
	Label    string  `json:"label"`
	Total    float64 `json:"total"`
}

// MonthBucket is one bar group of the income-vs-expenses chart.
// Key is the sortable YYYY-MM form, Label the localised short month.
type MonthBucket struct {
	Key      string  `json:"key"`
	Label    string  `json:"label"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// Dashboard is the composite payload behind the dashboard page.
type Dashboard struct {
	Summary            FinancialSummary   `json:"summary"`
	MonthlyBalance     float64            `json:"monthlyBalance"`
	Changes            DashboardChanges   `json:"changes"`
	ExpensesByCategory []CategoryTotal    `json:"expensesByCategory"`
	Monthly            []MonthBucket      `json:"monthly"`
	Investments        InvestmentOverview `json:"investments"`
	RecentTransactions []Transaction      `json:"recentTransactions"`
}
