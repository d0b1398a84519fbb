package aggregate

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
)

// MetricKind selects the baseline rule and outcome mapping of a change.
type MetricKind int

const (
	// MetricIncome is a flow metric: a previous value must be positive to act as a baseline.
	MetricIncome MetricKind = iota
	// MetricExpenses is a flow metric whose outcome is inverted: spending less is good.
	MetricExpenses
	// MetricBalance is anchored at zero: any non-zero previous value is a baseline.
	MetricBalance
	// MetricNetWorth is anchored at zero like MetricBalance.
	MetricNetWorth
	// MetricInvestment is the average return of the holdings, already a percentage.
	MetricInvestment
)

// Sentinel texts used instead of a percentage that cannot be computed.
const (
	TextNewThisPeriod = "Nuevo este mes"
	TextNoChange      = "Sin cambios"
	TextNoHoldings    = "Sin inversiones"

	periodQualifier = "desde el mes pasado"
)

// ComputeChange compares a metric between the current and the previous period.
//
// With a usable baseline the change is (current - previous) / |previous| * 100,
// rendered with an explicit sign and one decimal. Without one, a non-zero
// current value yields the "new this period" sentinel and a zero current
// value the "no change" sentinel. The division is never attempted on a zero
// baseline.
func ComputeChange(current, previous float64, kind MetricKind) model.ChangeDescriptor {
	if hasBaseline(previous, kind) {
		pct := (current - previous) / math.Abs(previous) * 100
		return percentDescriptor(pct, kind)
	}
	if current != 0 {
		return sentinel(TextNewThisPeriod, model.DirectionNew)
	}
	return sentinel(TextNoChange, model.DirectionNone)
}

func hasBaseline(previous float64, kind MetricKind) bool {
	switch kind {
	case MetricBalance, MetricNetWorth:
		return previous != 0
	default:
		return previous > 0
	}
}

// percentDescriptor renders a computed percentage. For expenses the displayed
// sign is flipped so a drop in spending reads as a gain; Direction and
// Percent keep the raw arithmetic.
func percentDescriptor(pct float64, kind MetricKind) model.ChangeDescriptor {
	direction := directionOf(pct)
	shown := pct
	if kind == MetricExpenses {
		shown = -pct
	}
	raw := pct
	return model.ChangeDescriptor{
		Text:      fmt.Sprintf("%s %s", FormatPercent(shown), periodQualifier),
		Direction: direction,
		Outcome:   outcomeFor(kind, direction),
		Percent:   &raw,
	}
}

// outcomeFor maps the raw direction of a change to how it should be read.
// This is the only place where expenses are treated differently.
func outcomeFor(kind MetricKind, direction model.ChangeDirection) model.ChangeOutcome {
	switch direction {
	case model.DirectionUp:
		if kind == MetricExpenses {
			return model.OutcomeNegative
		}
		return model.OutcomePositive
	case model.DirectionDown:
		if kind == MetricExpenses {
			return model.OutcomePositive
		}
		return model.OutcomeNegative
	default:
		return model.OutcomeNeutral
	}
}

func directionOf(pct float64) model.ChangeDirection {
	switch r := roundTenth(pct); {
	case r > 0:
		return model.DirectionUp
	case r < 0:
		return model.DirectionDown
	default:
		return model.DirectionFlat
	}
}

func sentinel(text string, direction model.ChangeDirection) model.ChangeDescriptor {
	return model.ChangeDescriptor{
		Text:      text,
		Direction: direction,
		Outcome:   model.OutcomeNeutral,
	}
}

// FormatPercent renders a percentage with an explicit sign and one decimal,
// e.g. "+12.3%" or "-4.0%". Values that round to zero render as "+0.0%".
func FormatPercent(pct float64) string {
	r := roundTenth(pct)
	if r == 0 {
		r = 0 // drop a negative zero
	}
	return fmt.Sprintf("%+.1f%%", r)
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// InvestmentChange reports the average return of the holdings.
//
// The figure is the unweighted mean of every lot's return percentage, not a
// value-weighted portfolio return. Lots with a zero purchase price have no
// defined return; they are left out of the mean and counted in ExcludedLots.
// When no lot contributes, the "no holdings" sentinel is returned instead of 0.
func InvestmentChange(investments []model.Investment) model.InvestmentChange {
	var sum float64
	var counted, excluded int
	for _, inv := range investments {
		pct, ok := ReturnPercentage(inv)
		if !ok {
			excluded++
			continue
		}
		sum += pct
		counted++
	}

	if counted == 0 {
		return model.InvestmentChange{
			ChangeDescriptor: sentinel(TextNoHoldings, model.DirectionNoHolding),
			ExcludedLots:     excluded,
		}
	}

	return model.InvestmentChange{
		ChangeDescriptor: percentDescriptor(sum/float64(counted), MetricInvestment),
		ExcludedLots:     excluded,
	}
}

// MonthlyChanges computes every change indicator of the dashboard cards,
// comparing the current month so far against the previous calendar month.
//
// Net worth is compared against its value at the end of the previous month,
// where holdings are valued at their purchase price since no price history
// is kept.
func MonthlyChanges(transactions []model.Transaction, investments []model.Investment, now time.Time) model.DashboardChanges {
	current := sumFlows(transactions, CurrentMonthPeriod(now))
	previous := sumFlows(transactions, PreviousMonthPeriod(now))

	previousEnd := YearMonthOf(now).Previous().Last()
	previousNetWorth := sumFlows(transactions, Period{To: &previousEnd}).balance().Add(costValue(investments))
	currentNetWorth := sumFlows(transactions, AllTime()).balance().Add(investmentValue(investments))

	return model.DashboardChanges{
		Income:     ComputeChange(f64(current.income), f64(previous.income), MetricIncome),
		Expenses:   ComputeChange(f64(current.expenses), f64(previous.expenses), MetricExpenses),
		Balance:    ComputeChange(f64(current.balance()), f64(previous.balance()), MetricBalance),
		NetWorth:   ComputeChange(f64(currentNetWorth), f64(previousNetWorth), MetricNetWorth),
		Investment: InvestmentChange(investments),
	}
}

func f64(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
