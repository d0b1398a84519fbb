package aggregate

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
)

var investmentTypeLabels = map[model.InvestmentType]string{
	model.InvestmentStocks: "Acciones",
	model.InvestmentETF:    "ETF",
	model.InvestmentCrypto: "Crypto",
	model.InvestmentBonds:  "Bonos",
	model.InvestmentGold:   "Oro",
}

// InvestmentTypeLabel returns the display label of an investment type.
// Unknown types are returned unchanged.
func InvestmentTypeLabel(t model.InvestmentType) string {
	if label, ok := investmentTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// CurrentValue returns quantity * currentPrice.
func CurrentValue(inv model.Investment) float64 {
	return inv.Quantity * inv.CurrentPrice
}

// UnrealizedReturn returns (currentPrice - purchasePrice) * quantity.
func UnrealizedReturn(inv model.Investment) float64 {
	return (inv.CurrentPrice - inv.PurchasePrice) * inv.Quantity
}

// ReturnPercentage returns the lot's price change relative to its purchase price.
// ok is false when the purchase price is zero or the result is not finite.
func ReturnPercentage(inv model.Investment) (pct float64, ok bool) {
	if inv.PurchasePrice == 0 {
		return 0, false
	}
	pct = (inv.CurrentPrice - inv.PurchasePrice) / inv.PurchasePrice * 100
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0, false
	}
	return pct, true
}

// TotalInvestmentValue returns the current value of all holdings.
func TotalInvestmentValue(investments []model.Investment) float64 {
	return investmentValue(investments).InexactFloat64()
}

func investmentValue(investments []model.Investment) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range investments {
		total = total.Add(decimal.NewFromFloat(inv.Quantity).Mul(decimal.NewFromFloat(inv.CurrentPrice)))
	}
	return total
}

// costValue values every holding at its purchase price.
func costValue(investments []model.Investment) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range investments {
		total = total.Add(decimal.NewFromFloat(inv.Quantity).Mul(decimal.NewFromFloat(inv.PurchasePrice)))
	}
	return total
}

// Overview builds the holdings page summary.
//
// The overall return percentage is the total unrealized return relative to
// the cost base (total value minus total return). It is 0 for an empty
// portfolio or a zero cost base.
func Overview(investments []model.Investment) model.InvestmentOverview {
	positions := make([]model.InvestmentPosition, 0, len(investments))
	totalReturn := decimal.Zero

	for _, inv := range investments {
		ret := decimal.NewFromFloat(inv.CurrentPrice).Sub(decimal.NewFromFloat(inv.PurchasePrice)).Mul(decimal.NewFromFloat(inv.Quantity))
		totalReturn = totalReturn.Add(ret)

		position := model.InvestmentPosition{
			Investment:       inv,
			TypeLabel:        InvestmentTypeLabel(inv.Type),
			CurrentValue:     CurrentValue(inv),
			UnrealizedReturn: UnrealizedReturn(inv),
		}
		if pct, ok := ReturnPercentage(inv); ok {
			position.ReturnPercentage = &pct
		}
		positions = append(positions, position)
	}

	totalValue := investmentValue(investments)
	overall := decimal.Zero
	if costBase := totalValue.Sub(totalReturn); len(investments) > 0 && !costBase.IsZero() {
		overall = totalReturn.Div(costBase).Mul(hundred)
	}

	return model.InvestmentOverview{
		TotalValue:       totalValue.InexactFloat64(),
		TotalReturn:      totalReturn.InexactFloat64(),
		ReturnPercentage: overall.InexactFloat64(),
		Positions:        positions,
	}
}
