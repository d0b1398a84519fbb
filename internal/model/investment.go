package model

import "time"

// InvestmentType is the asset class of a holding lot.
type InvestmentType string

const (
	InvestmentStocks InvestmentType = "stocks"
	InvestmentETF    InvestmentType = "etf"
	InvestmentCrypto InvestmentType = "crypto"
	InvestmentBonds  InvestmentType = "bonds"
	InvestmentGold   InvestmentType = "gold"
)

// Investment represents a single holding lot.
// Amount is the capital originally committed and is informational only;
// valuations are always derived from Quantity and the unit prices.
type Investment struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Type          InvestmentType `json:"type"`
	Amount        float64        `json:"amount"`
	PurchasePrice float64        `json:"purchasePrice"`
	CurrentPrice  float64        `json:"currentPrice"`
	Quantity      float64        `json:"quantity"`
	Date          time.Time      `json:"date"`
}

// InvestmentPosition is a lot enriched with its derived valuation.
// ReturnPercentage is nil when the purchase price is zero.
type InvestmentPosition struct {
	Investment
	TypeLabel        string   `json:"typeLabel"`
	CurrentValue     float64  `json:"currentValue"`
	UnrealizedReturn float64  `json:"unrealizedReturn"`
	ReturnPercentage *float64 `json:"returnPercentage"`
}

// InvestmentOverview summarises the whole portfolio for the holdings page.
type InvestmentOverview struct {
	TotalValue       float64              `json:"totalValue"`       // Σ quantity * currentPrice
	TotalReturn      float64              `json:"totalReturn"`      // Σ unrealized return
	ReturnPercentage float64              `json:"returnPercentage"` // totalReturn relative to cost
	Positions        []InvestmentPosition `json:"positions"`
}
