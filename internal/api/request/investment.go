package request

type CreateInvestmentRequest struct {
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Amount        float64 `json:"amount"`
	PurchasePrice float64 `json:"purchasePrice"`
	CurrentPrice  float64 `json:"currentPrice"`
	Quantity      float64 `json:"quantity"`
	Date          string  `json:"date"`
}

type UpdateInvestmentRequest struct {
	Name          *string  `json:"name,omitempty"`
	Type          *string  `json:"type,omitempty"`
	Amount        *float64 `json:"amount,omitempty"`
	PurchasePrice *float64 `json:"purchasePrice,omitempty"`
	CurrentPrice  *float64 `json:"currentPrice,omitempty"`
	Quantity      *float64 `json:"quantity,omitempty"`
	Date          *string  `json:"date,omitempty"`
}
