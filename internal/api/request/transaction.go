package request

// CreateTransactionRequest is the body of POST /api/transaction.
// Amount may be given with either sign; the service stores it with the sign of Type.
type CreateTransactionRequest struct {
	Amount      float64  `json:"amount"`
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Tags        []string `json:"tags,omitempty"`
}

// UpdateTransactionRequest is the body of PUT /api/transaction/{uuid}.
// Omitted fields keep their stored value.
type UpdateTransactionRequest struct {
	Amount      *float64  `json:"amount,omitempty"`
	Type        *string   `json:"type,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Description *string   `json:"description,omitempty"`
	Date        *string   `json:"date,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
}
