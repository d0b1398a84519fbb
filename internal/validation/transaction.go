package validation

import (
	"fmt"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/request"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
)

// ValidTransactionType contains the allowed transaction type values.
var ValidTransactionType = map[model.TransactionType]bool{
	model.TransactionIncome: true, model.TransactionExpense: true,
}

// ValidateCreateTransaction validates a transaction creation request.
//
// Required fields:
//   - amount: Must be non-zero and finite (the sign is normalised by type)
//   - type: Must be one of: income, expense
//   - category: Must not be blank
//   - date: Must be in YYYY-MM-DD format
//
// Description and tags are optional.
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	errors := make(map[string]string)

	validateAmount(errors, req.Amount)
	validateTransactionType(errors, req.Type)
	validateRequired(errors, "category", req.Category)
	validateDate(errors, "date", req.Date)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateTransaction validates a transaction update request.
// All fields are optional, but if provided, they must meet the same constraints as create.
func ValidateUpdateTransaction(req request.UpdateTransactionRequest) error {
	errors := make(map[string]string)

	if req.Amount != nil {
		validateAmount(errors, *req.Amount)
	}
	if req.Type != nil {
		validateTransactionType(errors, *req.Type)
	}
	if req.Category != nil {
		validateRequired(errors, "category", *req.Category)
	}
	if req.Date != nil {
		validateDate(errors, "date", *req.Date)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

func validateAmount(errors map[string]string, amount float64) {
	switch {
	case !finite(amount):
		errors["amount"] = "amount must be a finite number"
	case amount == 0:
		errors["amount"] = "amount must be non-zero"
	}
}

func validateTransactionType(errors map[string]string, t string) {
	if t == "" {
		errors["type"] = "type is required"
	} else if !ValidTransactionType[model.TransactionType(t)] {
		errors["type"] = fmt.Sprintf("invalid type: %s", t)
	}
}
