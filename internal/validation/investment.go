package validation

import (
	"fmt"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/request"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
)

// ValidInvestmentType contains the allowed asset classes.
var ValidInvestmentType = map[model.InvestmentType]bool{
	model.InvestmentStocks: true,
	model.InvestmentETF:    true,
	model.InvestmentCrypto: true,
	model.InvestmentBonds:  true,
	model.InvestmentGold:   true,
}

// ValidateCreateInvestment validates an investment lot creation request.
//
// Required fields:
//   - name: Must not be blank
//   - type: Must be one of: stocks, etf, crypto, bonds, gold
//   - quantity: Must be positive
//   - purchasePrice, currentPrice, amount: Must be zero or positive
//   - date: Must be in YYYY-MM-DD format
//
// A zero purchase price is accepted; such lots have no defined return percentage.
func ValidateCreateInvestment(req request.CreateInvestmentRequest) error {
	errors := make(map[string]string)

	validateRequired(errors, "name", req.Name)
	validateInvestmentType(errors, req.Type)
	validateNonNegative(errors, "amount", req.Amount)
	validateNonNegative(errors, "purchasePrice", req.PurchasePrice)
	validateNonNegative(errors, "currentPrice", req.CurrentPrice)
	validateQuantity(errors, req.Quantity)
	validateDate(errors, "date", req.Date)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateInvestment validates an investment lot update request.
// All fields are optional, but if provided, they must meet the same constraints as create.
//
//nolint:gocyclo // One branch per optional field
func ValidateUpdateInvestment(req request.UpdateInvestmentRequest) error {
	errors := make(map[string]string)

	if req.Name != nil {
		validateRequired(errors, "name", *req.Name)
	}
	if req.Type != nil {
		validateInvestmentType(errors, *req.Type)
	}
	if req.Amount != nil {
		validateNonNegative(errors, "amount", *req.Amount)
	}
	if req.PurchasePrice != nil {
		validateNonNegative(errors, "purchasePrice", *req.PurchasePrice)
	}
	if req.CurrentPrice != nil {
		validateNonNegative(errors, "currentPrice", *req.CurrentPrice)
	}
	if req.Quantity != nil {
		validateQuantity(errors, *req.Quantity)
	}
	if req.Date != nil {
		validateDate(errors, "date", *req.Date)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

func validateInvestmentType(errors map[string]string, t string) {
	if t == "" {
		errors["type"] = "type is required"
	} else if !ValidInvestmentType[model.InvestmentType(t)] {
		errors["type"] = fmt.Sprintf("invalid type: %s", t)
	}
}

func validateNonNegative(errors map[string]string, field string, v float64) {
	if !finite(v) || v < 0 {
		errors[field] = field + " must be zero or positive"
	}
}

func validateQuantity(errors map[string]string, q float64) {
	if !finite(q) || q <= 0 {
		errors["quantity"] = "quantity must be positive"
	}
}
