package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/response"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/validation"
)

// maxBodyBytes bounds request bodies; every payload of this API is a single small record.
const maxBodyBytes = 1 << 20

// parseJSON decodes the request body into T, rejecting unknown fields and trailing data.
func parseJSON[T any](r *http.Request) (T, error) {
	var v T
	if r.Body == nil {
		return v, errors.New("request body is empty")
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return v, fmt.Errorf("invalid JSON: %w", err)
	}
	if dec.More() {
		return v, errors.New("request body must contain a single JSON object")
	}
	return v, nil
}

// respondValidation sends 400 with the per-field messages of a validation.Error,
// or the plain error text for any other error.
func respondValidation(w http.ResponseWriter, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		response.RespondError(w, http.StatusBadRequest, "validation failed", verr.Fields)
		return
	}
	response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
}

// respondServiceError maps a service error onto a status code.
// fallback names the failed operation for unexpected errors.
func respondServiceError(w http.ResponseWriter, err error, fallback error) {
	switch {
	case errors.Is(err, apperrors.ErrTransactionNotFound):
		response.RespondError(w, http.StatusNotFound, apperrors.ErrTransactionNotFound.Error(), err.Error())
	case errors.Is(err, apperrors.ErrInvestmentNotFound):
		response.RespondError(w, http.StatusNotFound, apperrors.ErrInvestmentNotFound.Error(), err.Error())
	case errors.Is(err, apperrors.ErrFutureDate):
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrFutureDate.Error(), err.Error())
	default:
		response.RespondError(w, http.StatusInternalServerError, fallback.Error(), err.Error())
	}
}
