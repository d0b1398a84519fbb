package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/request"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/response"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/service"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/validation"
)

// TransactionHandler handles HTTP requests for transaction endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the transactionService.
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler with the provided service dependency.
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// Transactions handles GET requests listing transactions, newest first.
// Every query parameter is optional and narrows the result.
//
// Endpoint: GET /api/transaction
// Query Parameters: type, category, date_from, date_to, amount_min, amount_max, search
// Response: 200 OK with array of Transaction
// Error: 400 Bad Request if a filter parameter is malformed
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters, err := request.ParseTransactionFilters(request.TransactionFilterParams{
		Type:      q.Get("type"),
		Category:  q.Get("category"),
		DateFrom:  q.Get("date_from"),
		DateTo:    q.Get("date_to"),
		AmountMin: q.Get("amount_min"),
		AmountMax: q.Get("amount_max"),
		Search:    q.Get("search"),
	})
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidFilter.Error(), err.Error())
		return
	}

	transactions, err := h.transactionService.FilterTransactions(r.Context(), filters)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransactions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transactions)
}

// Categories handles GET requests for the distinct categories in use.
//
// Endpoint: GET /api/transaction/categories
// Response: 200 OK with array of category names in first-seen order
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.transactionService.GetCategories(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransactions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, categories)
}

// GetTransaction handles GET requests to retrieve a single transaction by ID.
//
// Endpoint: GET /api/transaction/{uuid}
// Response: 200 OK with Transaction
// Error: 400 Bad Request if transaction ID is invalid (validated by middleware)
// Error: 404 Not Found if transaction not found
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "uuid")

	transaction, err := h.transactionService.GetTransaction(r.Context(), transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTransactionNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransaction.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transaction)
}

// CreateTransaction handles POST requests to create a new transaction.
// The amount is stored with the sign implied by the type.
//
// Endpoint: POST /api/transaction
// Request Body: CreateTransactionRequest (amount, type, category, description, date, tags)
// Response: 201 Created with Transaction
// Error: 400 Bad Request if validation fails, the body is invalid or the date is in the future
// Error: 500 Internal Server Error if creation fails
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateTransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateTransaction(req); err != nil {
		respondValidation(w, err)
		return
	}

	transaction, err := h.transactionService.CreateTransaction(r.Context(), req)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToCreateTransaction)
		return
	}

	response.RespondJSON(w, http.StatusCreated, transaction)
}

// UpdateTransaction handles PUT requests to update an existing transaction.
//
// Endpoint: PUT /api/transaction/{uuid}
// Request Body: UpdateTransactionRequest (all fields optional)
// Response: 200 OK with updated Transaction
// Error: 400 Bad Request if transaction ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if transaction not found
// Error: 500 Internal Server Error if update fails
func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateTransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateTransaction(req); err != nil {
		respondValidation(w, err)
		return
	}

	transaction, err := h.transactionService.UpdateTransaction(r.Context(), transactionID, req)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToUpdateTransaction)
		return
	}

	response.RespondJSON(w, http.StatusOK, transaction)
}

// DeleteTransaction handles DELETE requests to remove a transaction.
//
// Endpoint: DELETE /api/transaction/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if transaction ID is invalid (validated by middleware)
// Error: 404 Not Found if transaction not found
// Error: 500 Internal Server Error if deletion fails
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "uuid")

	if err := h.transactionService.DeleteTransaction(r.Context(), transactionID); err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToDeleteTransaction)
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
