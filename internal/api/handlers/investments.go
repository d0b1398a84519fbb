package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/request"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/response"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/service"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/validation"
)

// InvestmentHandler handles HTTP requests for investment lot endpoints.
type InvestmentHandler struct {
	investmentService *service.InvestmentService
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentService *service.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{
		investmentService: investmentService,
	}
}

// Investments lists every lot, newest first.
//
// Endpoint: GET /api/investment
// Response: 200 OK with array of Investment
// Error: 500 Internal Server Error if retrieval fails
func (h *InvestmentHandler) Investments(w http.ResponseWriter, r *http.Request) {
	investments, err := h.investmentService.GetInvestments(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveInvestments.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, investments)
}

// Overview returns every lot with its valuation plus portfolio totals.
//
// Endpoint: GET /api/investment/overview
// Response: 200 OK with InvestmentOverview
// Error: 500 Internal Server Error if retrieval fails
func (h *InvestmentHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.investmentService.GetOverview(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveInvestments.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, overview)
}

// GetInvestment returns a single lot.
//
// Endpoint: GET /api/investment/{uuid}
// Response: 200 OK with Investment
// Error: 404 Not Found if the lot does not exist
func (h *InvestmentHandler) GetInvestment(w http.ResponseWriter, r *http.Request) {
	investment, err := h.investmentService.GetInvestment(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveInvestment)
		return
	}

	response.RespondJSON(w, http.StatusOK, investment)
}

// CreateInvestment records a new lot.
//
// Endpoint: POST /api/investment
// Request Body: CreateInvestmentRequest
// Response: 201 Created with Investment
// Error: 400 Bad Request if validation fails or request body is invalid
func (h *InvestmentHandler) CreateInvestment(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateInvestmentRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateInvestment(req); err != nil {
		respondValidation(w, err)
		return
	}

	investment, err := h.investmentService.CreateInvestment(r.Context(), req)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToCreateInvestment)
		return
	}

	response.RespondJSON(w, http.StatusCreated, investment)
}

// UpdateInvestment changes the provided fields of a lot, typically its current price.
//
// Endpoint: PUT /api/investment/{uuid}
// Request Body: UpdateInvestmentRequest (all fields optional)
// Response: 200 OK with updated Investment
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if the lot does not exist
func (h *InvestmentHandler) UpdateInvestment(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateInvestmentRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateInvestment(req); err != nil {
		respondValidation(w, err)
		return
	}

	investment, err := h.investmentService.UpdateInvestment(r.Context(), chi.URLParam(r, "uuid"), req)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToUpdateInvestment)
		return
	}

	response.RespondJSON(w, http.StatusOK, investment)
}

// DeleteInvestment removes a lot.
//
// Endpoint: DELETE /api/investment/{uuid}
// Response: 204 No Content
// Error: 404 Not Found if the lot does not exist
func (h *InvestmentHandler) DeleteInvestment(w http.ResponseWriter, r *http.Request) {
	if err := h.investmentService.DeleteInvestment(r.Context(), chi.URLParam(r, "uuid")); err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToDeleteInvestment)
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
