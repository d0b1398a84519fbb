package handlers

import (
	"net/http"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/aggregate"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/request"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/response"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/service"
)

// DashboardHandler serves the derived dashboard views.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Dashboard returns everything the dashboard page renders in one response:
// current month summary, change indicators, charts, holdings and recent transactions.
//
// Endpoint: GET /api/dashboard
// Response: 200 OK with Dashboard
// Error: 500 Internal Server Error if retrieval fails
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetDashboard.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, dashboard)
}

// Summary returns the financial summary of a period. Without parameters the
// period is the current month so far.
//
// Endpoint: GET /api/dashboard/summary
// Query Parameters: from, to (YYYY-MM-DD, both optional and inclusive)
// Response: 200 OK with FinancialSummary
// Error: 400 Bad Request if a date is malformed or from is after to
// Error: 500 Internal Server Error if retrieval fails
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	fromParam, toParam := r.URL.Query().Get("from"), r.URL.Query().Get("to")

	var (
		summary model.FinancialSummary
		err     error
	)
	if fromParam == "" && toParam == "" {
		summary, err = h.dashboardService.GetCurrentSummary(r.Context())
	} else {
		from, to, parseErr := request.ParseDateRange(fromParam, toParam)
		if parseErr != nil {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDateRange.Error(), parseErr.Error())
			return
		}
		summary, err = h.dashboardService.GetSummary(r.Context(), aggregate.Period{From: from, To: to})
	}
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetSummary.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}

// ExpensesByCategory returns the expense chart series.
//
// Endpoint: GET /api/dashboard/categories
// Response: 200 OK with array of CategoryTotal
func (h *DashboardHandler) ExpensesByCategory(w http.ResponseWriter, r *http.Request) {
	categories, err := h.dashboardService.GetExpensesByCategory(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetDashboard.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, categories)
}

// Monthly returns the income/expense series of the most recent months.
//
// Endpoint: GET /api/dashboard/monthly
// Response: 200 OK with array of MonthBucket, oldest first
func (h *DashboardHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	monthly, err := h.dashboardService.GetMonthly(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetDashboard.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, monthly)
}
