package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/handlers"
	custommiddleware "github.com/ndewijer/Finance-Dashboard-Backend/internal/api/middleware"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/config"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/service"
)

// Services groups the services the HTTP layer depends on.
type Services struct {
	System      *service.SystemService
	Transaction *service.TransactionService
	Investment  *service.InvestmentService
	Dashboard   *service.DashboardService
}

// NewRouter creates and configures the HTTP router
func NewRouter(services Services, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(logger))
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(services.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/transaction", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(services.Transaction)
			r.Get("/", transactionHandler.Transactions)
			r.Post("/", transactionHandler.CreateTransaction)
			r.Get("/categories", transactionHandler.Categories)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", transactionHandler.GetTransaction)
				r.Put("/", transactionHandler.UpdateTransaction)
				r.Delete("/", transactionHandler.DeleteTransaction)
			})
		})

		r.Route("/investment", func(r chi.Router) {
			investmentHandler := handlers.NewInvestmentHandler(services.Investment)
			r.Get("/", investmentHandler.Investments)
			r.Post("/", investmentHandler.CreateInvestment)
			r.Get("/overview", investmentHandler.Overview)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", investmentHandler.GetInvestment)
				r.Put("/", investmentHandler.UpdateInvestment)
				r.Delete("/", investmentHandler.DeleteInvestment)
			})
		})

		r.Route("/dashboard", func(r chi.Router) {
			dashboardHandler := handlers.NewDashboardHandler(services.Dashboard)
			r.Get("/", dashboardHandler.Dashboard)
			r.Get("/summary", dashboardHandler.Summary)
			r.Get("/categories", dashboardHandler.ExpensesByCategory)
			r.Get("/monthly", dashboardHandler.Monthly)
		})
	})

	return r
}
