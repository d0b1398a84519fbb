package apperrors

import "errors"

// Domain entity errors represent missing entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvestmentNotFound indicates that an investment with the given ID does not exist.
	ErrInvestmentNotFound = errors.New("investment not found")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrInvalidDateRange indicates that the provided date range is invalid
	// (e.g., start date is after end date).
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrFutureDate indicates that a transaction was dated after today.
	ErrFutureDate = errors.New("date cannot be in the future")

	// ErrInvalidFilter indicates that a transaction filter query parameter could not be parsed.
	ErrInvalidFilter = errors.New("invalid filter")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
var (
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToRetrieveTransaction  = errors.New("failed to retrieve transaction")
	ErrFailedToCreateTransaction    = errors.New("failed to create transaction")
	ErrFailedToUpdateTransaction    = errors.New("failed to update transaction")
	ErrFailedToDeleteTransaction    = errors.New("failed to delete transaction")

	ErrFailedToRetrieveInvestments = errors.New("failed to retrieve investments")
	ErrFailedToRetrieveInvestment  = errors.New("failed to retrieve investment")
	ErrFailedToCreateInvestment    = errors.New("failed to create investment")
	ErrFailedToUpdateInvestment    = errors.New("failed to update investment")
	ErrFailedToDeleteInvestment    = errors.New("failed to delete investment")

	ErrFailedToGetDashboard = errors.New("failed to get dashboard")
	ErrFailedToGetSummary   = errors.New("failed to get financial summary")

	ErrFailedToGetVersionInfo = errors.New("failed to get version information")
)
