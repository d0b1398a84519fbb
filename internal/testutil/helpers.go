package testutil

import (
	"database/sql"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/repository"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/service"
)

// FixedNow is the reference instant service tests run against: mid-September 2025,
// the last month covered by the sample data.
var FixedNow = time.Date(2025, time.September, 15, 12, 0, 0, 0, time.UTC)

// FixedClock returns a clock that always reports FixedNow.
func FixedClock() func() time.Time {
	return func() time.Time { return FixedNow }
}

// NewTestDashboardService creates a DashboardService with caching enabled and a fixed clock.
func NewTestDashboardService(t *testing.T, db *sql.DB) *service.DashboardService {
	t.Helper()

	return service.NewDashboardService(
		repository.NewTransactionRepository(db),
		repository.NewInvestmentRepository(db),
		time.Minute,
	).WithClock(FixedClock())
}

// NewTestTransactionService creates a TransactionService with a fixed clock.
// invalidator may be nil.
func NewTestTransactionService(t *testing.T, db *sql.DB, invalidator service.Invalidator) *service.TransactionService {
	t.Helper()

	return service.NewTransactionService(
		repository.NewTransactionRepository(db),
		invalidator,
	).WithClock(FixedClock())
}

// NewTestInvestmentService creates an InvestmentService. invalidator may be nil.
func NewTestInvestmentService(t *testing.T, db *sql.DB, invalidator service.Invalidator) *service.InvestmentService {
	t.Helper()

	return service.NewInvestmentService(
		repository.NewInvestmentRepository(db),
		invalidator,
	)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db, map[string]bool{"dashboard_cache": true})
}

// InvalidationCounter counts Invalidate calls.
type InvalidationCounter struct {
	Calls int
}

// Invalidate implements service.Invalidator.
func (c *InvalidationCounter) Invalidate() {
	c.Calls++
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeDescription generates a unique description for testing.
//
// Example usage:
//
//	desc := testutil.MakeDescription("Groceries")
//	// Returns: "Groceries ABC123"
func MakeDescription(base string) string {
	if base == "" {
		base = "Transaction"
	}
	return base + " " + randomAlphanumeric(6)
}

// Date returns UTC midnight of the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Today returns UTC midnight of FixedNow's day.
func Today() time.Time {
	y, m, d := FixedNow.Date()
	return Date(y, m, d)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
