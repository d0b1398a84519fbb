package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/aggregate"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/repository"
)

// RecentTransactionLimit is the number of transactions shown on the dashboard.
const RecentTransactionLimit = 5

// DashboardService derives every dashboard view from the current store snapshot.
//
// Computed dashboards are cached under a key built from a hash of both
// snapshots and the current month, so a hit is only possible when the result
// would be identical. A cache TTL of zero disables caching.
type DashboardService struct {
	transactionRepo *repository.TransactionRepository
	investmentRepo  *repository.InvestmentRepository
	cache           *cache.Cache
	now             func() time.Time
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	transactionRepo *repository.TransactionRepository,
	investmentRepo *repository.InvestmentRepository,
	cacheTTL time.Duration,
) *DashboardService {
	s := &DashboardService{
		transactionRepo: transactionRepo,
		investmentRepo:  investmentRepo,
		now:             time.Now,
	}
	if cacheTTL > 0 {
		s.cache = cache.New(cacheTTL, 2*cacheTTL)
	}
	return s
}

// WithClock replaces the time source that decides which month is "current".
func (s *DashboardService) WithClock(now func() time.Time) *DashboardService {
	s.now = now
	return s
}

// Invalidate drops every cached dashboard.
func (s *DashboardService) Invalidate() {
	if s.cache != nil {
		s.cache.Flush()
	}
}

// loadSnapshots reads both stores concurrently.
func (s *DashboardService) loadSnapshots(ctx context.Context) ([]model.Transaction, []model.Investment, error) {
	var (
		transactions []model.Transaction
		investments  []model.Investment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = s.transactionRepo.GetTransactions(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		investments, err = s.investmentRepo.GetInvestments(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return transactions, investments, nil
}

// GetDashboard returns the composite dashboard for the month containing now.
func (s *DashboardService) GetDashboard(ctx context.Context) (model.Dashboard, error) {
	now := s.now()

	transactions, investments, err := s.loadSnapshots(ctx)
	if err != nil {
		return model.Dashboard{}, err
	}

	var key string
	if s.cache != nil {
		key, err = snapshotKey(transactions, investments, now)
		if err != nil {
			return model.Dashboard{}, err
		}
		if cached, found := s.cache.Get(key); found {
			slog.DebugContext(ctx, "dashboard cache hit", "key", key)
			return cached.(model.Dashboard), nil
		}
	}

	dashboard := buildDashboard(transactions, investments, now)

	if s.cache != nil {
		s.cache.Set(key, dashboard, cache.DefaultExpiration)
	}
	return dashboard, nil
}

func buildDashboard(transactions []model.Transaction, investments []model.Investment, now time.Time) model.Dashboard {
	summary := aggregate.ComputeSummary(transactions, investments, aggregate.CurrentMonthPeriod(now))

	recent := transactions
	if len(recent) > RecentTransactionLimit {
		recent = recent[:RecentTransactionLimit]
	}

	return model.Dashboard{
		Summary:            summary,
		MonthlyBalance:     summary.TotalIncome - summary.TotalExpenses,
		Changes:            aggregate.MonthlyChanges(transactions, investments, now),
		ExpensesByCategory: aggregate.ByCategory(transactions),
		Monthly:            aggregate.ByMonth(transactions, now),
		Investments:        aggregate.Overview(investments),
		RecentTransactions: append([]model.Transaction{}, recent...),
	}
}

// GetSummary computes the financial summary for an explicit period.
func (s *DashboardService) GetSummary(ctx context.Context, period aggregate.Period) (model.FinancialSummary, error) {
	transactions, investments, err := s.loadSnapshots(ctx)
	if err != nil {
		return model.FinancialSummary{}, err
	}
	return aggregate.ComputeSummary(transactions, investments, period), nil
}

// GetCurrentSummary computes the summary of the month containing now.
func (s *DashboardService) GetCurrentSummary(ctx context.Context) (model.FinancialSummary, error) {
	return s.GetSummary(ctx, aggregate.CurrentMonthPeriod(s.now()))
}

// GetExpensesByCategory returns the all-time expense totals per category.
func (s *DashboardService) GetExpensesByCategory(ctx context.Context) ([]model.CategoryTotal, error) {
	transactions, err := s.transactionRepo.GetTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.ByCategory(transactions), nil
}

// GetMonthly returns the income/expense series of the most recent months.
func (s *DashboardService) GetMonthly(ctx context.Context) ([]model.MonthBucket, error) {
	transactions, err := s.transactionRepo.GetTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.ByMonth(transactions, s.now()), nil
}

// GetClosedMonthSummary returns the summary of the month before now together with that month.
func (s *DashboardService) GetClosedMonthSummary(ctx context.Context) (aggregate.YearMonth, model.FinancialSummary, error) {
	now := s.now()
	month := aggregate.YearMonthOf(now).Previous()

	summary, err := s.GetSummary(ctx, aggregate.MonthPeriod(month))
	if err != nil {
		return month, model.FinancialSummary{}, err
	}
	return month, summary, nil
}

// snapshotKey hashes both snapshots and the current month into a cache key.
func snapshotKey(transactions []model.Transaction, investments []model.Investment, now time.Time) (string, error) {
	h := sha256.New()
	enc := json.NewEncoder(h)
	if err := enc.Encode(transactions); err != nil {
		return "", fmt.Errorf("failed to hash transactions: %w", err)
	}
	if err := enc.Encode(investments); err != nil {
		return "", fmt.Errorf("failed to hash investments: %w", err)
	}
	return aggregate.YearMonthOf(now).Key() + ":" + hex.EncodeToString(h.Sum(nil)), nil
}
