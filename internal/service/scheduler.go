package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// MonthRolloverSpec fires at midnight on the first day of every month.
const MonthRolloverSpec = "0 0 1 * *"

// Scheduler runs the periodic jobs of the dashboard.
type Scheduler struct {
	cron      *cron.Cron
	dashboard *DashboardService
	logger    *slog.Logger
}

// NewScheduler creates a Scheduler evaluating its schedules in UTC,
// the zone every stored date is expressed in.
func NewScheduler(dashboard *DashboardService, logger *slog.Logger) *Scheduler {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError))
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		dashboard: dashboard,
		logger:    logger,
	}
}

// Start registers the jobs and starts the scheduler in its own goroutine.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(MonthRolloverSpec, func() {
		s.RunMonthRollover(context.Background())
	}); err != nil {
		return fmt.Errorf("failed to schedule month rollover: %w", err)
	}
	s.cron.Start()
	return nil
}

// Stop stops the scheduler. The returned context is done once running jobs have finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// RunMonthRollover flushes cached dashboards, since the current month window
// has moved, and logs the closing summary of the month that just ended.
func (s *Scheduler) RunMonthRollover(ctx context.Context) {
	s.dashboard.Invalidate()

	month, summary, err := s.dashboard.GetClosedMonthSummary(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "month rollover failed", "error", err)
		return
	}

	s.logger.InfoContext(ctx, "month closed",
		"month", month.Key(),
		"income", summary.TotalIncome,
		"expenses", summary.TotalExpenses,
		"savings_rate", summary.SavingsRate,
		"net_worth", summary.NetWorth,
	)
}
