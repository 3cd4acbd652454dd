// Package services orchestrates the pure engine over external collaborators:
// it pulls record snapshots, runs projections, and caches results. The
// reactive wiring that decides when to recompute lives outside; this layer
// only answers "recompute from the current snapshot" and "forget cached
// results".
package services

import (
	"context"
	"fmt"
	"time"

	"cashlog/internal/cache"
	"cashlog/internal/config"
	"cashlog/internal/core"
	"cashlog/internal/log"
	"cashlog/internal/projection"
)

// SnapshotProvider supplies read-only snapshots of the stored records. It is
// implemented by the persistence collaborator.
type SnapshotProvider interface {
	Wallets(ctx context.Context) ([]core.Wallet, error)
	Transactions(ctx context.Context) ([]core.Transaction, error)
	Bills(ctx context.Context) ([]core.Bill, error)
}

// ProjectionService recomputes monthly cash flows from snapshots on demand.
type ProjectionService struct {
	provider  SnapshotProvider
	projector *projection.Projector
	results   *cache.LRU[projection.MonthlyCashFlow]
	logger    *log.Logger
	now       func() time.Time
}

// NewProjectionService creates a service around the given provider and
// projector, caching up to cacheSize month results for cacheTTL.
func NewProjectionService(provider SnapshotProvider, projector *projection.Projector, cacheSize int, cacheTTL time.Duration) *ProjectionService {
	return &ProjectionService{
		provider:  provider,
		projector: projector,
		results:   cache.New[projection.MonthlyCashFlow](cacheSize, cacheTTL),
		logger:    log.New(log.DefaultConfig()).WithComponent("projection"),
		now:       time.Now,
	}
}

// NewProjectionServiceFromConfig builds the service from environment-driven
// configuration: the projector threshold, the cache bounds, and the log
// level all come from cfg.
func NewProjectionServiceFromConfig(provider SnapshotProvider, cfg *config.Config) *ProjectionService {
	s := NewProjectionService(provider, projection.New(cfg.CriticalThreshold), cfg.CacheSize, cfg.CacheTTL)
	s.logger = log.New(log.Config{
		Level:     log.ParseLevel(cfg.LogLevel),
		Component: "projection",
	})
	return s
}

// MonthlyCashFlow returns the projection for the month containing month,
// serving a cached result when one is present.
func (s *ProjectionService) MonthlyCashFlow(ctx context.Context, month core.Date) (projection.MonthlyCashFlow, error) {
	key := month.MonthStart().Format("2006-01")
	if cached, ok := s.results.Get(key); ok {
		s.logger.DebugContext(ctx, "Serving cached cash flow projection", "month", key)
		return cached, nil
	}
	return s.Recompute(ctx, month)
}

// Recompute pulls a fresh snapshot, projects the month containing month, and
// replaces any cached result for it.
func (s *ProjectionService) Recompute(ctx context.Context, month core.Date) (projection.MonthlyCashFlow, error) {
	wallets, err := s.provider.Wallets(ctx)
	if err != nil {
		return projection.MonthlyCashFlow{}, fmt.Errorf("load wallets: %w", err)
	}
	transactions, err := s.provider.Transactions(ctx)
	if err != nil {
		return projection.MonthlyCashFlow{}, fmt.Errorf("load transactions: %w", err)
	}
	bills, err := s.provider.Bills(ctx)
	if err != nil {
		return projection.MonthlyCashFlow{}, fmt.Errorf("load bills: %w", err)
	}

	today := core.DateOf(s.now())
	flow := s.projector.MonthlyCashFlow(month, today, transactions, bills, wallets)

	key := flow.Month.Format("2006-01")
	s.results.Set(key, flow)

	s.logger.InfoContext(ctx, "Recomputed cash flow projection",
		"month", key,
		"days", len(flow.DailyBalances),
		"total_income", flow.TotalIncome.String(),
		"total_expenses", flow.TotalExpenses.String(),
		"tightest_day", flow.TightestDay.DayNumber)

	return flow, nil
}

// Invalidate drops every cached result. The external change-notification
// mechanism calls this whenever the underlying collections change.
func (s *ProjectionService) Invalidate() {
	s.results.Purge()
}
