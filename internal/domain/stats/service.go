package stats

import (
	"context"
	"sync"

	"github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/domain/refresh"
	"github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/domain/sales"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	repo    Repository
	tracker *refresh.Tracker

	mu     sync.Mutex
	cached *cachedOverview
}

type cachedOverview struct {
	versions refresh.Versions
	overview Overview
}

func NewService(repo Repository, tracker *refresh.Tracker) *Service {
	return &Service{repo: repo, tracker: tracker}
}

// Overview computes the four dashboard aggregates. The reads are issued
// concurrently and assembled only after all of them settle; partial results
// never surface. Results are cached against the refresh counters captured
// before the fan-out, so the cache is reused until either record table
// changes. A result whose counters were superseded while the queries ran is
// still returned to its caller but is not cached.
func (s *Service) Overview(ctx context.Context) (Overview, error) {
	versions := s.tracker.Snapshot()

	s.mu.Lock()
	if s.cached != nil && s.cached.versions == versions {
		overview := s.cached.overview
		s.mu.Unlock()
		return overview, nil
	}
	s.mu.Unlock()

	var (
		productionCount int64
		salesCount      int64
		totalRevenue    float64
		pendingPayments float64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		productionCount, err = s.repo.CountProduction(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		salesCount, err = s.repo.CountSales(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		totalRevenue, err = s.repo.SumSalesTotals(gctx, nil)
		return err
	})
	g.Go(func() error {
		var err error
		pendingPayments, err = s.repo.SumSalesTotals(gctx, []string{sales.PaymentPending, sales.PaymentPartial})
		return err
	})
	if err := g.Wait(); err != nil {
		return Overview{}, err
	}

	overview := Overview{
		TotalProductionCount: productionCount,
		TotalSalesCount:      salesCount,
		TotalRevenue:         totalRevenue,
		PendingPayments:      pendingPayments,
	}

	if s.tracker.Snapshot() == versions {
		s.mu.Lock()
		s.cached = &cachedOverview{versions: versions, overview: overview}
		s.mu.Unlock()
	}

	return overview, nil
}
