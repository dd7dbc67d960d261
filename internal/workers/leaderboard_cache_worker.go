package workers

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"campus-spaces/registrar/internal/db/repositories"
	"campus-spaces/registrar/internal/logging"
	"campus-spaces/registrar/internal/services"
)

const (
	refreshInterval    = 45 * time.Second
	refreshConcurrency = 4
)

// LeaderboardCacheWorker keeps the leaderboard cache warm so reads rarely
// hit the store. Failures are logged and retried on the next tick.
type LeaderboardCacheWorker struct {
	institutionRepo *repositories.InstitutionRepository
	leaderboardSvc  *services.LeaderboardService
}

// NewLeaderboardCacheWorker creates a new leaderboard cache worker
func NewLeaderboardCacheWorker(
	institutionRepo *repositories.InstitutionRepository,
	leaderboardSvc *services.LeaderboardService,
) *LeaderboardCacheWorker {
	return &LeaderboardCacheWorker{
		institutionRepo: institutionRepo,
		leaderboardSvc:  leaderboardSvc,
	}
}

// Start runs the refresh loop until the context is cancelled
func (w *LeaderboardCacheWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Info("Leaderboard cache worker stopping")
			return
		case <-ticker.C:
			if err := w.refreshAll(ctx); err != nil {
				logging.Warn("Leaderboard cache refresh failed", "error", err.Error())
			}
		}
	}
}

func (w *LeaderboardCacheWorker) refreshAll(ctx context.Context) error {
	ids, err := w.institutionRepo.ListIDs(ctx)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(refreshConcurrency)

	for _, id := range ids {
		institutionID := id
		g.Go(func() error {
			return w.leaderboardSvc.Refresh(gctx, institutionID)
		})
	}

	return g.Wait()
}
