package workers

import (
	"context"

	"campus-spaces/registrar/internal/db/repositories"
	"campus-spaces/registrar/internal/services"
)

type WorkersContainer struct {
	LeaderboardRefresher *LeaderboardCacheWorker
}

// InitWorkers starts the background workers
func InitWorkers(
	ctx context.Context,
	institutionRepo *repositories.InstitutionRepository,
	leaderboardSvc *services.LeaderboardService,
) *WorkersContainer {
	refresher := NewLeaderboardCacheWorker(institutionRepo, leaderboardSvc)

	go refresher.Start(ctx)

	return &WorkersContainer{
		LeaderboardRefresher: refresher,
	}
}
