package api

import (
	"os"

	"gorm.io/gorm"

	"campus-spaces/registrar/internal/common"
	"campus-spaces/registrar/internal/db/repositories"
	"campus-spaces/registrar/internal/metrics"
	"campus-spaces/registrar/internal/services"
)

type Repositories struct {
	Institution *repositories.InstitutionRepository
	Member      *repositories.MemberRepository
	Approval    *repositories.ApprovalRepository
	Event       *repositories.EventRepository
}

type Services struct {
	Cache        *common.CacheService
	Session      *common.SessionService
	Token        *common.TokenService
	Registration *services.RegistrationService
	Approval     *services.ApprovalService
	Leaderboard  *services.LeaderboardService
	Member       *services.MemberService
	Club         *services.ClubService
	Auth         *services.AuthService
	Directory    *services.DirectoryService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
}

// InitDependencies wires repositories and services onto the GORM handle
func InitDependencies(gormDB *gorm.DB, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	repos := &Repositories{
		Institution: repositories.NewInstitutionRepository(gormDB),
		Member:      repositories.NewMemberRepository(gormDB),
		Approval:    repositories.NewApprovalRepository(gormDB),
		Event:       repositories.NewEventRepository(gormDB),
	}

	cacheSvc := common.NewCacheService(60, 600)
	cacheSvc.InstrumentWith(
		metricsReg.CacheHitsTotal.WithLabelValues("leaderboard"),
		metricsReg.CacheMissesTotal.WithLabelValues("leaderboard"),
	)

	redisClient := common.NewRedisClient()
	sessionSvc := common.NewSessionService(redisClient)

	secret := os.Getenv("TOKEN_SECRET")
	if secret == "" {
		secret = "dev-secret-do-not-use"
	}
	tokenSvc := common.NewTokenService([]byte(secret))

	svcs := &Services{
		Cache:        cacheSvc,
		Session:      sessionSvc,
		Token:        tokenSvc,
		Registration: services.NewRegistrationService(repos.Institution, repos.Member, repos.Approval),
		Approval:     services.NewApprovalService(repos.Institution, repos.Member, repos.Approval),
		Leaderboard:  services.NewLeaderboardService(repos.Member, cacheSvc),
		Member:       services.NewMemberService(repos.Member),
		Club:         services.NewClubService(repos.Member),
		Auth:         services.NewAuthService(repos.Member, sessionSvc, tokenSvc),
		Directory:    services.NewDirectoryService(repos.Institution, repos.Event),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
	}, nil
}
