package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"campus-spaces/registrar/internal/common"
	"campus-spaces/registrar/internal/db/repositories"
	gormModels "campus-spaces/registrar/internal/models/gorm"
	"campus-spaces/registrar/internal/models/dtos/responses"
)

// DefaultLeaderboardLimit bounds every leaderboard view
const DefaultLeaderboardLimit = 30

const leaderboardCacheTTL = 60 * time.Second

// LeaderboardService produces the three ranked views of an institution's
// students. Pure read; results are cached briefly.
type LeaderboardService struct {
	memberRepo *repositories.MemberRepository
	cache      *common.CacheService
}

// NewLeaderboardService creates a new leaderboard service
func NewLeaderboardService(memberRepo *repositories.MemberRepository, cache *common.CacheService) *LeaderboardService {
	return &LeaderboardService{
		memberRepo: memberRepo,
		cache:      cache,
	}
}

// Compute returns the academic, sports and combined views for one
// institution, each sorted descending and truncated to limit. Only members
// with the student role are ranked; ties keep insertion order.
func (svc *LeaderboardService) Compute(ctx context.Context, institutionID string, limit int) (*responses.LeaderboardResponse, error) {
	if institutionID == "" {
		return nil, newValidationError("institutionId required")
	}
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}

	cacheKey := fmt.Sprintf("leaderboard:%s:%d", institutionID, limit)
	val, err := svc.cache.GetOrSet(cacheKey, leaderboardCacheTTL, func() (any, error) {
		return svc.compute(ctx, institutionID, limit)
	})
	if err != nil {
		return nil, err
	}

	board, ok := val.(*responses.LeaderboardResponse)
	if !ok {
		return nil, newInternalError(fmt.Errorf("unexpected cache entry type %T", val))
	}
	return board, nil
}

// Refresh recomputes one institution's default view and replaces the
// cached entry. Used by the background cache worker.
func (svc *LeaderboardService) Refresh(ctx context.Context, institutionID string) error {
	board, err := svc.compute(ctx, institutionID, DefaultLeaderboardLimit)
	if err != nil {
		return err
	}
	cacheKey := fmt.Sprintf("leaderboard:%s:%d", institutionID, DefaultLeaderboardLimit)
	svc.cache.Set(cacheKey, board, leaderboardCacheTTL)
	return nil
}

func (svc *LeaderboardService) compute(ctx context.Context, institutionID string, limit int) (*responses.LeaderboardResponse, error) {
	students, err := svc.memberRepo.ListStudentsByInstitution(ctx, institutionID)
	if err != nil {
		return nil, newInternalError(err)
	}

	academic := rankBy(students, limit, func(m *gormModels.Member) int { return m.AcademicScore })
	sports := rankBy(students, limit, func(m *gormModels.Member) int { return m.SportsScore })
	combined := rankBy(students, limit, func(m *gormModels.Member) int { return m.AcademicScore + m.SportsScore })

	return &responses.LeaderboardResponse{
		AcademicTop: academic,
		SportsTop:   sports,
		CombinedTop: combined,
	}, nil
}

// rankBy stable-sorts a copy of members descending by key and truncates to
// limit. The stable sort is what preserves insertion order on ties.
func rankBy(members []gormModels.Member, limit int, key func(*gormModels.Member) int) []responses.LeaderboardEntry {
	ranked := make([]gormModels.Member, len(members))
	copy(ranked, members)

	sort.SliceStable(ranked, func(i, j int) bool {
		return key(&ranked[i]) > key(&ranked[j])
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	entries := make([]responses.LeaderboardEntry, 0, len(ranked))
	for i := range ranked {
		m := &ranked[i]
		entries = append(entries, responses.LeaderboardEntry{
			MemberID:      m.ID,
			Name:          m.Name,
			EmojiTag:      m.EmojiTag,
			AcademicScore: m.AcademicScore,
			SportsScore:   m.SportsScore,
			CombinedScore: m.AcademicScore + m.SportsScore,
			Rank:          i + 1,
		})
	}
	return entries
}
