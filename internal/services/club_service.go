package services

import (
	"context"
	"strings"

	"campus-spaces/registrar/internal/constants"
	"campus-spaces/registrar/internal/db/repositories"
	"campus-spaces/registrar/internal/models/dtos/responses"
)

// ClubService answers club access checks. Club IDs embed the owning
// institution: "institutionId::clubName".
type ClubService struct {
	memberRepo *repositories.MemberRepository
}

// NewClubService creates a new club service
func NewClubService(memberRepo *repositories.MemberRepository) *ClubService {
	return &ClubService{memberRepo: memberRepo}
}

// HasAccess reports whether a member can enter a club: the member's
// institution must match the club ID prefix and a membership row must
// exist. A mismatch is a false answer, never an error.
func (svc *ClubService) HasAccess(ctx context.Context, memberID, clubID string) (*responses.ClubAccessResponse, error) {
	if memberID == "" || clubID == "" {
		return nil, newValidationError(constants.MsgMissingFields)
	}

	member, err := svc.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, newInternalError(err)
	}
	if member == nil {
		return nil, newNotFoundError(constants.MsgMemberNotFound)
	}

	institutionID, _, found := strings.Cut(clubID, "::")
	if !found || member.InstitutionID != institutionID {
		return &responses.ClubAccessResponse{HasAccess: false}, nil
	}

	has, err := svc.memberRepo.HasClub(ctx, memberID, clubID)
	if err != nil {
		return nil, newInternalError(err)
	}

	return &responses.ClubAccessResponse{HasAccess: has}, nil
}
