package services

import (
	"context"
	"encoding/json"

	"campus-spaces/registrar/internal/constants"
	"campus-spaces/registrar/internal/db/repositories"
	gormModels "campus-spaces/registrar/internal/models/gorm"
	"campus-spaces/registrar/internal/models/dtos/responses"
)

// MemberService serves member reads and self-service profile updates
type MemberService struct {
	memberRepo *repositories.MemberRepository
}

// NewMemberService creates a new member service
func NewMemberService(memberRepo *repositories.MemberRepository) *MemberService {
	return &MemberService{memberRepo: memberRepo}
}

// Get fetches one member with club memberships
func (svc *MemberService) Get(ctx context.Context, memberID string) (*responses.MemberResponse, error) {
	if memberID == "" {
		return nil, newValidationError("memberId required")
	}

	member, err := svc.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, newInternalError(err)
	}
	if member == nil {
		return nil, newNotFoundError(constants.MsgMemberNotFound)
	}

	view := MemberToView(member)
	return &responses.MemberResponse{Member: view}, nil
}

// Update applies an allow-listed field set to a member. Unrecognized
// fields are silently ignored. Clubs are a full replace of the prior set,
// not a merge.
func (svc *MemberService) Update(ctx context.Context, memberID string, fields map[string]json.RawMessage) (*responses.MemberResponse, error) {
	if memberID == "" || fields == nil {
		return nil, newValidationError(constants.MsgMissingFields)
	}

	member, err := svc.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, newInternalError(err)
	}
	if member == nil {
		return nil, newNotFoundError(constants.MsgMemberNotFound)
	}

	updates := make(map[string]interface{})
	for name, raw := range fields {
		switch name {
		case "name", "email", "emojiTag":
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, newValidationError("field " + name + " must be a string")
			}
			updates[columnForField(name)] = s
		case "academicScore", "sportsScore":
			var n int
			if err := json.Unmarshal(raw, &n); err != nil {
				return nil, newValidationError("field " + name + " must be an integer")
			}
			updates[columnForField(name)] = n
		case "clubs":
			// handled below as a membership replace
		default:
			// not on the allow-list, ignore
		}
	}

	if err := svc.memberRepo.UpdateFields(ctx, memberID, updates); err != nil {
		if repositories.IsDuplicateKey(err) {
			return nil, newConflictError(constants.MsgMemberExists)
		}
		return nil, newInternalError(err)
	}

	if raw, ok := fields["clubs"]; ok {
		var clubs []string
		if err := json.Unmarshal(raw, &clubs); err != nil {
			return nil, newValidationError("field clubs must be an array of strings")
		}
		if err := svc.memberRepo.ReplaceClubs(ctx, memberID, clubs); err != nil {
			return nil, newInternalError(err)
		}
	}

	updated, err := svc.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, newInternalError(err)
	}
	if updated == nil {
		return nil, newNotFoundError(constants.MsgMemberNotFound)
	}

	view := MemberToView(updated)
	return &responses.MemberResponse{Member: view}, nil
}

func columnForField(field string) string {
	switch field {
	case "name":
		return "name"
	case "email":
		return "email"
	case "emojiTag":
		return "emoji_tag"
	case "academicScore":
		return "academic_score"
	case "sportsScore":
		return "sports_score"
	}
	return field
}

// MemberToView flattens a member entity onto the wire shape
func MemberToView(m *gormModels.Member) responses.MemberView {
	clubs := make([]string, 0, len(m.Clubs))
	for _, c := range m.Clubs {
		clubs = append(clubs, c.ClubID)
	}

	return responses.MemberView{
		ID:            m.ID,
		Name:          m.Name,
		Email:         m.Email,
		StudentID:     m.StudentID,
		InstitutionID: m.InstitutionID,
		Role:          m.Role,
		EmojiTag:      m.EmojiTag,
		AcademicScore: m.AcademicScore,
		SportsScore:   m.SportsScore,
		Clubs:         clubs,
	}
}
