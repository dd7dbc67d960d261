package services

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"campus-spaces/registrar/internal/constants"
	"campus-spaces/registrar/internal/db/repositories"
	"campus-spaces/registrar/internal/logging"
	"campus-spaces/registrar/internal/models/dtos/responses"
	gormModels "campus-spaces/registrar/internal/models/gorm"
)

const defaultEmojiTag = "🏅"

// RegistrationService admits new members: institution, email-domain and
// uniqueness checks, then role resolution from the approval allow-list.
type RegistrationService struct {
	institutionRepo *repositories.InstitutionRepository
	memberRepo      *repositories.MemberRepository
	approvalRepo    *repositories.ApprovalRepository
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(
	institutionRepo *repositories.InstitutionRepository,
	memberRepo *repositories.MemberRepository,
	approvalRepo *repositories.ApprovalRepository,
) *RegistrationService {
	return &RegistrationService{
		institutionRepo: institutionRepo,
		memberRepo:      memberRepo,
		approvalRepo:    approvalRepo,
	}
}

// Register validates a join request and persists the member. An approval
// record for (institutionID, studentID) grants the student role up front;
// without one the member starts as pending. A missing approval record is
// never an error, it only affects the role.
func (svc *RegistrationService) Register(
	ctx context.Context,
	name, email, institutionID, studentID, password, emojiTag string,
) (*responses.RegistrationResponse, error) {
	if name == "" || email == "" || institutionID == "" || studentID == "" || password == "" {
		return nil, newValidationError(constants.MsgMissingFields)
	}

	institution, err := svc.institutionRepo.GetByID(ctx, institutionID)
	if err != nil {
		return nil, newInternalError(err)
	}
	if institution == nil {
		return nil, newNotFoundError(constants.MsgInstitutionAbsent)
	}

	if !domainMatches(email, institution.Domain) {
		return nil, newDomainMismatchError()
	}

	existing, err := svc.memberRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, newInternalError(err)
	}
	if existing != nil {
		return nil, newConflictError(constants.MsgMemberExists)
	}

	approved, err := svc.approvalRepo.Exists(ctx, institutionID, studentID)
	if err != nil {
		return nil, newInternalError(err)
	}

	role := constants.RolePending
	if approved {
		role = constants.RoleStudent
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, newInternalError(err)
	}

	if emojiTag == "" {
		emojiTag = defaultEmojiTag
	}

	member := gormModels.Member{
		Name:          name,
		Email:         email,
		StudentID:     studentID,
		InstitutionID: institutionID,
		Role:          role,
		EmojiTag:      emojiTag,
		PasswordHash:  string(hash),
	}

	if err := svc.memberRepo.Create(ctx, &member); err != nil {
		// Two concurrent registrations can both pass the existence check;
		// the unique index rejects the second write.
		if repositories.IsDuplicateKey(err) {
			return nil, newConflictError(constants.MsgMemberExists)
		}
		return nil, newInternalError(err)
	}

	logging.Info("Member registered",
		"member_id", member.ID,
		"institution_id", institutionID,
		"role", role.String(),
	)

	return &responses.RegistrationResponse{
		MemberID: member.ID,
		Role:     role,
	}, nil
}

// domainMatches checks the segment after the first '@' against the
// institution's configured domain suffix, case-insensitively. An email
// with more than one '@' yields a segment that never matches.
func domainMatches(email, institutionDomain string) bool {
	parts := strings.Split(email, "@")
	if len(parts) < 2 || parts[1] == "" {
		return false
	}
	domain := strings.ToLower(parts[1])
	return strings.HasSuffix(domain, strings.ToLower(institutionDomain))
}
