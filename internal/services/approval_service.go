package services

import (
	"context"

	"campus-spaces/registrar/internal/constants"
	"campus-spaces/registrar/internal/db/repositories"
	"campus-spaces/registrar/internal/logging"
	"campus-spaces/registrar/internal/models/dtos/responses"
)

// ApprovalService handles admin pre-approval of student identifiers
type ApprovalService struct {
	institutionRepo *repositories.InstitutionRepository
	memberRepo      *repositories.MemberRepository
	approvalRepo    *repositories.ApprovalRepository
}

// NewApprovalService creates a new approval service
func NewApprovalService(
	institutionRepo *repositories.InstitutionRepository,
	memberRepo *repositories.MemberRepository,
	approvalRepo *repositories.ApprovalRepository,
) *ApprovalService {
	return &ApprovalService{
		institutionRepo: institutionRepo,
		memberRepo:      memberRepo,
		approvalRepo:    approvalRepo,
	}
}

// Approve records a pre-approval for (institutionID, studentID) and, when
// the member is already registered, promotes them to student. Calling it
// twice with the same arguments is a no-op on the second call. It never
// fails just because the member has not registered yet.
func (svc *ApprovalService) Approve(
	ctx context.Context,
	adminEmail, institutionID, studentID string,
) (*responses.ApprovalResponse, error) {
	if adminEmail == "" || institutionID == "" || studentID == "" {
		return nil, newValidationError(constants.MsgMissingFields)
	}

	isAdmin, err := svc.institutionRepo.IsAdmin(ctx, institutionID, adminEmail)
	if err != nil {
		return nil, newInternalError(err)
	}
	if !isAdmin {
		return nil, newUnauthorizedError(constants.MsgNotAdmin)
	}

	if err := svc.approvalRepo.InsertIfAbsent(ctx, institutionID, studentID); err != nil {
		return nil, newInternalError(err)
	}

	updated, err := svc.memberRepo.SetRoleByStudent(ctx, institutionID, studentID, constants.RoleStudent)
	if err != nil {
		return nil, newInternalError(err)
	}

	logging.Info("Student approved",
		"institution_id", institutionID,
		"student_id", studentID,
		"member_promoted", updated > 0,
	)

	return &responses.ApprovalResponse{Success: true}, nil
}
