package services

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"campus-spaces/registrar/internal/common"
	"campus-spaces/registrar/internal/constants"
	"campus-spaces/registrar/internal/db/repositories"
	"campus-spaces/registrar/internal/logging"
	"campus-spaces/registrar/internal/models/dtos/responses"
)

const loginTokenTTL = 24 * time.Hour

// AuthService handles the password login pathway: bcrypt verification,
// redis session creation and token issuance.
type AuthService struct {
	memberRepo *repositories.MemberRepository
	sessions   *common.SessionService
	tokens     *common.TokenService
}

// NewAuthService creates a new auth service
func NewAuthService(
	memberRepo *repositories.MemberRepository,
	sessions *common.SessionService,
	tokens *common.TokenService,
) *AuthService {
	return &AuthService{
		memberRepo: memberRepo,
		sessions:   sessions,
		tokens:     tokens,
	}
}

// Login verifies credentials and returns a session-backed signed token.
// Unknown email and wrong password are indistinguishable to the caller.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*responses.LoginResponse, error) {
	if email == "" || password == "" {
		return nil, newValidationError(constants.MsgMissingFields)
	}

	member, err := svc.memberRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, newInternalError(err)
	}
	if member == nil {
		return nil, newUnauthorizedError(constants.MsgBadCredentials)
	}

	// Constant-time comparison
	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		return nil, newUnauthorizedError(constants.MsgBadCredentials)
	}

	sessionID, err := svc.sessions.CreateSession(ctx, member.ID, member.InstitutionID, member.Email, member.Role)
	if err != nil {
		return nil, newInternalError(err)
	}

	token, err := svc.tokens.IssueToken(member.ID, member.InstitutionID, sessionID, loginTokenTTL)
	if err != nil {
		return nil, newInternalError(err)
	}

	logging.Info("Member logged in", "member_id", member.ID)

	view := MemberToView(member)
	return &responses.LoginResponse{
		Token:     token,
		SessionID: sessionID,
		ExpiresIn: int(loginTokenTTL.Seconds()),
		Member:    view,
	}, nil
}
