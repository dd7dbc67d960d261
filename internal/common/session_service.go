package common

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"campus-spaces/registrar/internal/constants"
	"campus-spaces/registrar/internal/logging"
)

// SessionData is a logged-in member's session
type SessionData struct {
	SessionID     string               `json:"session_id"`
	MemberID      string               `json:"member_id"`
	InstitutionID string               `json:"institution_id"`
	Email         string               `json:"email"`
	Role          constants.MemberRole `json:"role"`
	CreatedAt     time.Time            `json:"created_at"`
	ExpiresAt     time.Time            `json:"expires_at"`
}

const sessionTTL = 7 * 24 * time.Hour

// SessionService manages member sessions in Redis
type SessionService struct {
	redis *redis.Client
}

// NewSessionService creates a new session service
func NewSessionService(redis *redis.Client) *SessionService {
	return &SessionService{
		redis: redis,
	}
}

// CreateSession stores a new session for a member and returns its ID
func (s *SessionService) CreateSession(
	ctx context.Context,
	memberID, institutionID, email string,
	role constants.MemberRole,
) (string, error) {
	sessionID := uuid.New().String()

	now := time.Now()
	session := SessionData{
		SessionID:     sessionID,
		MemberID:      memberID,
		InstitutionID: institutionID,
		Email:         email,
		Role:          role,
		CreatedAt:     now,
		ExpiresAt:     now.Add(sessionTTL),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.redis.Set(ctx, "session:"+sessionID, data, sessionTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	logging.Info("Session created", "session_id", sessionID, "member_id", memberID)
	return sessionID, nil
}

// GetSession retrieves a session from Redis
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*SessionData, error) {
	val, err := s.redis.Get(ctx, "session:"+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.New("session not found")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session SessionData
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		_ = s.DeleteSession(ctx, sessionID)
		return nil, errors.New("session expired")
	}

	return &session, nil
}

// DeleteSession removes a session from Redis
func (s *SessionService) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.redis.Del(ctx, "session:"+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
