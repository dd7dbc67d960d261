package common

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MemberToken is the decoded form of a login token
type MemberToken struct {
	MemberID      string
	InstitutionID string
	SessionID     string
	ExpiresAt     time.Time
}

// TokenService signs and validates login tokens. Tokens carry the session
// ID so a revoked session also invalidates the token.
type TokenService struct {
	secretKey []byte
}

// NewTokenService creates a new token service
func NewTokenService(secretKey []byte) *TokenService {
	return &TokenService{secretKey: secretKey}
}

// IssueToken signs a time-limited credential for a verified identity
func (s *TokenService) IssueToken(memberID, institutionID, sessionID string, ttl time.Duration) (string, error) {
	expiresAt := time.Now().Add(ttl)

	claims := jwt.MapClaims{
		"member_id":      memberID,
		"institution_id": institutionID,
		"sid":            sessionID,
		"exp":            expiresAt.Unix(),
		"iat":            time.Now().Unix(),
	}

	// Sign with HMAC
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken parses and validates a login token
func (s *TokenService) ValidateToken(tokenString string) (*MemberToken, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	memberID, _ := (*claims)["member_id"].(string)
	institutionID, _ := (*claims)["institution_id"].(string)
	sessionID, _ := (*claims)["sid"].(string)
	exp, _ := (*claims)["exp"].(float64)

	if memberID == "" || sessionID == "" {
		return nil, errors.New("token missing required claims")
	}

	return &MemberToken{
		MemberID:      memberID,
		InstitutionID: institutionID,
		SessionID:     sessionID,
		ExpiresAt:     time.Unix(int64(exp), 0),
	}, nil
}
