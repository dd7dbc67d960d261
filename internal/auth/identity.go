package auth

import (
	"context"

	"campus-spaces/registrar/internal/constants"
)

// Identity is the authenticated caller attached to a request context by
// the session middleware.
type Identity struct {
	MemberID      string
	InstitutionID string
	Email         string
	Role          constants.MemberRole
	SessionID     string
}

type contextKey string

const identityKey contextKey = "identity"

// SetIdentity attaches an identity to the context
func SetIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// GetIdentity returns the identity from the context, or nil when the
// request is unauthenticated.
func GetIdentity(ctx context.Context) *Identity {
	id, ok := ctx.Value(identityKey).(*Identity)
	if !ok {
		return nil
	}
	return id
}
