package middleware

import (
	"net/http"
	"strings"

	"campus-spaces/registrar/internal/auth"
	"campus-spaces/registrar/internal/common"
)

// SessionAuthMiddleware resolves the caller's identity from a bearer token
// or session cookie. The token carries the session ID, so a session revoked
// in redis also kills the token.
func SessionAuthMiddleware(sessions *common.SessionService, tokens *common.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			sessionID := ""

			authHeader := r.Header.Get("Authorization")
			switch {
			case strings.HasPrefix(authHeader, "Bearer "):
				token, err := tokens.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
				if err != nil {
					http.Error(w, "Unauthorized. Invalid token", http.StatusUnauthorized)
					return
				}
				sessionID = token.SessionID

			default:
				cookie, err := r.Cookie("session_id")
				if err != nil || cookie.Value == "" {
					http.Error(w, "Unauthorized. Missing credentials", http.StatusUnauthorized)
					return
				}
				sessionID = cookie.Value
			}

			session, err := sessions.GetSession(r.Context(), sessionID)
			if err != nil {
				http.Error(w, "Unauthorized. Session not found", http.StatusUnauthorized)
				return
			}

			identity := &auth.Identity{
				MemberID:      session.MemberID,
				InstitutionID: session.InstitutionID,
				Email:         session.Email,
				Role:          session.Role,
				SessionID:     session.SessionID,
			}

			ctx := auth.SetIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
