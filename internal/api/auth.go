package api

import (
	"encoding/json"
	"net/http"

	"campus-spaces/registrar/internal/models/dtos/requests"
	"campus-spaces/registrar/internal/services"
)

// LoginHandler handles POST /login
func LoginHandler(authService *services.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req requests.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		resp, err := authService.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		// Cookie for browser clients; API clients use the bearer token
		http.SetCookie(w, &http.Cookie{
			Name:     "session_id",
			Value:    resp.SessionID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		respondWithSuccess(w, http.StatusOK, resp)
	}
}
