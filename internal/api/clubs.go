package api

import (
	"encoding/json"
	"net/http"

	"campus-spaces/registrar/internal/models/dtos/requests"
	"campus-spaces/registrar/internal/services"
)

// ClubAccessHandler handles POST /clubs/hasAccess
func ClubAccessHandler(clubService *services.ClubService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req requests.ClubAccessRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		resp, err := clubService.HasAccess(r.Context(), req.MemberID, req.ClubID)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, resp)
	}
}
