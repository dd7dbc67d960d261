package api

import (
	"encoding/json"
	"net/http"

	"campus-spaces/registrar/internal/auth"
	"campus-spaces/registrar/internal/models/dtos/requests"
	"campus-spaces/registrar/internal/services"
)

// GetMemberHandler handles GET /member/get?memberId=
func GetMemberHandler(memberService *services.MemberService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		memberID := r.URL.Query().Get("memberId")

		resp, err := memberService.Get(r.Context(), memberID)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, resp)
	}
}

// UpdateMemberHandler handles POST /member/update
func UpdateMemberHandler(memberService *services.MemberService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req requests.UpdateMemberRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		resp, err := memberService.Update(r.Context(), req.MemberID, req.Fields)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, resp)
	}
}

// MeHandler handles GET /me for session-authenticated callers
func MeHandler(memberService *services.MemberService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		identity := auth.GetIdentity(r.Context())
		if identity == nil {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized: missing identity")
			return
		}

		resp, err := memberService.Get(r.Context(), identity.MemberID)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, resp)
	}
}
