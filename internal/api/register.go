package api

import (
	"encoding/json"
	"net/http"

	"campus-spaces/registrar/internal/metrics"
	"campus-spaces/registrar/internal/models/dtos/requests"
	"campus-spaces/registrar/internal/services"
)

// RegisterMemberHandler handles POST /register
func RegisterMemberHandler(regService *services.RegistrationService, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req requests.RegisterMemberRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		resp, err := regService.Register(
			r.Context(),
			req.Name,
			req.Email,
			req.InstitutionID,
			req.StudentID,
			req.Password,
			req.EmojiTag,
		)

		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		metricsReg.RegistrationsTotal.WithLabelValues(resp.Role.String()).Inc()
		respondWithSuccess(w, http.StatusOK, resp)
	}
}
