package api

import (
	"net/http"
	"strconv"

	"campus-spaces/registrar/internal/metrics"
	"campus-spaces/registrar/internal/services"
)

// LeaderboardHandler handles GET /leaderboard?institutionId=
func LeaderboardHandler(leaderboardService *services.LeaderboardService, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		institutionID := r.URL.Query().Get("institutionId")

		limit := services.DefaultLeaderboardLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				respondWithError(w, http.StatusBadRequest, "limit must be a positive integer")
				return
			}
			limit = parsed
		}

		resp, err := leaderboardService.Compute(r.Context(), institutionID, limit)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		metricsReg.LeaderboardComputations.Inc()
		respondWithSuccess(w, http.StatusOK, resp)
	}
}
