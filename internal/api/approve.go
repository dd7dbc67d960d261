package api

import (
	"encoding/json"
	"net/http"

	"campus-spaces/registrar/internal/metrics"
	"campus-spaces/registrar/internal/models/dtos/requests"
	"campus-spaces/registrar/internal/services"
)

// ApproveStudentHandler handles POST /admin/approve
func ApproveStudentHandler(approvalService *services.ApprovalService, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req requests.ApproveStudentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		resp, err := approvalService.Approve(
			r.Context(),
			req.AdminEmail,
			req.InstitutionID,
			req.StudentID,
		)

		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		metricsReg.ApprovalsTotal.Inc()
		respondWithSuccess(w, http.StatusOK, resp)
	}
}
