package api

import (
	"net/http"

	"campus-spaces/registrar/internal/services"
)

// ListInstitutionsHandler handles GET /institutions
func ListInstitutionsHandler(directoryService *services.DirectoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		resp, err := directoryService.ListInstitutions(r.Context())
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, resp)
	}
}

// ListEventsHandler handles GET /events?institutionId=
func ListEventsHandler(directoryService *services.DirectoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		institutionID := r.URL.Query().Get("institutionId")

		resp, err := directoryService.ListEvents(r.Context(), institutionID)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, resp)
	}
}
