package api

import (
	"encoding/json"
	"net/http"
	"time"

	"campus-spaces/registrar/internal/constants"
	"campus-spaces/registrar/internal/logging"
	"campus-spaces/registrar/internal/models/dtos/responses"
	"campus-spaces/registrar/internal/services"
)

func respondWithSuccess[T any](w http.ResponseWriter, statusCode int, data *T) {
	resp := responses.APIResponse[T]{
		Status:    "success",
		Timestamp: time.Now().UTC(),
		Data:      data,
	}

	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	resp := responses.APIResponse[any]{
		Status:    "error",
		Timestamp: time.Now().UTC(),
		Error:     message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	_ = json.NewEncoder(w).Encode(resp)
}

// respondWithServiceError maps the service error taxonomy onto HTTP status
// codes. Anything that is not a ServiceError is an infrastructure failure.
func respondWithServiceError(w http.ResponseWriter, err error) {
	svcErr, ok := services.AsServiceError(err)
	if !ok {
		logging.Error("Unhandled service failure", "error", err.Error())
		respondWithError(w, http.StatusInternalServerError, constants.GetErrorMessage(constants.ErrCodeInternal))
		return
	}

	status := http.StatusInternalServerError
	switch svcErr.Code {
	case constants.ErrCodeValidation:
		status = http.StatusBadRequest
	case constants.ErrCodeNotFound:
		status = http.StatusNotFound
	case constants.ErrCodeDomainMismatch:
		status = http.StatusForbidden
	case constants.ErrCodeConflict:
		status = http.StatusConflict
	case constants.ErrCodeUnauthorized:
		status = http.StatusForbidden
	case constants.ErrCodeInternal:
		logging.Error("Store failure", "error", svcErr.Error())
	}

	respondWithError(w, status, svcErr.Message)
}
