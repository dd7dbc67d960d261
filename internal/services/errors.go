package services

import (
	"errors"

	"campus-spaces/registrar/internal/constants"
)

// ServiceError is the error type returned by all services. Code drives the
// HTTP status mapping in the api package; Err keeps the underlying cause
// for logging.
type ServiceError struct {
	Code    string
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func newValidationError(message string) *ServiceError {
	return &ServiceError{Code: constants.ErrCodeValidation, Message: message}
}

func newNotFoundError(message string) *ServiceError {
	return &ServiceError{Code: constants.ErrCodeNotFound, Message: message}
}

func newDomainMismatchError() *ServiceError {
	return &ServiceError{
		Code:    constants.ErrCodeDomainMismatch,
		Message: constants.GetErrorMessage(constants.ErrCodeDomainMismatch),
	}
}

func newConflictError(message string) *ServiceError {
	return &ServiceError{Code: constants.ErrCodeConflict, Message: message}
}

func newUnauthorizedError(message string) *ServiceError {
	return &ServiceError{Code: constants.ErrCodeUnauthorized, Message: message}
}

// newInternalError marks store-level failures. These are the only errors a
// caller may retry, and only once.
func newInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:    constants.ErrCodeInternal,
		Message: constants.GetErrorMessage(constants.ErrCodeInternal),
		Err:     err,
	}
}

// AsServiceError unwraps err into a *ServiceError if possible
func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}
