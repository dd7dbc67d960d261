package constants

// Error codes returned by the service layer. Handlers map these to HTTP
// status codes; everything not listed here is treated as an internal error.
const (
	ErrCodeValidation     = "VALIDATION_ERROR"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeDomainMismatch = "DOMAIN_MISMATCH"
	ErrCodeConflict       = "CONFLICT"
	ErrCodeUnauthorized   = "UNAUTHORIZED"
	ErrCodeInternal       = "INTERNAL_ERROR"
)

var errorMessages = map[string]string{
	ErrCodeValidation:     "Missing or malformed input",
	ErrCodeNotFound:       "Requested record not found",
	ErrCodeDomainMismatch: "Email domain does not match institution domain",
	ErrCodeConflict:       "Record already exists",
	ErrCodeUnauthorized:   "Caller lacks the required privileges",
	ErrCodeInternal:       "Internal error, please retry",
}

// GetErrorMessage returns the default user-facing message for a code
func GetErrorMessage(code string) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return errorMessages[ErrCodeInternal]
}

const (
	MsgMissingFields     = "Missing fields"
	MsgInstitutionAbsent = "Institution not found"
	MsgMemberExists      = "Member already exists"
	MsgMemberNotFound    = "Member not found"
	MsgNotAdmin          = "Not an institution admin"
	MsgBadCredentials    = "Invalid email or password"
)
