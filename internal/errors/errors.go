package errors

// Kind classifies a domain error for callers that branch on failure class
// rather than on a specific sentinel.
type Kind string

const (
	// KindIntegrity marks a violated uniqueness, state-exclusivity or
	// permission rule.
	KindIntegrity Kind = "INTEGRITY_VIOLATION"
	// KindNotFound marks a missing or wrongly-stated referenced entity.
	KindNotFound Kind = "NOT_FOUND"
	// KindValidation marks malformed or internally inconsistent input.
	KindValidation Kind = "VALIDATION_ERROR"
	// KindExternal marks a failure of an outbound collaborator.
	KindExternal Kind = "EXTERNAL_SERVICE_FAILURE"
)

// Error codes
const (
	ErrCodeDuplicateIdentity   = "DUPLICATE_IDENTITY"
	ErrCodeInvalidCredentials  = "INVALID_CREDENTIALS"
	ErrCodeUnknownEmail        = "UNKNOWN_EMAIL"
	ErrCodeInvalidToken        = "INVALID_TOKEN"
	ErrCodeInvalidSeason       = "INVALID_SEASON"
	ErrCodeAlreadyMember       = "ALREADY_MEMBER"
	ErrCodeNoActiveMembership  = "NO_ACTIVE_MEMBERSHIP"
	ErrCodeClubNotFound        = "CLUB_NOT_FOUND"
	ErrCodeSeasonNotFound      = "SEASON_NOT_FOUND"
	ErrCodeBowlingStatNotFound = "BOWLING_STAT_NOT_FOUND"
	ErrCodeAdminRequired       = "ADMIN_REQUIRED"
	ErrCodeUnknownEntity       = "UNKNOWN_ENTITY"
	ErrCodeNotificationFailed  = "NOTIFICATION_FAILED"
	ErrCodeInvalidInput        = "INVALID_INPUT"
)

// Error is a typed domain error. Services return predefined instances so
// callers can match with errors.Is; Details carries field-level context for
// validation failures.
type Error struct {
	Kind    Kind        `json:"kind"`
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// New creates a new Error
func New(kind Kind, code, message string) *Error {
	return &Error{
		Kind:    kind,
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of e carrying details. The copy still matches
// the original with errors.Is via Is below.
func (e *Error) WithDetails(details interface{}) *Error {
	return &Error{
		Kind:    e.Kind,
		Code:    e.Code,
		Message: e.Message,
		Details: details,
	}
}

// Is matches errors by code, so detail-carrying copies and wrapped values
// compare equal to their predefined sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Predefined errors
var (
	ErrDuplicateIdentity   = New(KindIntegrity, ErrCodeDuplicateIdentity, "username or email already registered")
	ErrInvalidCredentials  = New(KindNotFound, ErrCodeInvalidCredentials, "invalid username or password")
	ErrUnknownEmail        = New(KindNotFound, ErrCodeUnknownEmail, "no account with that email")
	ErrInvalidToken        = New(KindNotFound, ErrCodeInvalidToken, "reset token is unknown or already used")
	ErrInvalidSeason       = New(KindNotFound, ErrCodeInvalidSeason, "season does not exist")
	ErrAlreadyMember       = New(KindIntegrity, ErrCodeAlreadyMember, "user already has an active club membership")
	ErrNoActiveMembership  = New(KindNotFound, ErrCodeNoActiveMembership, "user has no active club membership")
	ErrClubNotFound        = New(KindNotFound, ErrCodeClubNotFound, "club does not exist")
	ErrSeasonNotFound      = New(KindNotFound, ErrCodeSeasonNotFound, "season does not exist")
	ErrBowlingStatNotFound = New(KindNotFound, ErrCodeBowlingStatNotFound, "bowling stat does not exist")
	ErrAdminRequired       = New(KindIntegrity, ErrCodeAdminRequired, "operation requires an admin account")
	ErrUnknownEntity       = New(KindNotFound, ErrCodeUnknownEntity, "entity is not retrievable")
	ErrNotificationFailed  = New(KindExternal, ErrCodeNotificationFailed, "notification could not be delivered")
	ErrInvalidInput        = New(KindValidation, ErrCodeInvalidInput, "invalid input")
)
