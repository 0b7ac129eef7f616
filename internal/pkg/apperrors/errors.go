package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")
	ErrBadRequest       = errors.New("bad request")
	ErrValidationFailed = errors.New("validation failed")
)

// Credential errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
)

// Entity lookup errors. Each one unwraps to ErrResourceNotFound.
var (
	ErrAccountNotFound    = &CustomError{Err: ErrResourceNotFound, Message: "account not found"}
	ErrUserNotFound       = &CustomError{Err: ErrResourceNotFound, Message: "user not found"}
	ErrTeacherNotFound    = &CustomError{Err: ErrResourceNotFound, Message: "teacher not found"}
	ErrStudentNotFound    = &CustomError{Err: ErrResourceNotFound, Message: "student not found"}
	ErrCategoryNotFound   = &CustomError{Err: ErrResourceNotFound, Message: "category not found"}
	ErrCourseNotFound     = &CustomError{Err: ErrResourceNotFound, Message: "course not found"}
	ErrEnrollmentNotFound = &CustomError{Err: ErrResourceNotFound, Message: "enrollment not found"}
)

// ErrAlreadyEnrolled is returned by the enrollment store when the
// (student, course) pair already exists.
var ErrAlreadyEnrolled = &CustomError{Err: ErrConflict, Message: "enrollment already exists"}

// NewResourceNotFoundError creates a not-found error with a message safe to show to clients
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a conflict error with a message safe to show to clients
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error with a message safe to show to clients
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is reports whether err matches target or any of errList.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// CustomError attaches a client-facing message to one of the sentinel errors.
type CustomError struct {
	Err     error
	Message string
	Code    string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithCode sets a machine-readable code that overrides the default one
// chosen at the HTTP boundary.
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// Message returns the client-facing message carried by err, if any.
func Message(err error) (string, bool) {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message, true
	}
	return "", false
}
