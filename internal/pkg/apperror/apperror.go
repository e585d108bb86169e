package apperror

import "net/http"

// AppError is an error that knows which HTTP status it should be reported with.
type AppError struct {
	Code    int    // HTTP status code
	Message string // user-facing message
	Details any    // optional client-facing detail
	Err     error  // underlying cause, never sent to the client
}

// New creates a new AppError with the given status code and message.
func New(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetails returns a copy of the error carrying extra detail for the client.
// The copy still matches the original with errors.Is.
func (e *AppError) WithDetails(details any) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// WithCause returns a copy of the error wrapping err. The copy still matches
// the original with errors.Is and exposes err through errors.Unwrap.
func (e *AppError) WithCause(err error) *AppError {
	w := Wrap(err, e.Code, e.Message)
	w.Details = e.Details
	return w
}

// Is reports whether target is an AppError with the same code and message.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code && t.Message == e.Message
}

// IsClientError reports whether the error maps to a 4xx status.
func (e *AppError) IsClientError() bool {
	return e.Code >= http.StatusBadRequest && e.Code < http.StatusInternalServerError
}
