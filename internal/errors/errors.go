package errors

import "net/http"

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func New(message string, statusCode int) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: statusCode}
}

// Error taxonomy. Messages are surfaced to callers as-is, so InvalidCredentials
// keeps "no such user" and "wrong password" externally indistinguishable.

func DuplicateUsername() *ErrorWithStatusCode {
	return New("Username already taken", http.StatusBadRequest)
}

func InvalidCredentials() *ErrorWithStatusCode {
	return New("Invalid credentials", http.StatusUnauthorized)
}

func NotFound(what string) *ErrorWithStatusCode {
	return New(what+" not found", http.StatusNotFound)
}

func Unauthenticated() *ErrorWithStatusCode {
	return New("Invalid token", http.StatusUnauthorized)
}

func UnsupportedMediaType() *ErrorWithStatusCode {
	return New("File must be an image", http.StatusBadRequest)
}

// IsNotFound reports whether err carries a 404 status.
func IsNotFound(err error) bool {
	e, ok := err.(*ErrorWithStatusCode)
	return ok && e.StatusCode == http.StatusNotFound
}

// StatusCode returns the HTTP status carried by err, or 500 for plain errors.
func StatusCode(err error) int {
	if e, ok := err.(*ErrorWithStatusCode); ok {
		return e.StatusCode
	}
	return http.StatusInternalServerError
}
