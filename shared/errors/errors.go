package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var NotFound = errors.New("not found")

func IsNotFound(err error) bool {
	return errors.Is(err, NotFound)
}

// Check if err is instance of T for custom error types
func Is[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// ValidationError covers empty or malformed user input. Always recoverable,
// surfaced back to the submitting form.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Validation error: %s", e.Message)
}

// AuthorizationDenied means the role gate rejected a mutating action.
// RedirectToLogin marks denials of anonymous users, which the UI
// answers with a login redirect rather than an error page.
type AuthorizationDenied struct {
	Message         string
	RedirectToLogin bool
}

func (e *AuthorizationDenied) Error() string {
	return e.Message
}

// Identity provider failure kinds. Stable codes consumed by the login and
// registration forms.
const (
	KindInvalidCredential = "invalid-credential"
	KindUserNotFound      = "user-not-found"
	KindWrongPassword     = "wrong-password"
	KindEmailInUse        = "email-already-in-use"
	KindWeakPassword      = "weak-password"
	KindInvalidEmail      = "invalid-email"
	KindInternal          = "internal"
)

type ProviderError struct {
	Kind    string
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// StatusCode maps provider failure kinds onto HTTP statuses.
func (e *ProviderError) StatusCode() int {
	switch e.Kind {
	case KindUserNotFound:
		return http.StatusNotFound
	case KindEmailInUse:
		return http.StatusConflict
	case KindInvalidCredential, KindWrongPassword:
		return http.StatusUnauthorized
	case KindWeakPassword, KindInvalidEmail:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
