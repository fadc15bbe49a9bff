package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the recruiting domain. Handlers translate these into
// HTTP status codes; services and repositories return them untouched.
var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login failures cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrAdminExists          = errors.New("admin already exists")
	ErrUserExists           = errors.New("user already exists")
	ErrClientExists         = errors.New("client already exists")
	ErrDuplicateApplication = errors.New("application already exists for this job")

	ErrUserNotFound        = errors.New("user not found")
	ErrJobNotFound         = errors.New("job not found")
	ErrApplicationNotFound = errors.New("application not found")

	ErrUnsupportedMedia  = errors.New("only PDF uploads are supported")
	ErrUnsupportedPortal = errors.New("unsupported job portal")

	// ErrGeneratorUnavailable reports a missing or failing generative backend.
	ErrGeneratorUnavailable = errors.New("text generation service unavailable")
)

// ValidationError carries a request-specific message describing what was
// wrong with the input. It always resolves to a 400 response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// MissingField builds the canonical required-field validation error.
func MissingField(field string) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf("%s is required", field)}
}

// Invalid builds a validation error with a custom message.
func Invalid(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}
