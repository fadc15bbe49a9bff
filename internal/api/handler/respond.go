package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentbase/recruiting-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// statusByError maps each sentinel in the domain taxonomy to its HTTP status.
var statusByError = []struct {
	target error
	code   int
}{
	{domain.ErrInvalidCredentials, http.StatusUnauthorized},
	{domain.ErrUserNotFound, http.StatusNotFound},
	{domain.ErrJobNotFound, http.StatusNotFound},
	{domain.ErrApplicationNotFound, http.StatusNotFound},
	{domain.ErrAdminExists, http.StatusConflict},
	{domain.ErrUserExists, http.StatusConflict},
	{domain.ErrClientExists, http.StatusConflict},
	{domain.ErrDuplicateApplication, http.StatusConflict},
	{domain.ErrUnsupportedMedia, http.StatusUnsupportedMediaType},
	{domain.ErrUnsupportedPortal, http.StatusBadRequest},
}

// ResolveError is the single translation point from the domain taxonomy to
// HTTP. Unrecognized failures become a 500 with the underlying message.
func ResolveError(err error) (int, string) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Message
	}
	for _, m := range statusByError {
		if errors.Is(err, m.target) {
			return m.code, m.target.Error()
		}
	}
	// Covers ErrGeneratorUnavailable and anything unexpected. The message is
	// kept: the operator needs the upstream detail to diagnose configuration
	// problems, and nothing secret flows through this path.
	return http.StatusInternalServerError, err.Error()
}

func errorJSON(c echo.Context, err error) error {
	code, msg := ResolveError(err)
	return c.JSON(code, errorResponse{Error: msg})
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	return parseID(c.Param(name), name)
}
