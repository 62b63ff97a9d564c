package http

import (
	"errors"
	"net/http"

	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	TraceID string `json:"traceId"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// statusOf maps an error kind to its HTTP status. PolicyDisabled is checked
// before Forbidden because it matches both.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrPolicyDisabled), errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidState), errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(c echo.Context, err error) error {
	status := statusOf(err)
	code := string(errs.CodeOf(err))
	message := err.Error()

	var disabled *errs.PolicyDisabledError
	if errors.As(err, &disabled) {
		message = disabled.Notice
	}

	// Storage causes stay in the log.
	var conflict *errs.ConflictError
	if errors.As(err, &conflict) {
		message = conflict.Reason
		if conflict.Cause != nil {
			requestLogger(c, s.logger).Info("conflict", zap.Error(err))
		}
	}

	if status == http.StatusInternalServerError {
		requestLogger(c, s.logger).Error("unexpected error", zap.Error(err))
		code = "INTERNAL_ERROR"
		message = "an unexpected error occurred"
	}

	return c.JSON(status, ErrorResponse{
		TraceID: traceIDFrom(c),
		Code:    code,
		Message: message,
	})
}

func (s *Server) badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		TraceID: traceIDFrom(c),
		Code:    string(errs.CodeValueInvalid),
		Message: message,
	})
}
