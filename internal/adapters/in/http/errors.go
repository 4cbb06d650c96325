package http

import (
	"errors"
	"net/http"

	"salesflow/internal/generated/servers"
	"salesflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "internal error"

// statusOf maps the error taxonomy onto HTTP status codes. Version conflicts
// and refused operations are both 409.
func statusOf(err error) int {
	switch {
	case errs.IsNotFound(err):
		return http.StatusNotFound
	case errs.IsConflict(err), errs.IsNotAllowed(err):
		return http.StatusConflict
	case errs.IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// problem writes err as a servers.Error. Internal errors are logged and
// their details are not sent to the client.
func (s *Server) problem(ctx echo.Context, err error) error {
	status := statusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		message = internalErrorMessage
	}

	return ctx.JSON(status, servers.Error{Code: status, Message: message})
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorHandler renders errors that never reached a Server method, such as
// unknown routes and malformed path parameters, in the same JSON shape.
func errorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := internalErrorMessage
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		if m, ok := httpErr.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(status)
		}
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(status)
		return
	}
	_ = ctx.JSON(status, servers.Error{Code: status, Message: message})
}
