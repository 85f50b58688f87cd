package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"catering/internal/adapters/in/http/api"
	"catering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// NewErrorHandler renders every error returned by a handler or middleware as
// api.Error. Domain errors are classified with errors.Is so wrapped and
// joined errors keep their kind.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code, message := classify(err)
		if code >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "request failed",
				slog.String("method", ctx.Request().Method),
				slog.String("path", ctx.Path()),
				slog.Any("error", err),
			)
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(code)
		} else {
			writeErr = ctx.JSON(code, api.Error{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.WarnContext(ctx.Request().Context(), "failed to write error response", slog.Any("error", writeErr))
		}
	}
}

func classify(err error) (int, string) {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errs.IsInvalidInput(err):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}
