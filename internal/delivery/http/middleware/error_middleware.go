package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "foodbridge/internal/delivery/context"
	"foodbridge/internal/delivery/http/response"
	domainerrors "foodbridge/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrorMiddleware centralises error-to-response mapping so handlers can
// return domain errors as-is.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// ErrorMiddlewareParams holds dependencies for ErrorMiddleware, injected by Fx.
type ErrorMiddlewareParams struct {
	fx.In

	Logger *slog.Logger
}

// NewErrorMiddleware is the constructor for ErrorMiddleware.
func NewErrorMiddleware(params ErrorMiddlewareParams) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: params.Logger,
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler. Domain errors
// render with their own status and business code; anything else becomes a
// generic 500 so internals never leak to clients.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("error_code", appErr.ErrorCode()),
				slog.Any("error", err),
			)
		}

		if renderErr := response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details()); renderErr != nil {
			logger.Error("Failed to write error response", slog.Any("error", renderErr))
		}

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}

		if renderErr := response.Error(c, httpErr.Code, http.StatusText(httpErr.Code), message, ""); renderErr != nil {
			logger.Error("Failed to write error response", slog.Any("error", renderErr))
		}

		return
	}

	logger.Error("Unhandled error", slog.Any("error", err))

	if renderErr := response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error"); renderErr != nil {
		logger.Error("Failed to write error response", slog.Any("error", renderErr))
	}
}
