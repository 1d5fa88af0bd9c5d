package server

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/financeiro/internal/middleware"
)

// setupErrorHandling installs the central HTTP error handler.
// *echo.HTTPError keeps its status and message. Any other error is an
// unhandled failure: it is logged with a stack trace and answered with 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		logger := middleware.FromContext(c.Request().Context())
		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			message = fmt.Sprint(he.Message)
			if code >= http.StatusInternalServerError {
				logger.Error("HTTP error", "status", code, "error", err)
			}
		} else {
			logger.Error("Internal Server Error (Unhandled)",
				"error", err,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}

		var respErr error
		if c.Request().Method == http.MethodHead {
			respErr = c.NoContent(code)
		} else {
			respErr = c.String(code, message)
		}
		if respErr != nil {
			logger.Error("Failed to write error response", "error", respErr)
		}
	}
}
