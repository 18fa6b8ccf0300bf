package apperror

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NeilHuang625/zcmetal/pkg/logger"
)

var statusCodes = map[int]string{
	http.StatusBadRequest:          "bad_request",
	http.StatusNotFound:            "not_found",
	http.StatusMethodNotAllowed:    "method_not_allowed",
	http.StatusTooManyRequests:     "rate_limited",
	http.StatusServiceUnavailable:  "unavailable",
	http.StatusInternalServerError: "internal_error",
}

// HTTPErrorHandler returns the echo error handler used by the server and by
// handler tests. Errors are written as {"error":{"code","message"}}.
func HTTPErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	log = log.With(logger.Scope("http"))

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := ToHTTPError(err)

		var he *echo.HTTPError
		var appErr *Error
		if !errors.As(err, &appErr) && errors.As(err, &he) {
			status = he.Code
			code, ok := statusCodes[status]
			if !ok {
				code = "error"
			}
			msg, _ := he.Message.(string)
			if msg == "" {
				msg = http.StatusText(status)
			}
			body = New(status, code, msg).Body()
		}

		if status >= http.StatusInternalServerError {
			log.Error("request error",
				slog.Int("status", status),
				slog.String("path", c.Request().URL.Path),
				logger.Error(err),
			)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, body)
	}
}
