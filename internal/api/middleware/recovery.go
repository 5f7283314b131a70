package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
)

// Recovery returns Echo middleware that recovers from panics, logs the stack
// trace, and answers 500 with the storefront's failure body so in-page
// callers see an application failure rather than a dropped connection.
func Recovery(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				buf := make([]byte, 4096)
				n := runtime.Stack(buf, false)

				log.Error("panic recovered",
					"error", fmt.Sprint(r),
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"stack", string(buf[:n]),
				)

				if c.Response().Committed {
					err = fmt.Errorf("panic after response was committed: %v", r)
					return
				}
				err = c.JSON(http.StatusInternalServerError, failure("internal server error"))
			}()
			return next(c)
		}
	}
}

// failureBody is the JSON shape of storefront failures.
type failureBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func failure(msg string) failureBody {
	return failureBody{Success: false, Error: msg}
}
