package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/storefront-sync/internal/metrics"
)

// CSRF returns Echo middleware enforcing the double-submit check: unsafe
// requests must echo the anti-forgery cookie in the CSRF header. Rejections
// answer 403 with the storefront's failure body.
func CSRF() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch c.Request().Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return next(c)
			}

			cookie := cookieValue(c, CSRFCookie)
			header := c.Request().Header.Get(CSRFHeader)
			if cookie == "" || subtle.ConstantTimeCompare([]byte(cookie), []byte(header)) != 1 {
				metrics.CSRFRejectionsTotal.Inc()
				return c.JSON(http.StatusForbidden, failure("CSRF token missing or incorrect"))
			}
			return next(c)
		}
	}
}
