package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/storefront-sync/internal/storefront"
)

// Cookie names used by the reference storefront.
const (
	SessionCookie = "sessionid"
	CSRFCookie    = "csrftoken"
	CSRFHeader    = "X-CSRFToken"
)

// Session returns Echo middleware that gives every shopper a session
// cookie and an anti-forgery cookie, and stores the session ID in the
// request context.
func Session() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := cookieValue(c, SessionCookie)
			if id == "" {
				id = uuid.NewString()
				setCookie(c, SessionCookie, id, true)
			}
			if cookieValue(c, CSRFCookie) == "" {
				setCookie(c, CSRFCookie, uuid.NewString(), false)
			}

			req := c.Request()
			c.SetRequest(req.WithContext(storefront.ContextWithSession(req.Context(), id)))
			return next(c)
		}
	}
}

func cookieValue(c echo.Context, name string) string {
	ck, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return ck.Value
}

// setCookie sets a site-wide cookie. The anti-forgery cookie stays readable
// by page scripts, which echo it in a header.
func setCookie(c echo.Context, name, value string, httpOnly bool) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: httpOnly,
		SameSite: http.SameSiteLaxMode,
	})
}
