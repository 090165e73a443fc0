package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	SessionCookieName = "session_id"

	sessionCookieMaxAge = 365 * 24 * time.Hour
)

// SessionMiddleware gives every browser a stable anonymous session id via a
// long-lived cookie and exposes it on the echo context. The id is threaded
// explicitly into services; nothing reads it from global state.
func SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var sessionID string

			cookie, err := c.Cookie(SessionCookieName)
			if err == nil && cookie.Value != "" {
				sessionID = cookie.Value
			} else {
				sessionID = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     SessionCookieName,
					Value:    sessionID,
					Path:     "/",
					MaxAge:   int(sessionCookieMaxAge.Seconds()),
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set("session_id", sessionID)

			return next(c)
		}
	}
}
