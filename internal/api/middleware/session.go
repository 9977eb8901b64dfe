package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookie holds the session id for browsers.
	SessionCookie = "pc_session"
	// SessionHeader carries the session id for API clients that do not keep cookies.
	SessionHeader = "X-Session-ID"
	// SessionKey is the gin context key of the requested session id.
	SessionKey = "session_id"
)

// Session reads the session id from the header or cookie into the context.
// An empty id means "start a new session"; handlers report the effective id with BindSession.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if id == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				id = cookie
			}
		}
		c.Set(SessionKey, id)
		c.Next()
	}
}

// SessionID returns the id read by Session.
func SessionID(c *gin.Context) string {
	return c.GetString(SessionKey)
}

// BindSession sends the effective session id back as cookie and header.
func BindSession(c *gin.Context, id string) {
	c.Set(SessionKey, id)
	c.Header(SessionHeader, id)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, id, 0, "/", "", false, true)
}
