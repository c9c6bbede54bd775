package app

import (
	"net/http"

	"Gin_redis_dress_rental/session"

	"github.com/gin-gonic/gin"
)

const AppSessionCookie = "app_session"

const sessionIDKey = "sessionID"

// SessionCookie makes sure every browser carries a session id for drafts and toasts.
func SessionCookie(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := ""
		if ck, err := c.Request.Cookie(AppSessionCookie); err == nil {
			id = ck.Value
		}
		if id == "" {
			id = session.NewID()
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     AppSessionCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
				Secure:   secure,
			})
		}
		c.Set(sessionIDKey, id)
		c.Next()
	}
}

// SessionID returns the id set by SessionCookie, or "" outside it.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
