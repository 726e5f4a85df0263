package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionState reports whether a session is currently cached.
type SessionState interface {
	Authenticated() bool
	UserID() string
}

// UserIDContextKey is a gin context key for the session's user identifier.
const UserIDContextKey = "userID"

// SessionRequired rejects requests made without a cached session. Guest
// sessions pass.
func SessionRequired(sessions SessionState) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sessions.Authenticated() {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set(UserIDContextKey, sessions.UserID())
		c.Next()
	}
}
