package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salimdiab/pos-console/internal/authz"
	"github.com/salimdiab/pos-console/internal/session"
)

// RequireSession redirects signed-out visitors to the login screen.
func RequireSession(sess *session.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sess.Authenticated() {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireCapability bounces users whose role lacks the capability back to
// their landing screen. The policy itself lives in the authz package.
func RequireCapability(sess *session.Session, capability authz.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authz.Can(sess, capability) {
			c.Redirect(http.StatusFound, authz.LandingPath(sess))
			c.Abort()
			return
		}
		c.Next()
	}
}
