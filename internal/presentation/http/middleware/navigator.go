package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salimdiab/pos-console/internal/gateway"
)

// ginNavigator adapts a gin request to the gateway's Navigator: the current
// browser location and the ability to send the user elsewhere.
type ginNavigator struct {
	c *gin.Context
}

func (n *ginNavigator) CurrentPath() string {
	return n.c.Request.URL.Path
}

func (n *ginNavigator) Redirect(path string) {
	n.c.Redirect(http.StatusFound, path)
	n.c.Abort()
}

// WithNavigator attaches a per-request navigator to the request context so
// the gateway's 401 handler can redirect the browser to the login screen.
func WithNavigator() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := gateway.WithNavigator(c.Request.Context(), &ginNavigator{c: c})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
