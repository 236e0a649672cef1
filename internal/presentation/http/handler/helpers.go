package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/salimdiab/pos-console/internal/authz"
	"github.com/salimdiab/pos-console/internal/session"
	"github.com/salimdiab/pos-console/pkg/apperror"
)

const flashCookie = "flash"

// Flash is a one-shot notification shown on the next rendered screen.
type Flash struct {
	Kind    string // "success" or "error"
	Message string
}

// setFlash stores a transient notification in a short-lived cookie.
func setFlash(c *gin.Context, kind, message string) {
	c.SetCookie(flashCookie, url.QueryEscape(kind+"|"+message), 30, "/", "", false, true)
}

// takeFlash reads and clears the pending notification, if any.
func takeFlash(c *gin.Context) *Flash {
	raw, err := c.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil
	}
	for i := 0; i < len(decoded); i++ {
		if decoded[i] == '|' {
			return &Flash{Kind: decoded[:i], Message: decoded[i+1:]}
		}
	}
	return &Flash{Kind: "success", Message: decoded}
}

// view assembles the data every screen template shares: the active nav
// entry, the flash, and the capability booleans that decide which nav
// entries and edit controls render.
func view(c *gin.Context, sess *session.Session, active string, extra gin.H) gin.H {
	data := gin.H{
		"Active":           active,
		"Flash":            takeFlash(c),
		"UserType":         sess.UserType(),
		"CanViewDashboard": authz.Can(sess, authz.ViewDashboard),
		"CanViewProfits":   authz.Can(sess, authz.ViewProfits),
		"CanViewProducts":  authz.Can(sess, authz.ViewProducts),
		"CanEditProducts":  authz.Can(sess, authz.ManageProducts),
		"CanViewCats":      authz.Can(sess, authz.ViewCategories),
		"CanEditCats":      authz.Can(sess, authz.ManageCategories),
		"CanManageUsers":   authz.Can(sess, authz.ManageUsers),
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// failPage renders the error screen for a failed page load. When the
// gateway's 401 handler already redirected, nothing more happens here.
func failPage(c *gin.Context, sess *session.Session, err error) {
	if c.IsAborted() || c.Writer.Written() {
		return
	}
	appErr := apperror.GetAppError(err)
	c.HTML(appErr.Code, "error", view(c, sess, "", gin.H{"Message": appErr.Message}))
}

// failAction flashes the error and sends the user back to a screen. Used by
// form submissions, so the screen stays usable after any failure.
func failAction(c *gin.Context, back string, err error) {
	if c.IsAborted() || c.Writer.Written() {
		return
	}
	setFlash(c, "error", apperror.GetAppError(err).Message)
	c.Redirect(http.StatusFound, back)
}

// paramID parses a numeric path parameter.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
