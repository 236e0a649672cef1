package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salimdiab/pos-console/internal/application/service"
	"github.com/salimdiab/pos-console/internal/authz"
	"github.com/salimdiab/pos-console/internal/session"
	"github.com/salimdiab/pos-console/pkg/apperror"
)

// AuthHandler handles the login and logout screens.
type AuthHandler struct {
	authService    *service.AuthService
	receiptService *service.ReceiptService
	sess           *session.Session
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService *service.AuthService, receiptService *service.ReceiptService, sess *session.Session) *AuthHandler {
	return &AuthHandler{authService: authService, receiptService: receiptService, sess: sess}
}

type loginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// ShowLogin renders the sign-in form. Already signed-in visitors go straight
// to their landing screen.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	if h.sess.Authenticated() {
		c.Redirect(http.StatusFound, authz.LandingPath(h.sess))
		return
	}
	c.HTML(http.StatusOK, "login", gin.H{
		"Flash":    takeFlash(c),
		"Error":    "",
		"Username": "",
	})
}

// Login authenticates and redirects to the role's landing screen. Failures
// render the form again with an inline message; the session is left cleared.
func (h *AuthHandler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login", gin.H{
			"Flash":    takeFlash(c),
			"Error":    "Username and password are required",
			"Username": c.PostForm("username"),
		})
		return
	}

	landing, err := h.authService.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		status := http.StatusBadGateway
		if apperror.IsUnauthorized(err) {
			status = http.StatusUnauthorized
		}
		c.HTML(status, "login", gin.H{
			"Flash":    takeFlash(c),
			"Error":    apperror.GetAppError(err).Message,
			"Username": form.Username,
		})
		return
	}

	setFlash(c, "success", "Welcome back!")
	c.Redirect(http.StatusFound, landing)
}

// Logout clears the session and any open receipt form, then returns to the
// login screen. The session is cleared before the redirect is issued.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(); err != nil {
		failAction(c, "/", err)
		return
	}
	h.receiptService.Discard()
	c.Redirect(http.StatusFound, "/login")
}

// Landing forwards the root path to the right place for the visitor.
func (h *AuthHandler) Landing(c *gin.Context) {
	if h.sess.Authenticated() {
		c.Redirect(http.StatusFound, authz.LandingPath(h.sess))
		return
	}
	c.Redirect(http.StatusFound, "/login")
}
