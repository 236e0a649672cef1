package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salimdiab/pos-console/internal/application/service"
	"github.com/salimdiab/pos-console/internal/session"
	"github.com/salimdiab/pos-console/pkg/apperror"
)

// ReceiptHandler handles the sale-entry screen.
type ReceiptHandler struct {
	receiptService *service.ReceiptService
	authService    *service.AuthService
	sess           *session.Session
}

// NewReceiptHandler creates a new receipt handler.
func NewReceiptHandler(receiptService *service.ReceiptService, authService *service.AuthService, sess *session.Session) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService, authService: authService, sess: sess}
}

// Show renders the receipt form with the cashier's name in the header.
func (h *ReceiptHandler) Show(c *gin.Context) {
	form, err := h.receiptService.Form(c.Request.Context())
	if err != nil {
		failPage(c, h.sess, err)
		return
	}

	cashier := "-"
	if user, err := h.authService.CurrentUser(c.Request.Context()); err == nil {
		cashier = user.DisplayName()
	} else if c.IsAborted() || c.Writer.Written() {
		return
	}

	c.HTML(http.StatusOK, "receipt", view(c, h.sess, "receipt", gin.H{
		"Form":    form,
		"Cashier": cashier,
	}))
}

type lineEditForm struct {
	Index int    `form:"index"`
	Field string `form:"field" binding:"required"`
	Value string `form:"value"`
}

// EditLine applies one field edit and re-renders the form.
func (h *ReceiptHandler) EditLine(c *gin.Context) {
	var form lineEditForm
	if err := c.ShouldBind(&form); err != nil {
		failAction(c, "/receipt", apperror.ErrBadRequest)
		return
	}
	if err := h.receiptService.EditLine(c.Request.Context(), form.Index, form.Field, form.Value); err != nil {
		failAction(c, "/receipt", err)
		return
	}
	c.Redirect(http.StatusFound, "/receipt")
}

// Submit sends the receipt to the backend. On success the form is reset and
// the user told so; on failure the form keeps its lines.
func (h *ReceiptHandler) Submit(c *gin.Context) {
	if err := h.receiptService.Submit(c.Request.Context()); err != nil {
		failAction(c, "/receipt", err)
		return
	}
	setFlash(c, "success", "Receipt saved successfully")
	c.Redirect(http.StatusFound, "/receipt")
}

// Reset empties the form without submitting.
func (h *ReceiptHandler) Reset(c *gin.Context) {
	h.receiptService.Reset()
	c.Redirect(http.StatusFound, "/receipt")
}
