package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salimdiab/pos-console/internal/application/service"
	"github.com/salimdiab/pos-console/internal/domain/repository"
	"github.com/salimdiab/pos-console/internal/session"
	"github.com/salimdiab/pos-console/pkg/apperror"
)

// UserHandler handles the user administration screen.
type UserHandler struct {
	userService *service.UserService
	sess        *session.Session
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService *service.UserService, sess *session.Session) *UserHandler {
	return &UserHandler{userService: userService, sess: sess}
}

type userForm struct {
	Username string  `form:"username" binding:"required"`
	Type     string  `form:"type" binding:"required"`
	Password string  `form:"password"`
	Salary   float64 `form:"salary"`
}

func (f *userForm) input() *repository.UserInput {
	return &repository.UserInput{
		Username: f.Username,
		Type:     f.Type,
		Password: f.Password,
		Salary:   f.Salary,
	}
}

// List renders the user table.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		failPage(c, h.sess, err)
		return
	}
	c.HTML(http.StatusOK, "users", view(c, h.sess, "users", gin.H{"Users": users}))
}

// Create adds a user and returns to the table.
func (h *UserHandler) Create(c *gin.Context) {
	var form userForm
	if err := c.ShouldBind(&form); err != nil {
		failAction(c, "/users", apperror.NewBadRequestError("Username and role are required"))
		return
	}
	if err := h.userService.Create(c.Request.Context(), form.input()); err != nil {
		failAction(c, "/users", err)
		return
	}
	setFlash(c, "success", "User created successfully")
	c.Redirect(http.StatusFound, "/users")
}

// Update changes an existing user. An empty password keeps the current one.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		failAction(c, "/users", apperror.ErrBadRequest)
		return
	}
	var form userForm
	if err := c.ShouldBind(&form); err != nil {
		failAction(c, "/users", apperror.NewBadRequestError("Username and role are required"))
		return
	}
	if err := h.userService.Update(c.Request.Context(), id, form.input()); err != nil {
		failAction(c, "/users", err)
		return
	}
	setFlash(c, "success", "User updated successfully")
	c.Redirect(http.StatusFound, "/users")
}

// Delete removes a user.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		failAction(c, "/users", apperror.ErrBadRequest)
		return
	}
	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		failAction(c, "/users", err)
		return
	}
	setFlash(c, "success", "User deleted")
	c.Redirect(http.StatusFound, "/users")
}
