package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salimdiab/pos-console/internal/application/service"
	"github.com/salimdiab/pos-console/internal/session"
	"github.com/salimdiab/pos-console/pkg/apperror"
)

// CategoryHandler handles the category tree screen.
type CategoryHandler struct {
	categoryService *service.CategoryService
	sess            *session.Session
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categoryService *service.CategoryService, sess *session.Session) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, sess: sess}
}

type categoryNameForm struct {
	Name string `form:"name" binding:"required"`
}

type subcategoryNameForm struct {
	Name       string `form:"name" binding:"required"`
	CategoryID int64  `form:"category_id" binding:"required"`
}

// List renders categories with their subcategories grouped underneath.
func (h *CategoryHandler) List(c *gin.Context) {
	tree, err := h.categoryService.Tree(c.Request.Context())
	if err != nil {
		failPage(c, h.sess, err)
		return
	}
	c.HTML(http.StatusOK, "categories", view(c, h.sess, "categories", gin.H{"Tree": tree}))
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var form categoryNameForm
	if err := c.ShouldBind(&form); err != nil {
		failAction(c, "/categories", apperror.NewBadRequestError("Category name is required"))
		return
	}
	if err := h.categoryService.CreateCategory(c.Request.Context(), form.Name); err != nil {
		failAction(c, "/categories", err)
		return
	}
	setFlash(c, "success", "Category created")
	c.Redirect(http.StatusFound, "/categories")
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		failAction(c, "/categories", apperror.ErrBadRequest)
		return
	}
	var form categoryNameForm
	if err := c.ShouldBind(&form); err != nil {
		failAction(c, "/categories", apperror.NewBadRequestError("Category name is required"))
		return
	}
	if err := h.categoryService.UpdateCategory(c.Request.Context(), id, form.Name); err != nil {
		failAction(c, "/categories", err)
		return
	}
	setFlash(c, "success", "Category updated")
	c.Redirect(http.StatusFound, "/categories")
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		failAction(c, "/categories", apperror.ErrBadRequest)
		return
	}
	if err := h.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		failAction(c, "/categories", err)
		return
	}
	setFlash(c, "success", "Category deleted")
	c.Redirect(http.StatusFound, "/categories")
}

func (h *CategoryHandler) CreateSubcategory(c *gin.Context) {
	var form subcategoryNameForm
	if err := c.ShouldBind(&form); err != nil {
		failAction(c, "/categories", apperror.NewBadRequestError("Subcategory name and parent are required"))
		return
	}
	if err := h.categoryService.CreateSubcategory(c.Request.Context(), form.Name, form.CategoryID); err != nil {
		failAction(c, "/categories", err)
		return
	}
	setFlash(c, "success", "Subcategory created")
	c.Redirect(http.StatusFound, "/categories")
}

func (h *CategoryHandler) UpdateSubcategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		failAction(c, "/categories", apperror.ErrBadRequest)
		return
	}
	var form subcategoryNameForm
	if err := c.ShouldBind(&form); err != nil {
		failAction(c, "/categories", apperror.NewBadRequestError("Subcategory name and parent are required"))
		return
	}
	if err := h.categoryService.UpdateSubcategory(c.Request.Context(), id, form.Name, form.CategoryID); err != nil {
		failAction(c, "/categories", err)
		return
	}
	setFlash(c, "success", "Subcategory updated")
	c.Redirect(http.StatusFound, "/categories")
}

func (h *CategoryHandler) DeleteSubcategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		failAction(c, "/categories", apperror.ErrBadRequest)
		return
	}
	if err := h.categoryService.DeleteSubcategory(c.Request.Context(), id); err != nil {
		failAction(c, "/categories", err)
		return
	}
	setFlash(c, "success", "Subcategory deleted")
	c.Redirect(http.StatusFound, "/categories")
}
