package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/salimdiab/pos-console/internal/application/service"
	"github.com/salimdiab/pos-console/internal/domain/repository"
	"github.com/salimdiab/pos-console/internal/session"
	"github.com/salimdiab/pos-console/pkg/apperror"
)

// ProductHandler handles the inventory screen.
type ProductHandler struct {
	productService *service.ProductService
	sess           *session.Session
}

// NewProductHandler creates a new product handler.
func NewProductHandler(productService *service.ProductService, sess *session.Session) *ProductHandler {
	return &ProductHandler{productService: productService, sess: sess}
}

type productFilterForm struct {
	Page          int    `form:"page"`
	Query         string `form:"q"`
	SubcategoryID int64  `form:"sub"`
}

type productForm struct {
	Code            string  `form:"code" binding:"required"`
	Name            string  `form:"name" binding:"required"`
	SubcategoryID   int64   `form:"subcategory_id" binding:"required"`
	Price           float64 `form:"price" binding:"min=0"`
	ManufacturerID  int64   `form:"manufacture_id"`
	ImportCompanyID int64   `form:"import_company_id"`
	Minimum         int     `form:"minimum" binding:"min=0"`
}

func (f *productForm) input() *repository.ProductInput {
	return &repository.ProductInput{
		Code:            f.Code,
		Name:            f.Name,
		SubcategoryID:   f.SubcategoryID,
		Price:           f.Price,
		ManufacturerID:  f.ManufacturerID,
		ImportCompanyID: f.ImportCompanyID,
		Minimum:         f.Minimum,
	}
}

// List renders the product listing with optional search and subcategory
// filter, plus the dropdown data for the create/edit form.
func (h *ProductHandler) List(c *gin.Context) {
	var filter productFilterForm
	if err := c.ShouldBindQuery(&filter); err != nil {
		failPage(c, h.sess, apperror.ErrBadRequest)
		return
	}

	page, err := h.productService.List(c.Request.Context(), &service.ListInput{
		Page:          filter.Page,
		Query:         filter.Query,
		SubcategoryID: filter.SubcategoryID,
	})
	if err != nil {
		failPage(c, h.sess, err)
		return
	}

	refs, err := h.productService.Refs(c.Request.Context())
	if err != nil {
		failPage(c, h.sess, err)
		return
	}

	c.HTML(http.StatusOK, "products", view(c, h.sess, "products", gin.H{
		"Page":  page,
		"Refs":  refs,
		"Query": filter.Query,
		"Sub":   filter.SubcategoryID,
	}))
}

// Create adds a product and returns to the listing.
func (h *ProductHandler) Create(c *gin.Context) {
	var form productForm
	if err := c.ShouldBind(&form); err != nil {
		failAction(c, "/products", apperror.NewBadRequestError("Please fill in the product form completely"))
		return
	}
	if err := h.productService.Create(c.Request.Context(), form.input()); err != nil {
		failAction(c, "/products", err)
		return
	}
	setFlash(c, "success", "Product created successfully!")
	c.Redirect(http.StatusFound, "/products")
}

// Update changes an existing product and returns to the listing.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		failAction(c, "/products", apperror.ErrBadRequest)
		return
	}
	var form productForm
	if err := c.ShouldBind(&form); err != nil {
		failAction(c, "/products", apperror.NewBadRequestError("Please fill in the product form completely"))
		return
	}
	if err := h.productService.Update(c.Request.Context(), id, form.input()); err != nil {
		failAction(c, "/products", err)
		return
	}
	setFlash(c, "success", "Product updated successfully!")
	c.Redirect(http.StatusFound, "/products")
}

// Delete removes a product and returns to the listing page the user was on.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		failAction(c, "/products", apperror.ErrBadRequest)
		return
	}
	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		failAction(c, "/products", err)
		return
	}

	back := "/products"
	if page, err := strconv.Atoi(c.PostForm("page")); err == nil && page > 1 {
		back = "/products?page=" + strconv.Itoa(page)
	}
	setFlash(c, "success", "Product deleted")
	c.Redirect(http.StatusFound, back)
}
