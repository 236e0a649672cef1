package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/salimdiab/pos-console/internal/authz"
	"github.com/salimdiab/pos-console/internal/config"
	"github.com/salimdiab/pos-console/internal/presentation/http/handler"
	"github.com/salimdiab/pos-console/internal/presentation/http/middleware"
	"github.com/salimdiab/pos-console/internal/presentation/http/templates"
	"github.com/salimdiab/pos-console/internal/session"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Dashboard *handler.DashboardHandler
	Product   *handler.ProductHandler
	Category  *handler.CategoryHandler
	User      *handler.UserHandler
	Receipt   *handler.ReceiptHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg  *config.Config
	Sess *session.Session
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()
	router.SetHTMLTemplate(templates.Must())

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))
	router.Use(middleware.WithNavigator())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// Public routes (no session required)
	router.GET("/", h.Auth.Landing)
	router.GET("/login", h.Auth.ShowLogin)
	router.POST("/login", h.Auth.Login)

	// Protected routes (session required)
	protected := router.Group("")
	protected.Use(middleware.RequireSession(deps.Sess))

	registerProtectedRoutes(protected, h, deps)

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	sess := deps.Sess

	protected.POST("/logout", h.Auth.Logout)

	// Sales metrics
	protected.GET("/dashboard",
		middleware.RequireCapability(sess, authz.ViewDashboard), h.Dashboard.Show)
	protected.GET("/profit",
		middleware.RequireCapability(sess, authz.ViewProfits), h.Dashboard.Profit)

	// Inventory
	protected.GET("/products",
		middleware.RequireCapability(sess, authz.ViewProducts), h.Product.List)
	productEdit := protected.Group("", middleware.RequireCapability(sess, authz.ManageProducts))
	{
		productEdit.POST("/products", h.Product.Create)
		productEdit.POST("/products/:id/update", h.Product.Update)
		productEdit.POST("/products/:id/delete", h.Product.Delete)
	}

	// Category tree
	protected.GET("/categories",
		middleware.RequireCapability(sess, authz.ViewCategories), h.Category.List)
	categoryEdit := protected.Group("", middleware.RequireCapability(sess, authz.ManageCategories))
	{
		categoryEdit.POST("/categories", h.Category.CreateCategory)
		categoryEdit.POST("/categories/:id/update", h.Category.UpdateCategory)
		categoryEdit.POST("/categories/:id/delete", h.Category.DeleteCategory)
		categoryEdit.POST("/subcategories", h.Category.CreateSubcategory)
		categoryEdit.POST("/subcategories/:id/update", h.Category.UpdateSubcategory)
		categoryEdit.POST("/subcategories/:id/delete", h.Category.DeleteSubcategory)
	}

	// User administration
	users := protected.Group("", middleware.RequireCapability(sess, authz.ManageUsers))
	{
		users.GET("/users", h.User.List)
		users.POST("/users", h.User.Create)
		users.POST("/users/:id/update", h.User.Update)
		users.POST("/users/:id/delete", h.User.Delete)
	}

	// Sale entry
	receipts := protected.Group("", middleware.RequireCapability(sess, authz.CreateReceipts))
	{
		receipts.GET("/receipt", h.Receipt.Show)
		receipts.POST("/receipt/line", h.Receipt.EditLine)
		receipts.POST("/receipt/submit", h.Receipt.Submit)
		receipts.POST("/receipt/reset", h.Receipt.Reset)
	}
}
