package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sushmitaa07/KitaabCart/config"
	bookControllers "github.com/Sushmitaa07/KitaabCart/controllers/book"
	orderControllers "github.com/Sushmitaa07/KitaabCart/controllers/order"
	userControllers "github.com/Sushmitaa07/KitaabCart/controllers/user"
	"github.com/Sushmitaa07/KitaabCart/middleware"
)

// SetupAdminRoutes registers all /api/admin/* endpoints. Requires a token
// with the admin role.
func SetupAdminRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.ValidateToken(cfg.JWT.Secret), middleware.RequireAdmin)
	{
		// ─────────── Book Management ───────────
		bookAdmin := adminGroup.Group("/books")
		{
			bookAdmin.GET("", bookControllers.GetBooks(db))
			bookAdmin.POST("", bookControllers.CreateBook(db))
			bookAdmin.PUT("/:id", bookControllers.UpdateBook(db))
			bookAdmin.DELETE("/:id", bookControllers.DeleteBook(db))
			bookAdmin.POST("/import-excel", bookControllers.ImportBooksFromExcel(db))
			bookAdmin.GET("/export-excel", bookControllers.ExportBooksToExcel(db))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.PATCH("/:id", orderControllers.UpdateOrderStatusHandler(db))
			orderAdmin.GET("/feed", orderControllers.OrderFeedHandler)
		}

		// ─────────── User Management ───────────
		userAdmin := adminGroup.Group("/users")
		{
			userAdmin.GET("", userControllers.GetAllUsers(db))
			userAdmin.PATCH("/:id", userControllers.UpdateUserRole(db))
			userAdmin.PUT("/:id", userControllers.UpdateUser(db))
			userAdmin.DELETE("/:id", userControllers.DeleteUser(db))
		}
	}
}
