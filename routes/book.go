package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	bookControllers "github.com/Sushmitaa07/KitaabCart/controllers/book"
)

// SetupBookRoutes registers the public catalog endpoints.
func SetupBookRoutes(api *gin.RouterGroup, db *gorm.DB) {
	books := api.Group("/books")
	{
		books.GET("", bookControllers.GetBooks(db))
		books.GET("/:id", bookControllers.GetBookByID(db))
	}
}
