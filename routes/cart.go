package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sushmitaa07/KitaabCart/config"
	cartControllers "github.com/Sushmitaa07/KitaabCart/controllers/cart"
	"github.com/Sushmitaa07/KitaabCart/middleware"
)

// SetupCartRoutes registers the buyer cart endpoints. Requires a token.
func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	cart := api.Group("/cart")
	cart.Use(middleware.ValidateToken(cfg.JWT.Secret))
	{
		cart.GET("", cartControllers.GetUserCart(db))
		cart.POST("", cartControllers.AddCartItem(db))
		cart.DELETE("/:id", cartControllers.RemoveCartItem(db))
		cart.DELETE("", cartControllers.ClearUserCart(db))
	}
}
