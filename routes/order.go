package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sushmitaa07/KitaabCart/config"
	orderControllers "github.com/Sushmitaa07/KitaabCart/controllers/order"
	"github.com/Sushmitaa07/KitaabCart/middleware"
)

// SetupOrderRoutes registers the buyer order endpoints. Requires a token.
func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	orders := api.Group("/orders")
	orders.Use(middleware.ValidateToken(cfg.JWT.Secret))
	{
		orders.POST("", orderControllers.PlaceOrderHandler(db))
		orders.GET("/user", orderControllers.GetUserOrdersHandler(db))
		orders.GET("/latest", orderControllers.GetLatestOrderHandler(db))
	}
}
