package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sushmitaa07/KitaabCart/config"
	authControllers "github.com/Sushmitaa07/KitaabCart/controllers/auth"
)

// SetupAuthRoutes registers the public /api/auth/* endpoints.
func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authControllers.Register(db))
		authGroup.POST("/login", authControllers.Login(db, cfg.JWT))
	}
}
