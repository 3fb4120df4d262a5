package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sushmitaa07/KitaabCart/config"
)

// SetupRoutes is the single entry point that wires up the public, buyer and
// admin route groups under /api.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	api := r.Group("/api")

	SetupAuthRoutes(api, db, cfg)
	SetupBookRoutes(api, db)
	SetupCartRoutes(api, db, cfg)
	SetupOrderRoutes(api, db, cfg)
	SetupAdminRoutes(api, db, cfg)
}
