package routes

import (
	"github.com/Aqil0709/aaisaheb-vastram-backend/config"
	authControllers "github.com/Aqil0709/aaisaheb-vastram-backend/controllers/auth"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers the public "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authControllers.Register(db, cfg.JWTSecret))
		authGroup.POST("/login", authControllers.Login(db, cfg.JWTSecret))
	}
}
