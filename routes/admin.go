package routes

import (
	"github.com/Aqil0709/aaisaheb-vastram-backend/config"
	productcontroller "github.com/Aqil0709/aaisaheb-vastram-backend/controllers/product"
	stockControllers "github.com/Aqil0709/aaisaheb-vastram-backend/controllers/stock"
	"github.com/Aqil0709/aaisaheb-vastram-backend/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers the catalog and stock mutations. They require a
// JWT whose role claim is admin.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	adminGroup := r.Group("/api")
	adminGroup.Use(middleware.ValidateToken(cfg.JWTSecret), middleware.RequireAdmin())
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db, cfg.UploadDir))
			productAdmin.PUT("/:productId", productcontroller.UpdateProduct(db, cfg.UploadDir))
			productAdmin.DELETE("/:productId", productcontroller.DeleteProduct(db, cfg.UploadDir))
		}

		// ─────────── Stock Management ───────────
		stockAdmin := adminGroup.Group("/stock")
		{
			stockAdmin.GET("", stockControllers.GetStock(db))
			stockAdmin.PUT("/:productId", stockControllers.UpdateStock(db))
		}
	}
}
