package routes

import (
	"github.com/Aqil0709/aaisaheb-vastram-backend/config"
	cartControllers "github.com/Aqil0709/aaisaheb-vastram-backend/controllers/cart"
	orderControllers "github.com/Aqil0709/aaisaheb-vastram-backend/controllers/order"
	productcontroller "github.com/Aqil0709/aaisaheb-vastram-backend/controllers/product"
	profileControllers "github.com/Aqil0709/aaisaheb-vastram-backend/controllers/profile"
	"github.com/Aqil0709/aaisaheb-vastram-backend/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers the public catalog reads and the JWT-protected
// "/api/*" endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// ──────────────── Browse Products (public) ────────────────
	r.GET("/api/products", productcontroller.GetProducts(db))
	r.GET("/api/products/:productId", productcontroller.GetProductByID(db))

	api := r.Group("/api")
	api.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := api.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(db))
			cartGroup.POST("", cartControllers.AddToCart(db))
			cartGroup.PUT("/:itemId", cartControllers.UpdateCartItem(db))
			cartGroup.DELETE("/:itemId", cartControllers.RemoveCartItem(db))
		}

		// ──────────────── Profile & Addresses ────────────────
		profileGroup := api.Group("/profile")
		{
			profileGroup.PUT("/:userId", profileControllers.UpdateProfile(db))
			profileGroup.GET("/:userId/addresses", profileControllers.GetAddresses(db))
			profileGroup.POST("/:userId/addresses", profileControllers.AddAddress(db))
		}

		// ──────────────── Orders ────────────────
		orderGroup := api.Group("/orders")
		{
			orderGroup.POST("", orderControllers.PlaceOrder(db))
			orderGroup.GET("", orderControllers.GetOrders(db))
		}
	}
}
