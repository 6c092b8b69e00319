package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Aqil0709/aaisaheb-vastram-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProductByID returns a single product with its image list and quantity.
// GET /api/products/:productId
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("productId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID."})
			return
		}

		var product models.Product
		if err := db.First(&product, uint(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching product."})
			return
		}

		var stock models.Stock
		quantity := 0
		if err := db.First(&stock, "product_id = ?", product.ID).Error; err == nil {
			quantity = stock.Quantity
		}

		c.JSON(http.StatusOK, buildProductResponse(&product, quantity))
	}
}
