package productcontroller

import (
	"net/http"

	"github.com/Aqil0709/aaisaheb-vastram-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProducts returns the whole catalog, newest first, each entry joined with
// its stock quantity.
// GET /api/products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("created_at DESC, id DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching products."})
			return
		}

		quantities, err := stockQuantities(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching products."})
			return
		}

		responses := make([]ProductResponse, len(products))
		for i := range products {
			responses[i] = buildProductResponse(&products[i], quantities[products[i].ID])
		}
		c.JSON(http.StatusOK, responses)
	}
}

func stockQuantities(db *gorm.DB) (map[uint]int, error) {
	var stocks []models.Stock
	if err := db.Find(&stocks).Error; err != nil {
		return nil, err
	}
	quantities := make(map[uint]int, len(stocks))
	for _, s := range stocks {
		quantities[s.ProductID] = s.Quantity
	}
	return quantities, nil
}
