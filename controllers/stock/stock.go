package stockControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Aqil0709/aaisaheb-vastram-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UpdateStockInput struct {
	Quantity *int `json:"quantity" binding:"required,gte=0"`
}

// GET /api/stock
func GetStock(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var stocks []models.Stock
		if err := db.Order("product_id").Find(&stocks).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching stock."})
			return
		}
		c.JSON(http.StatusOK, stocks)
	}
}

// UpdateStock sets a product's available quantity. The stock row is
// recreated if it went missing, carrying the current denormalized name.
// PUT /api/stock/:productId
func UpdateStock(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("productId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID."})
			return
		}

		var input UpdateStockInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "A non-negative quantity is required."})
			return
		}

		var product models.Product
		if err := db.First(&product, uint(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while updating stock."})
			return
		}

		stock := models.Stock{
			ProductID:   product.ID,
			Quantity:    *input.Quantity,
			ProductName: product.Name,
		}
		if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&stock).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while updating stock."})
			return
		}

		c.JSON(http.StatusOK, stock)
	}
}
