package productcontroller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Aqil0709/aaisaheb-vastram-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeleteProduct removes a product, its stock row and its image files. The
// stock row goes first inside the transaction (it references the product);
// files are removed only after the commit.
// DELETE /api/products/:productId
func DeleteProduct(db *gorm.DB, uploadDir string) gin.HandlerFunc {
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
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while deleting product."})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Delete(&models.Stock{}, "product_id = ?", product.ID).Error; err != nil {
				return err
			}
			return tx.Delete(&product).Error
		})
		if err != nil {
			log.Printf("❌ Failed to delete product %d: %v", product.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while deleting product."})
			return
		}

		removeImageFiles(uploadDir, product.ImageList())
		log.Printf("🗑️ Product deleted: %d (%s)", product.ID, product.Name)
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully."})
	}
}
