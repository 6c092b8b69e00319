package productcontroller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Aqil0709/aaisaheb-vastram-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpdateProduct rewrites a catalog entry. Image resolution, in priority
// order: new uploads replace the whole list, an "existingImages" retention
// list keeps only the URLs it names, otherwise the list is untouched. Files
// for dropped URLs are deleted only after the database write commits.
// PUT /api/products/:productId
func UpdateProduct(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("productId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID."})
			return
		}

		var product models.Product
		if err := db.First(&product, uint(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found for update."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while updating product."})
			return
		}

		name := c.PostForm("name")
		category := c.PostForm("category")
		priceStr := c.PostForm("price")
		if name == "" || category == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Name, category and price are required."})
			return
		}

		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid price."})
			return
		}

		originalPrice := price
		if s := c.PostForm("originalPrice"); s != "" {
			if originalPrice, err = decimal.NewFromString(s); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid original price."})
				return
			}
		}

		var quantity *int
		if s := c.PostForm("quantity"); s != "" {
			q, err := strconv.Atoi(s)
			if err != nil || q < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid quantity."})
				return
			}
			quantity = &q
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid multipart form."})
			return
		}

		currentImages := product.ImageList()
		newImages := currentImages
		var savedImages, droppedImages []string

		files := form.File[imageField]
		switch {
		case len(files) > 0:
			if err := validateImageFiles(files); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			savedImages, err = saveProductImages(c, files, uploadDir)
			if err != nil {
				log.Printf("❌ Failed to store product images: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while updating product."})
				return
			}
			newImages = savedImages
			droppedImages = currentImages

		case c.PostForm("existingImages") != "":
			var retained []string
			if err := json.Unmarshal([]byte(c.PostForm("existingImages")), &retained); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid existingImages list."})
				return
			}
			keep := make(map[string]bool, len(retained))
			for _, u := range retained {
				keep[u] = true
			}
			newImages = nil
			for _, u := range currentImages {
				if keep[u] {
					newImages = append(newImages, u)
				} else {
					droppedImages = append(droppedImages, u)
				}
			}
		}

		if len(newImages) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "A product must keep at least one image."})
			return
		}

		product.Name = name
		product.Category = category
		product.Price = price
		product.OriginalPrice = originalPrice
		product.Description = c.PostForm("description")
		product.Images = models.EncodeImages(newImages)

		finalQuantity := 0
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			var stock models.Stock
			if err := tx.First(&stock, "product_id = ?", product.ID).Error; err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
				stock = models.Stock{ProductID: product.ID}
			}
			if quantity != nil {
				stock.Quantity = *quantity
			}
			stock.ProductName = product.Name
			finalQuantity = stock.Quantity
			return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&stock).Error
		})
		if err != nil {
			removeImageFiles(uploadDir, savedImages)
			log.Printf("❌ Failed to update product %d: %v", product.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while updating product."})
			return
		}

		removeImageFiles(uploadDir, droppedImages)
		c.JSON(http.StatusOK, buildProductResponse(&product, finalQuantity))
	}
}
