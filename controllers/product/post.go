package productcontroller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Aqil0709/aaisaheb-vastram-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateProduct adds a catalog entry from a multipart form: product fields,
// an initial stock quantity and one or more image files. The product and its
// stock row are written in a single transaction; the uploaded files are
// removed again if that transaction fails.
// POST /api/products
func CreateProduct(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
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

		quantity := 0
		if s := c.PostForm("quantity"); s != "" {
			if quantity, err = strconv.Atoi(s); err != nil || quantity < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid quantity."})
				return
			}
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid multipart form."})
			return
		}
		files := form.File[imageField]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Product image is required."})
			return
		}
		if err := validateImageFiles(files); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		imageURLs, err := saveProductImages(c, files, uploadDir)
		if err != nil {
			log.Printf("❌ Failed to store product images: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while adding product."})
			return
		}

		product := models.Product{
			Name:          name,
			Category:      category,
			Price:         price,
			OriginalPrice: originalPrice,
			Description:   c.PostForm("description"),
			Images:        models.EncodeImages(imageURLs),
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&product).Error; err != nil {
				return err
			}
			stock := models.Stock{
				ProductID:   product.ID,
				Quantity:    quantity,
				ProductName: product.Name,
			}
			return tx.Create(&stock).Error
		})
		if err != nil {
			// Nothing was committed; drop the files so no orphans remain.
			removeImageFiles(uploadDir, imageURLs)
			log.Printf("❌ Failed to create product: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while adding product."})
			return
		}

		c.JSON(http.StatusCreated, buildProductResponse(&product, quantity))
	}
}
