package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Aqil0709/aaisaheb-vastram-backend/middleware"
	"github.com/Aqil0709/aaisaheb-vastram-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AddToCartInput struct {
	ProductID uint `json:"id" binding:"required"`
}

type UpdateCartItemInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// CartLine is a cart row enriched with the owning product's live fields.
// Name, price and quantity come from the cart line itself (snapshots);
// images, category, description and originalPrice are joined from the
// product at read time.
type CartLine struct {
	ID            uint     `json:"id"`
	UserID        uint     `json:"user_id"`
	ProductID     uint     `json:"product_id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice"`
	Quantity      int      `json:"quantity"`
	Images        []string `json:"images"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
}

type cartRow struct {
	ID                   uint
	UserID               uint
	ProductID            uint
	Name                 string
	Price                decimal.Decimal
	Quantity             int
	ProductImages        string
	ProductCategory      string
	ProductDescription   string
	ProductOriginalPrice decimal.Decimal
}

// fetchCartLines loads every line of a user's cart, joined with the product
// table. Every mutation below answers with this so the client always sees
// the whole updated cart.
func fetchCartLines(db *gorm.DB, userID uint) ([]CartLine, error) {
	var rows []cartRow
	err := db.Table("cart_items").
		Select(`cart_items.id, cart_items.user_id, cart_items.product_id,
			cart_items.name, cart_items.price, cart_items.quantity,
			products.images AS product_images,
			products.category AS product_category,
			products.description AS product_description,
			products.original_price AS product_original_price`).
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	lines := make([]CartLine, len(rows))
	for i, row := range rows {
		product := models.Product{Images: row.ProductImages}
		lines[i] = CartLine{
			ID:            row.ID,
			UserID:        row.UserID,
			ProductID:     row.ProductID,
			Name:          row.Name,
			Price:         row.Price.InexactFloat64(),
			OriginalPrice: row.ProductOriginalPrice.InexactFloat64(),
			Quantity:      row.Quantity,
			Images:        product.ImageList(),
			Category:      row.ProductCategory,
			Description:   row.ProductDescription,
		}
	}
	return lines, nil
}

func respondWithCart(c *gin.Context, db *gorm.DB, userID uint) {
	lines, err := fetchCartLines(db, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching cart."})
		return
	}
	c.JSON(http.StatusOK, lines)
}

// GET /api/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized."})
			return
		}
		respondWithCart(c, db, userID)
	}
}

// AddToCart takes only a product id; name and price are re-read from the
// catalog so the caller cannot invent them. Insert-or-increment is a single
// upsert on the (user_id, product_id) unique index, so two concurrent adds
// cannot race into two rows or a lost update.
// POST /api/cart
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized."})
			return
		}

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Product ID is required."})
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while adding to cart."})
			return
		}

		item := models.CartItem{
			UserID:    userID,
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  1,
		}
		err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("cart_items.quantity + 1"),
			}),
		}).Create(&item).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while adding to cart."})
			return
		}

		respondWithCart(c, db, userID)
	}
}

// UpdateCartItem sets a line's quantity exactly; zero or below removes the
// line. The line is addressed by its own id, never the product id, and is
// fetched scoped to the caller before anything is written.
// PUT /api/cart/:itemId
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized."})
			return
		}

		itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid cart item ID."})
			return
		}

		var input UpdateCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Quantity is required."})
			return
		}

		var item models.CartItem
		if err := db.Where("id = ? AND user_id = ?", uint(itemID), userID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Cart item not found."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while updating cart item."})
			return
		}

		if *input.Quantity <= 0 {
			if err := db.Delete(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while removing cart item."})
				return
			}
		} else {
			item.Quantity = *input.Quantity
			if err := db.Save(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while updating cart item."})
				return
			}
		}

		respondWithCart(c, db, userID)
	}
}

// RemoveCartItem deletes a line by its id, scoped to the caller.
// DELETE /api/cart/:itemId
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized."})
			return
		}

		itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid cart item ID."})
			return
		}

		result := db.Where("id = ? AND user_id = ?", uint(itemID), userID).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while removing cart item."})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Cart item not found."})
			return
		}

		respondWithCart(c, db, userID)
	}
}
