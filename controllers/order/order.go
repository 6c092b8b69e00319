package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Aqil0709/aaisaheb-vastram-backend/middleware"
	"github.com/Aqil0709/aaisaheb-vastram-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	errCartEmpty         = errors.New("cart is empty")
	errInsufficientStock = errors.New("insufficient stock")
)

type OrderItemResponse struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type OrderResponse struct {
	ID        uint                `json:"id"`
	Reference string              `json:"reference"`
	Status    string              `json:"status"`
	Total     float64             `json:"total"`
	Items     []OrderItemResponse `json:"items"`
	CreatedAt time.Time           `json:"created_at"`
}

func buildOrderResponse(o *models.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price.InexactFloat64(),
			Quantity:  item.Quantity,
		}
	}
	return OrderResponse{
		ID:        o.ID,
		Reference: o.Reference,
		Status:    o.Status,
		Total:     o.Total.InexactFloat64(),
		Items:     items,
		CreatedAt: o.CreatedAt,
	}
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// PlaceOrder turns the caller's cart into an order: snapshots every line,
// deducts stock and clears the cart in one transaction. The stock deduction
// is a conditional update, so a line with more quantity than stock rolls the
// whole order back.
// POST /api/orders
func PlaceOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized."})
			return
		}

		var order models.Order
		err := db.Transaction(func(tx *gorm.DB) error {
			var cartItems []models.CartItem
			if err := tx.Where("user_id = ?", userID).Order("id").Find(&cartItems).Error; err != nil {
				return err
			}
			if len(cartItems) == 0 {
				return errCartEmpty
			}

			total := decimal.Zero
			orderItems := make([]models.OrderItem, 0, len(cartItems))
			for _, item := range cartItems {
				result := tx.Model(&models.Stock{}).
					Where("product_id = ? AND quantity >= ?", item.ProductID, item.Quantity).
					Update("quantity", gorm.Expr("quantity - ?", item.Quantity))
				if result.Error != nil {
					return result.Error
				}
				if result.RowsAffected == 0 {
					return fmt.Errorf("%w for product %q", errInsufficientStock, item.Name)
				}

				total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
				orderItems = append(orderItems, models.OrderItem{
					ProductID: item.ProductID,
					Name:      item.Name,
					Price:     item.Price,
					Quantity:  item.Quantity,
				})
			}

			order = models.Order{
				Reference: generateOrderRef(),
				UserID:    userID,
				Items:     orderItems,
				Total:     total,
				Status:    models.OrderStatusPending,
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
		})
		if err != nil {
			switch {
			case errors.Is(err, errCartEmpty):
				c.JSON(http.StatusBadRequest, gin.H{"message": "Cart is empty."})
			case errors.Is(err, errInsufficientStock):
				c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while placing order."})
			}
			return
		}

		c.JSON(http.StatusCreated, buildOrderResponse(&order))
	}
}

// GET /api/orders
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized."})
			return
		}

		var orders []models.Order
		if err := db.Preload("Items").Where("user_id = ?", userID).
			Order("created_at DESC, id DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching orders."})
			return
		}

		responses := make([]OrderResponse, len(orders))
		for i := range orders {
			responses[i] = buildOrderResponse(&orders[i])
		}
		c.JSON(http.StatusOK, responses)
	}
}
