package orderControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Aqil0709/aaisaheb-vastram-backend/config"
	"github.com/Aqil0709/aaisaheb-vastram-backend/models"
	"github.com/Aqil0709/aaisaheb-vastram-backend/routes"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	cfg := &config.Config{JWTSecret: testSecret, UploadDir: t.TempDir()}
	r := gin.New()
	routes.SetupRoutes(r, db, cfg)
	return r, db
}

func seedUser(t *testing.T, db *gorm.DB, mobile string) (models.User, string) {
	t.Helper()
	user := models.User{Name: "Tester", MobileNumber: mobile, Password: "irrelevant", Role: models.RoleUser}
	require.NoError(t, db.Create(&user).Error)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": user.ID,
		"role":   user.Role,
		"exp":    time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return user, signed
}

func seedProductWithStock(t *testing.T, db *gorm.DB, name string, price float64, quantity int) models.Product {
	t.Helper()
	product := models.Product{
		Name:          name,
		Category:      "sarees",
		Price:         decimal.NewFromFloat(price),
		OriginalPrice: decimal.NewFromFloat(price),
		Images:        models.EncodeImages([]string{"http://host/public/uploads/seed.png"}),
	}
	require.NoError(t, db.Create(&product).Error)
	require.NoError(t, db.Create(&models.Stock{ProductID: product.ID, Quantity: quantity, ProductName: name}).Error)
	return product
}

func seedCartLine(t *testing.T, db *gorm.DB, user models.User, product models.Product, quantity int) {
	t.Helper()
	line := models.CartItem{
		UserID:    user.ID,
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
	}
	require.NoError(t, db.Create(&line).Error)
}

func do(router *gin.Engine, method, url, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, url, &bytes.Buffer{})
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestPlaceOrderSnapshotsCartAndDeductsStock(t *testing.T) {
	router, db := setupRouter(t)
	user, token := seedUser(t, db, "9000000030")
	product := seedProductWithStock(t, db, "Silk Saree", 1200, 5)
	seedCartLine(t, db, user, product, 3)

	w := do(router, http.MethodPost, "/api/orders", token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["reference"])
	assert.Equal(t, "pending", resp["status"])
	assert.EqualValues(t, 3600, resp["total"])
	require.Len(t, resp["items"].([]interface{}), 1)

	// Stock deducted, cart cleared.
	var stock models.Stock
	require.NoError(t, db.First(&stock, "product_id = ?", product.ID).Error)
	assert.Equal(t, 2, stock.Quantity)

	var cartCount int64
	db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount)
	assert.Zero(t, cartCount)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	router, db := setupRouter(t)
	_, token := seedUser(t, db, "9000000030")

	w := do(router, http.MethodPost, "/api/orders", token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaceOrderInsufficientStockRollsBack(t *testing.T) {
	router, db := setupRouter(t)
	user, token := seedUser(t, db, "9000000030")
	inStock := seedProductWithStock(t, db, "Silk Saree", 1200, 5)
	scarce := seedProductWithStock(t, db, "Rare Saree", 4500, 1)
	seedCartLine(t, db, user, inStock, 2)
	seedCartLine(t, db, user, scarce, 3)

	w := do(router, http.MethodPost, "/api/orders", token)
	require.Equal(t, http.StatusConflict, w.Code)

	// Neither stock row changed and the cart is intact.
	var stock models.Stock
	require.NoError(t, db.First(&stock, "product_id = ?", inStock.ID).Error)
	assert.Equal(t, 5, stock.Quantity)
	stock = models.Stock{}
	require.NoError(t, db.First(&stock, "product_id = ?", scarce.ID).Error)
	assert.Equal(t, 1, stock.Quantity)

	var cartCount int64
	db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount)
	assert.EqualValues(t, 2, cartCount)

	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	assert.Zero(t, orderCount)
}

func TestGetOrdersListsOwnOrdersOnly(t *testing.T) {
	router, db := setupRouter(t)
	user, token := seedUser(t, db, "9000000030")
	other, otherToken := seedUser(t, db, "9000000031")
	product := seedProductWithStock(t, db, "Silk Saree", 1200, 10)

	seedCartLine(t, db, user, product, 1)
	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/orders", token).Code)

	seedCartLine(t, db, other, product, 2)
	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/orders", otherToken).Code)

	w := do(router, http.MethodGet, "/api/orders", token)
	require.Equal(t, http.StatusOK, w.Code)

	var orders []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.EqualValues(t, 1200, orders[0]["total"])
}
