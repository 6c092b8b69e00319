package authControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Aqil0709/aaisaheb-vastram-backend/config"
	"github.com/Aqil0709/aaisaheb-vastram-backend/models"
	"github.com/Aqil0709/aaisaheb-vastram-backend/routes"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
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

func postJSON(t *testing.T, router *gin.Engine, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterIssuesToken(t *testing.T) {
	router, db := setupRouter(t)

	w := postJSON(t, router, "/auth/register", gin.H{
		"mobileNumber": "9876543210",
		"password":     "secret123",
		"name":         "Asha",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Asha", resp["name"])
	assert.Equal(t, "user", resp["role"])

	// The token must verify against the configured secret and carry the
	// user id and role.
	token, err := jwt.Parse(resp["token"].(string), func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "user", claims["role"])
	assert.EqualValues(t, resp["id"], claims["userId"])

	// The stored password must be a hash, never the plaintext.
	var user models.User
	require.NoError(t, db.First(&user, "mobile_number = ?", "9876543210").Error)
	assert.NotEqual(t, "secret123", user.Password)
}

func TestRegisterDefaultsNameToMobileNumber(t *testing.T) {
	router, _ := setupRouter(t)

	w := postJSON(t, router, "/auth/register", gin.H{
		"mobileNumber": "9876543210",
		"password":     "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "9876543210", resp["name"])
}

func TestRegisterDuplicateMobileConflicts(t *testing.T) {
	router, _ := setupRouter(t)

	payload := gin.H{"mobileNumber": "9876543210", "password": "secret123"}
	require.Equal(t, http.StatusCreated, postJSON(t, router, "/auth/register", payload).Code)
	assert.Equal(t, http.StatusConflict, postJSON(t, router, "/auth/register", payload).Code)
}

func TestRegisterValidation(t *testing.T) {
	router, _ := setupRouter(t)

	// Missing password.
	w := postJSON(t, router, "/auth/register", gin.H{"mobileNumber": "9876543210"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Mobile number that is not ten digits.
	w = postJSON(t, router, "/auth/register", gin.H{"mobileNumber": "12345", "password": "secret123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	router, _ := setupRouter(t)

	require.Equal(t, http.StatusCreated, postJSON(t, router, "/auth/register", gin.H{
		"mobileNumber": "9876543210",
		"password":     "secret123",
	}).Code)

	w := postJSON(t, router, "/auth/login", gin.H{
		"mobileNumber": "9876543210",
		"password":     "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])

	// Wrong password and unknown user both answer 401 with the same message.
	w = postJSON(t, router, "/auth/login", gin.H{
		"mobileNumber": "9876543210",
		"password":     "wrongpass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(t, router, "/auth/login", gin.H{
		"mobileNumber": "9999999999",
		"password":     "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
