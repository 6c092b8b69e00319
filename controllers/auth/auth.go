package authControllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Aqil0709/aaisaheb-vastram-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterInput struct {
	MobileNumber string `json:"mobileNumber" binding:"required,mobile"`
	Password     string `json:"password" binding:"required,min=6"`
	Name         string `json:"name"`
}

type LoginInput struct {
	MobileNumber string `json:"mobileNumber" binding:"required"`
	Password     string `json:"password" binding:"required"`
}

// signToken issues the session token: user id + role, one hour expiry.
func signToken(user *models.User, jwtSecret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": user.ID,
		"role":   user.Role,
		"exp":    time.Now().Add(time.Hour).Unix(),
	})
	return token.SignedString([]byte(jwtSecret))
}

// POST /auth/register
func Register(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Mobile number and password are required."})
			return
		}

		var existing models.User
		if err := db.Where("mobile_number = ?", input.MobileNumber).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"message": "User with this mobile number already exists."})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during registration."})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during registration."})
			return
		}

		name := input.Name
		if name == "" {
			name = input.MobileNumber
		}

		user := models.User{
			Name:         name,
			MobileNumber: input.MobileNumber,
			Password:     string(hash),
			Role:         models.RoleUser,
		}
		if err := db.Create(&user).Error; err != nil {
			// The pre-check above races with concurrent registrations; the
			// unique index has the final say.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"message": "User with this mobile number already exists."})
				return
			}
			log.Printf("❌ Registration insert failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during registration."})
			return
		}

		token, err := signToken(&user, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during registration."})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":           user.ID,
			"name":         user.Name,
			"mobileNumber": user.MobileNumber,
			"role":         user.Role,
			"token":        token,
			"message":      "Registration successful.",
		})
	}
}

// POST /auth/login
func Login(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Mobile number and password are required."})
			return
		}

		var user models.User
		if err := db.Where("mobile_number = ?", input.MobileNumber).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials."})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials."})
			return
		}

		token, err := signToken(&user, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during login."})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":           user.ID,
			"name":         user.Name,
			"mobileNumber": user.MobileNumber,
			"role":         user.Role,
			"token":        token,
			"message":      "Login successful.",
		})
	}
}
