package profileControllers

import (
	"net/http"
	"strconv"

	"github.com/Aqil0709/aaisaheb-vastram-backend/middleware"
	"github.com/Aqil0709/aaisaheb-vastram-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateProfileInput struct {
	Name string `json:"name" binding:"required"`
}

type AddAddressInput struct {
	Name        string `json:"name" binding:"required"`
	Mobile      string `json:"mobile" binding:"required,mobile"`
	Pincode     string `json:"pincode" binding:"required"`
	Locality    string `json:"locality" binding:"required"`
	Address     string `json:"address" binding:"required"`
	City        string `json:"city" binding:"required"`
	State       string `json:"state" binding:"required"`
	AddressType string `json:"address_type" binding:"required"`
}

// PublicUser is the profile shape exposed to clients; it never carries the
// password hash.
type PublicUser struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	MobileNumber string `json:"mobileNumber"`
	Role         string `json:"role"`
}

// requireOwner verifies that the authenticated caller is the user named in
// the URL. Handlers bail out when it returns false; the 403 is already
// written.
func requireOwner(c *gin.Context) (uint, bool) {
	targetID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID."})
		return 0, false
	}
	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized."})
		return 0, false
	}
	if callerID != uint(targetID) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden: you can only manage your own profile."})
		return 0, false
	}
	return uint(targetID), true
}

// PUT /api/profile/:userId
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireOwner(c)
		if !ok {
			return
		}

		var input UpdateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Name is required for profile update."})
			return
		}

		result := db.Model(&models.User{}).Where("id = ?", userID).Update("name", input.Name)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while updating profile."})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while updating profile."})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Profile updated successfully!",
			"user": PublicUser{
				ID:           user.ID,
				Name:         user.Name,
				MobileNumber: user.MobileNumber,
				Role:         user.Role,
			},
		})
	}
}

// GET /api/profile/:userId/addresses
func GetAddresses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireOwner(c)
		if !ok {
			return
		}

		var addresses []models.Address
		if err := db.Where("user_id = ?", userID).Order("id").Find(&addresses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching addresses."})
			return
		}
		c.JSON(http.StatusOK, addresses)
	}
}

// POST /api/profile/:userId/addresses
func AddAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireOwner(c)
		if !ok {
			return
		}

		var input AddAddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "All address fields are required."})
			return
		}

		address := models.Address{
			UserID:      userID,
			Name:        input.Name,
			Mobile:      input.Mobile,
			Pincode:     input.Pincode,
			Locality:    input.Locality,
			Address:     input.Address,
			City:        input.City,
			State:       input.State,
			AddressType: input.AddressType,
		}
		if err := db.Create(&address).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while adding address."})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Address added successfully!",
			"address": address,
		})
	}
}
