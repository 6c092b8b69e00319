package routes

import (
	"regexp"

	"github.com/Aqil0709/aaisaheb-vastram-backend/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)

// SetupRoutes is the single entry-point that wires up the public, user and
// admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	registerValidations()

	SetupAuthRoutes(r, db, cfg)
	SetupUserRoutes(r, db, cfg)
	SetupAdminRoutes(r, db, cfg)
}

// registerValidations adds the custom binding rules used by the input
// structs. Safe to call more than once.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
			return mobilePattern.MatchString(fl.Field().String())
		})
	}
}
