package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public catalog,
// the authenticated shopper surface, and the API-key-protected admin group.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public browse routes (no auth, matching the storefront's anonymous
	// catalog pages)
	SetupCatalogRoutes(r, db)

	// Shopper routes (JWT-protected): cart, checkout, products, payment types
	SetupUserRoutes(r, db)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db)
}
