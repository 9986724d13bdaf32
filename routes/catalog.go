package routes

import (
	catalogControllers "github.com/TeamCharles/user-auth/controllers/catalog"
	checkoutControllers "github.com/TeamCharles/user-auth/controllers/checkout"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCatalogRoutes registers the unauthenticated browse endpoints.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	types := r.Group("/types")
	{
		types.GET("/", catalogControllers.GetProductTypes(db))             // GET /types
		types.GET("/:id/products", catalogControllers.GetProductsByType(db)) // GET /types/:id/products
		types.GET("/:id/subtypes", catalogControllers.GetProductSubTypes(db)) // GET /types/:id/subtypes
	}

	r.GET("/subtypes/:id/products", catalogControllers.GetProductsBySubType(db))

	// websocket feed of completed orders
	r.GET("/orders/ws", checkoutControllers.OrderFeedHandler)
}
