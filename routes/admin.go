package routes

import (
	catalogControllers "github.com/TeamCharles/user-auth/controllers/catalog"
	productControllers "github.com/TeamCharles/user-auth/controllers/product"
	"github.com/TeamCharles/user-auth/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers reference-data seeding and reporting
// endpoints guarded by the X-API-KEY header.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.POST("/types", catalogControllers.CreateProductType(db))
		adminGroup.POST("/subtypes", catalogControllers.CreateProductSubType(db))
		adminGroup.GET("/products/export", productControllers.ExportProductsToExcel(db))
	}
}
