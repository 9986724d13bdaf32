package catalogControllers

import (
	"net/http"
	"time"

	"github.com/TeamCharles/user-auth/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ProductTypeCount is a product type annotated with its count of active
// products. The count is derived per request, never stored.
type ProductTypeCount struct {
	ID        uint      `json:"id"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
	Quantity  int64     `json:"quantity"`
}

type ProductSubTypeCount struct {
	ID            uint      `json:"id"`
	Label         string    `json:"label"`
	ProductTypeID uint      `json:"product_type_id"`
	CreatedAt     time.Time `json:"created_at"`
	Quantity      int64     `json:"quantity"`
}

type CreateProductTypeRequest struct {
	Label string `json:"label" binding:"required,max=20"`
}

type CreateProductSubTypeRequest struct {
	Label         string `json:"label" binding:"required,max=20"`
	ProductTypeID uint   `json:"product_type_id" binding:"required"`
}

// GET /types
func GetProductTypes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		activeCount := db.Model(&models.Product{}).
			Select("count(*)").
			Where("products.product_type_id = product_types.id AND products.is_active = ?", true)

		var types []ProductTypeCount
		err := db.Model(&models.ProductType{}).
			Select("product_types.id, product_types.label, product_types.created_at, (?) AS quantity", activeCount).
			Order("product_types.label").
			Scan(&types).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product types"})
			return
		}
		c.JSON(http.StatusOK, types)
	}
}

// GET /types/:id/products
func GetProductsByType(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		err := db.Where("product_type_id = ? AND is_active = ?", c.Param("id"), true).
			Order("name").
			Find(&products).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// POST /admin/types
func CreateProductType(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductTypeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		productType := models.ProductType{Label: req.Label}
		if err := db.Create(&productType).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product type"})
			return
		}
		c.JSON(http.StatusCreated, productType)
	}
}
