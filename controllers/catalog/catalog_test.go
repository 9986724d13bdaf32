package catalogControllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/TeamCharles/user-auth/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	return db
}

func newRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/types", GetProductTypes(db))
	r.GET("/types/:id/products", GetProductsByType(db))
	r.GET("/types/:id/subtypes", GetProductSubTypes(db))
	r.GET("/subtypes/:id/products", GetProductsBySubType(db))
	return r
}

func seedCatalog(t *testing.T, db *gorm.DB) (models.ProductType, models.ProductSubType) {
	t.Helper()
	require.NoError(t, db.Create(&models.User{ID: "seller", Email: "seller@example.com"}).Error)

	appliances := models.ProductType{Label: "appliances"}
	require.NoError(t, db.Create(&appliances).Error)
	kitchen := models.ProductSubType{Label: "kitchen", ProductTypeID: appliances.ID}
	require.NoError(t, db.Create(&kitchen).Error)

	for _, p := range []models.Product{
		{Name: "kettle", Description: "boils", Price: decimal.New(1999, -2), UserID: "seller", ProductTypeID: appliances.ID, ProductSubTypeID: kitchen.ID, IsActive: true},
		{Name: "toaster", Description: "toasts", Price: decimal.New(3550, -2), UserID: "seller", ProductTypeID: appliances.ID, ProductSubTypeID: kitchen.ID, IsActive: true},
		{Name: "retired", Description: "gone", Price: decimal.New(100, -2), UserID: "seller", ProductTypeID: appliances.ID, ProductSubTypeID: kitchen.ID, IsActive: false},
	} {
		require.NoError(t, db.Create(&p).Error)
	}
	return appliances, kitchen
}

func TestGetProductTypesCountsActiveOnly(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)
	require.NoError(t, db.Create(&models.ProductType{Label: "books"}).Error)

	w := httptest.NewRecorder()
	newRouter(db).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/types", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var types []ProductTypeCount
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &types))
	require.Len(t, types, 2)

	// ordered by label, counts exclude the deactivated product
	assert.Equal(t, "appliances", types[0].Label)
	assert.EqualValues(t, 2, types[0].Quantity)
	assert.Equal(t, "books", types[1].Label)
	assert.Zero(t, types[1].Quantity)
}

func TestGetProductSubTypesCounts(t *testing.T) {
	db := openTestDB(t)
	appliances, _ := seedCatalog(t, db)
	empty := models.ProductSubType{Label: "bathroom", ProductTypeID: appliances.ID}
	require.NoError(t, db.Create(&empty).Error)

	w := httptest.NewRecorder()
	newRouter(db).ServeHTTP(w, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/types/%d/subtypes", appliances.ID), nil))
	require.Equal(t, http.StatusOK, w.Code)

	var subTypes []ProductSubTypeCount
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &subTypes))
	require.Len(t, subTypes, 2)
	assert.Equal(t, "bathroom", subTypes[0].Label)
	assert.Zero(t, subTypes[0].Quantity)
	assert.Equal(t, "kitchen", subTypes[1].Label)
	assert.EqualValues(t, 2, subTypes[1].Quantity)
}

func TestGetProductsByTypeActiveOrderedByName(t *testing.T) {
	db := openTestDB(t)
	appliances, _ := seedCatalog(t, db)

	w := httptest.NewRecorder()
	newRouter(db).ServeHTTP(w, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/types/%d/products", appliances.ID), nil))
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 2)
	assert.Equal(t, "kettle", products[0].Name)
	assert.Equal(t, "toaster", products[1].Name)
}

func TestGetProductsBySubType(t *testing.T) {
	db := openTestDB(t)
	_, kitchen := seedCatalog(t, db)

	w := httptest.NewRecorder()
	newRouter(db).ServeHTTP(w, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/subtypes/%d/products", kitchen.ID), nil))
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 2)
}
