package routes

import (
	cartControllers "github.com/TeamCharles/user-auth/controllers/cart"
	checkoutControllers "github.com/TeamCharles/user-auth/controllers/checkout"
	paymentControllers "github.com/TeamCharles/user-auth/controllers/payment"
	productControllers "github.com/TeamCharles/user-auth/controllers/product"
	"github.com/TeamCharles/user-auth/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(db))                            // GET /user/cart
			cartGroup.POST("/items/:product_id", cartControllers.AddToCartHandler(db)) // POST /user/cart/items/:product_id
			cartGroup.DELETE("/items/:product_id", cartControllers.DeleteLineItem(db)) // DELETE /user/cart/items/:product_id
			cartGroup.DELETE("/", cartControllers.ClearCartHandler(db))                // DELETE /user/cart
		}

		// ──────────────── Checkout ────────────────
		userGroup.GET("/checkout", checkoutControllers.Review(db))                         // GET /user/checkout
		userGroup.POST("/checkout/complete", checkoutControllers.CompleteOrderHandler(db)) // POST /user/checkout/complete
		userGroup.GET("/orders/:id/confirmation", checkoutControllers.ConfirmationHandler(db))

		// ──────────────── Products ────────────────
		userGroup.GET("/products", productControllers.GetProducts(db))
		userGroup.GET("/products/:id", productControllers.GetProductByID(db))
		userGroup.POST("/products", productControllers.CreateProduct(db))
		userGroup.PUT("/products/:id", productControllers.UpdateProduct(db))
		userGroup.DELETE("/products/:id", productControllers.DeleteProduct(db))

		// ──────────────── Payment Types ────────────────
		userGroup.GET("/payment-types", paymentControllers.GetPaymentTypes(db))
		userGroup.POST("/payment-types", paymentControllers.CreatePaymentType(db))
	}
}
