package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jandersonsiqueira/direto-na-porta/cart"
	cartControllers "github.com/jandersonsiqueira/direto-na-porta/controllers/cart"
	checkoutControllers "github.com/jandersonsiqueira/direto-na-porta/controllers/checkout"
)

func SetupCartRoutes(r *gin.Engine, repo *cart.Repository, whatsAppNumber string) {
	api := r.Group("/api/cart")
	{
		// Current cart (mints a key when the client has none)
		api.GET("", cartControllers.GetCart(repo))

		// Line mutations
		api.POST("/items", cartControllers.AddCartItem(repo))
		api.PUT("/items/:variant_id", cartControllers.SetCartItemQuantity(repo))
		api.POST("/items/:variant_id/increment", cartControllers.IncrementCartItem(repo))
		api.POST("/items/:variant_id/decrement", cartControllers.DecrementCartItem(repo))
		api.PUT("/items/:variant_id/note", cartControllers.SetCartItemNote(repo))
		api.DELETE("/items/:variant_id", cartControllers.RemoveCartItem(repo))

		// Order-level fields
		api.PUT("/note", cartControllers.SetOrderNote(repo))
		api.PUT("/payment-method", cartControllers.SetPaymentMethod(repo))

		// Checkout: summary -> WhatsApp link -> cart cleared
		api.POST("/checkout", checkoutControllers.Checkout(repo, whatsAppNumber))
	}
}
