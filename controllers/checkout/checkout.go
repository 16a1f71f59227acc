package checkoutControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jandersonsiqueira/direto-na-porta/cart"
	"github.com/jandersonsiqueira/direto-na-porta/checkout"
	cartControllers "github.com/jandersonsiqueira/direto-na-porta/controllers/cart"
	"github.com/jandersonsiqueira/direto-na-porta/models"
)

// POST /api/cart/checkout
//
// Renders the order summary, builds the wa.me link and clears the cart.
// The order is considered placed the moment the link is handed back; there
// is no confirmation the client actually opened it. An empty cart is a 409
// and leaves the stored state untouched.
func Checkout(repo *cart.Repository, whatsAppNumber string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := cartControllers.CartKey(c)

		state, err := repo.Load(key)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		message, err := checkout.Summary(state)
		if err != nil {
			if errors.Is(err, checkout.ErrEmptyCart) {
				c.JSON(http.StatusConflict, gin.H{"error": "Carrinho vazio"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if err := repo.Save(key, models.NewCartState()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"order_ref": uuid.NewString(),
			"message":   message,
			"link":      checkout.WhatsAppLink(whatsAppNumber, message),
		})
	}
}
