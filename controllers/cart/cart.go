package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jandersonsiqueira/direto-na-porta/cart"
	"github.com/jandersonsiqueira/direto-na-porta/models"
)

// CartKey resolves the opaque per-client cart key: the X-Cart-Key header,
// the cart_key query param, or a freshly minted UUID. The resolved key is
// always echoed back so the client can store it.
func CartKey(c *gin.Context) string {
	key := c.GetHeader("X-Cart-Key")
	if key == "" {
		key = c.Query("cart_key")
	}
	if key == "" {
		key = uuid.NewString()
	}
	c.Header("X-Cart-Key", key)
	return key
}

type AddItemInput struct {
	VariantID string          `json:"variant_id" binding:"required"`
	Name      string          `json:"nome" binding:"required"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"image_url"`
}

type QuantityInput struct {
	Quantity *int `json:"qty" binding:"required"`
}

type NoteInput struct {
	Note string `json:"note"`
}

type PaymentMethodInput struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

func respondCart(c *gin.Context, state models.CartState) {
	c.JSON(http.StatusOK, gin.H{"cart": state, "total": state.Total()})
}

// mutate runs fn over the loaded cart and persists the result before
// responding. Every mutation writes through; a failed write aborts with a
// 500 and the served state never diverges from the durable one.
func mutate(c *gin.Context, repo *cart.Repository, fn func(state *models.CartState) bool) {
	key := CartKey(c)

	state, err := repo.Load(key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}

	if !fn(&state) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return
	}

	if err := repo.Save(key, state); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist cart"})
		return
	}
	respondCart(c, state)
}

// GET /api/cart
func GetCart(repo *cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		state, err := repo.Load(CartKey(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}
		respondCart(c, state)
	}
}

// POST /api/cart/items
func AddCartItem(repo *cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		mutate(c, repo, func(state *models.CartState) bool {
			state.Add(models.Product{
				VariantID: input.VariantID,
				Name:      input.Name,
				Price:     input.Price,
				ImageURL:  input.ImageURL,
			})
			return true
		})
	}
}

// PUT /api/cart/items/:variant_id
func SetCartItemQuantity(repo *cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		variantID := c.Param("variant_id")
		mutate(c, repo, func(state *models.CartState) bool {
			return state.SetQuantity(variantID, *input.Quantity)
		})
	}
}

// POST /api/cart/items/:variant_id/increment
func IncrementCartItem(repo *cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		variantID := c.Param("variant_id")
		mutate(c, repo, func(state *models.CartState) bool {
			return state.Increment(variantID)
		})
	}
}

// POST /api/cart/items/:variant_id/decrement
func DecrementCartItem(repo *cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		variantID := c.Param("variant_id")
		mutate(c, repo, func(state *models.CartState) bool {
			return state.Decrement(variantID)
		})
	}
}

// PUT /api/cart/items/:variant_id/note
func SetCartItemNote(repo *cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input NoteInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		variantID := c.Param("variant_id")
		mutate(c, repo, func(state *models.CartState) bool {
			return state.SetLineNote(variantID, input.Note)
		})
	}
}

// DELETE /api/cart/items/:variant_id
func RemoveCartItem(repo *cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		variantID := c.Param("variant_id")
		mutate(c, repo, func(state *models.CartState) bool {
			return state.Remove(variantID)
		})
	}
}

// PUT /api/cart/note
func SetOrderNote(repo *cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input NoteInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		mutate(c, repo, func(state *models.CartState) bool {
			state.SetOrderNote(input.Note)
			return true
		})
	}
}

// PUT /api/cart/payment-method
func SetPaymentMethod(repo *cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PaymentMethodInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		method := models.PaymentMethod(input.PaymentMethod)
		if !method.Valid() {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid payment method: " + input.PaymentMethod})
			return
		}
		mutate(c, repo, func(state *models.CartState) bool {
			return state.SetPaymentMethod(method) == nil
		})
	}
}
