package cartControllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jandersonsiqueira/direto-na-porta/cart"
	"github.com/jandersonsiqueira/direto-na-porta/models"
	"github.com/jandersonsiqueira/direto-na-porta/storage"
)

func newRouter(repo *cart.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/cart", GetCart(repo))
	r.POST("/api/cart/items", AddCartItem(repo))
	r.PUT("/api/cart/items/:variant_id", SetCartItemQuantity(repo))
	r.POST("/api/cart/items/:variant_id/increment", IncrementCartItem(repo))
	r.POST("/api/cart/items/:variant_id/decrement", DecrementCartItem(repo))
	r.PUT("/api/cart/items/:variant_id/note", SetCartItemNote(repo))
	r.DELETE("/api/cart/items/:variant_id", RemoveCartItem(repo))
	r.PUT("/api/cart/note", SetOrderNote(repo))
	r.PUT("/api/cart/payment-method", SetPaymentMethod(repo))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, cartKey, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cartKey != "" {
		req.Header.Set("X-Cart-Key", cartKey)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type cartBody struct {
	Cart models.CartState `json:"cart"`
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) models.CartState {
	t.Helper()
	var body cartBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Cart
}

func TestAddMintsCartKeyWhenAbsent(t *testing.T) {
	repo := cart.NewRepository(storage.NewMemoryStore())
	r := newRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/api/cart/items", "", `{"variant_id": "v1", "nome": "Suco", "price": 5}`)

	require.Equal(t, http.StatusOK, w.Code)
	key := w.Header().Get("X-Cart-Key")
	require.NotEmpty(t, key)

	// The minted key addresses a persisted cart.
	state, err := repo.Load(key)
	require.NoError(t, err)
	require.Len(t, state.Lines, 1)
	assert.Equal(t, 1, state.Lines[0].Quantity)
}

func TestAddTwiceIncrementsSingleLine(t *testing.T) {
	repo := cart.NewRepository(storage.NewMemoryStore())
	r := newRouter(repo)

	doJSON(t, r, http.MethodPost, "/api/cart/items", "cliente", `{"variant_id": "v1", "nome": "Suco", "price": 5}`)
	w := doJSON(t, r, http.MethodPost, "/api/cart/items", "cliente", `{"variant_id": "v1", "nome": "Suco", "price": 5}`)

	require.Equal(t, http.StatusOK, w.Code)
	state := decodeCart(t, w)
	require.Len(t, state.Lines, 1)
	assert.Equal(t, 2, state.Lines[0].Quantity)
}

func TestAddRequiresVariantIDAndName(t *testing.T) {
	repo := cart.NewRepository(storage.NewMemoryStore())
	r := newRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/api/cart/items", "cliente", `{"price": 5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetQuantityZeroRemovesLineAndPersists(t *testing.T) {
	repo := cart.NewRepository(storage.NewMemoryStore())
	r := newRouter(repo)

	doJSON(t, r, http.MethodPost, "/api/cart/items", "cliente", `{"variant_id": "v1", "nome": "Suco", "price": 5}`)
	doJSON(t, r, http.MethodPost, "/api/cart/items", "cliente", `{"variant_id": "v1", "nome": "Suco", "price": 5}`)

	w := doJSON(t, r, http.MethodPut, "/api/cart/items/v1", "cliente", `{"qty": 0}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeCart(t, w).Lines)

	state, err := repo.Load("cliente")
	require.NoError(t, err)
	assert.True(t, state.IsEmpty())
}

func TestMutationsOnUnknownVariantAre404(t *testing.T) {
	repo := cart.NewRepository(storage.NewMemoryStore())
	r := newRouter(repo)

	assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodPut, "/api/cart/items/ghost", "cliente", `{"qty": 2}`).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodPost, "/api/cart/items/ghost/increment", "cliente", "").Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodPost, "/api/cart/items/ghost/decrement", "cliente", "").Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodPut, "/api/cart/items/ghost/note", "cliente", `{"note": "x"}`).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodDelete, "/api/cart/items/ghost", "cliente", "").Code)
}

func TestIncrementDecrementPrune(t *testing.T) {
	repo := cart.NewRepository(storage.NewMemoryStore())
	r := newRouter(repo)

	doJSON(t, r, http.MethodPost, "/api/cart/items", "cliente", `{"variant_id": "v1", "nome": "Suco", "price": 5}`)
	doJSON(t, r, http.MethodPost, "/api/cart/items/v1/increment", "cliente", "")

	w := doJSON(t, r, http.MethodGet, "/api/cart", "cliente", "")
	require.Equal(t, 2, decodeCart(t, w).Lines[0].Quantity)

	doJSON(t, r, http.MethodPost, "/api/cart/items/v1/decrement", "cliente", "")
	w = doJSON(t, r, http.MethodPost, "/api/cart/items/v1/decrement", "cliente", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeCart(t, w).Lines)
}

func TestOrderNoteAndPaymentMethod(t *testing.T) {
	repo := cart.NewRepository(storage.NewMemoryStore())
	r := newRouter(repo)

	w := doJSON(t, r, http.MethodPut, "/api/cart/note", "cliente", `{"note": "entregar na portaria"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/cart/payment-method", "cliente", `{"payment_method": "cash"}`)
	require.Equal(t, http.StatusOK, w.Code)

	state, err := repo.Load("cliente")
	require.NoError(t, err)
	assert.Equal(t, "entregar na portaria", state.OrderNote)
	assert.Equal(t, models.PaymentCash, state.PaymentMethod)
}

func TestPaymentMethodOutsideFixedSetRejected(t *testing.T) {
	repo := cart.NewRepository(storage.NewMemoryStore())
	r := newRouter(repo)

	w := doJSON(t, r, http.MethodPut, "/api/cart/payment-method", "cliente", `{"payment_method": "cheque"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	state, err := repo.Load("cliente")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPaymentMethod, state.PaymentMethod)
}

// failingStore stands in for an unavailable database.
type failingStore struct{}

func (failingStore) Load(key string) (string, bool, error) {
	return "", false, errors.New("connection refused")
}

func (failingStore) Save(key, value string) error {
	return errors.New("connection refused")
}

func TestStorageFailureIsServerError(t *testing.T) {
	repo := cart.NewRepository(failingStore{})
	r := newRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/api/cart/items", "cliente", `{"variant_id": "v1", "nome": "Suco", "price": 5}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
