// Package cart persists cart state through the storage port, one cart per
// opaque client key.
package cart

import (
	"encoding/json"
	"fmt"

	"github.com/jandersonsiqueira/direto-na-porta/models"
	"github.com/jandersonsiqueira/direto-na-porta/storage"
)

// Each cart occupies three durable keys: the line items, the order-level
// note and the payment method. All three are rewritten on every mutation.
func itemsKey(cartKey string) string   { return "cart:" + cartKey + ":items" }
func noteKey(cartKey string) string    { return "cart:" + cartKey + ":note" }
func paymentKey(cartKey string) string { return "cart:" + cartKey + ":payment" }

type Repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) *Repository {
	return &Repository{store: store}
}

// Load reassembles the cart from its durable keys. Absent keys yield the
// empty default state, so a first-time client gets a fresh cart.
func (r *Repository) Load(cartKey string) (models.CartState, error) {
	state := models.NewCartState()

	raw, ok, err := r.store.Load(itemsKey(cartKey))
	if err != nil {
		return state, err
	}
	if ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &state.Lines); err != nil {
			return state, fmt.Errorf("decode cart lines: %w", err)
		}
	}

	note, ok, err := r.store.Load(noteKey(cartKey))
	if err != nil {
		return state, err
	}
	if ok {
		state.OrderNote = note
	}

	payment, ok, err := r.store.Load(paymentKey(cartKey))
	if err != nil {
		return state, err
	}
	if ok && models.PaymentMethod(payment).Valid() {
		state.PaymentMethod = models.PaymentMethod(payment)
	}

	return state, nil
}

// Save rewrites the whole cart. Lines marshal as [] rather than null so a
// cleared cart round-trips to the same empty state.
func (r *Repository) Save(cartKey string, state models.CartState) error {
	lines := state.Lines
	if lines == nil {
		lines = []models.CartLine{}
	}
	buf, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart lines: %w", err)
	}
	if err := r.store.Save(itemsKey(cartKey), string(buf)); err != nil {
		return err
	}
	if err := r.store.Save(noteKey(cartKey), state.OrderNote); err != nil {
		return err
	}
	return r.store.Save(paymentKey(cartKey), string(state.PaymentMethod))
}
