package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

// PaymentMethod is one of the fixed set of payment options offered at
// checkout.
type PaymentMethod string

const (
	PaymentPix        PaymentMethod = "pix"
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentDebitCard  PaymentMethod = "debit_card"
	PaymentCash       PaymentMethod = "cash"
)

// DefaultPaymentMethod is the selection a fresh (or just-cleared) cart
// starts with.
const DefaultPaymentMethod = PaymentPix

var ErrInvalidPaymentMethod = errors.New("invalid payment method")

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentPix, PaymentCreditCard, PaymentDebitCard, PaymentCash:
		return true
	}
	return false
}

// Label returns the pt-BR display name used in the order summary.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentPix:
		return "Pix"
	case PaymentCreditCard:
		return "Cartão de Crédito"
	case PaymentDebitCard:
		return "Cartão de Débito"
	case PaymentCash:
		return "Dinheiro"
	}
	return string(m)
}

// CartLine snapshots the product at the moment it was added, plus the
// mutable quantity and an optional per-line note.
type CartLine struct {
	VariantID string          `json:"variant_id"`
	Name      string          `json:"nome"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"image_url,omitempty"`
	Quantity  int             `json:"qty"`
	Note      string          `json:"note,omitempty"`
}

// Total is unit price times quantity.
func (l CartLine) Total() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartState holds the ordered cart lines (insertion order preserved), the
// order-level note and the selected payment method. A variant id appears at
// most once; quantities are always >= 1 because zero-quantity lines are
// pruned by the mutation that produced them.
type CartState struct {
	Lines         []CartLine    `json:"lines"`
	OrderNote     string        `json:"order_note,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

func NewCartState() CartState {
	return CartState{PaymentMethod: DefaultPaymentMethod}
}

func (s *CartState) find(variantID string) int {
	for i := range s.Lines {
		if s.Lines[i].VariantID == variantID {
			return i
		}
	}
	return -1
}

// Add puts the product in the cart with quantity 1, or bumps the existing
// line's quantity when the variant is already present.
func (s *CartState) Add(p Product) {
	if i := s.find(p.VariantID); i >= 0 {
		s.Lines[i].Quantity++
		return
	}
	s.Lines = append(s.Lines, CartLine{
		VariantID: p.VariantID,
		Name:      p.Name,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		Quantity:  1,
	})
}

// SetQuantity clamps qty to >= 0 and removes the line when it reaches 0.
// Returns false when no line has the given variant id.
func (s *CartState) SetQuantity(variantID string, qty int) bool {
	i := s.find(variantID)
	if i < 0 {
		return false
	}
	if qty <= 0 {
		s.Lines = append(s.Lines[:i], s.Lines[i+1:]...)
		return true
	}
	s.Lines[i].Quantity = qty
	return true
}

func (s *CartState) Increment(variantID string) bool {
	i := s.find(variantID)
	if i < 0 {
		return false
	}
	return s.SetQuantity(variantID, s.Lines[i].Quantity+1)
}

func (s *CartState) Decrement(variantID string) bool {
	i := s.find(variantID)
	if i < 0 {
		return false
	}
	return s.SetQuantity(variantID, s.Lines[i].Quantity-1)
}

// Remove deletes the line unconditionally. Returns false when absent.
func (s *CartState) Remove(variantID string) bool {
	i := s.find(variantID)
	if i < 0 {
		return false
	}
	s.Lines = append(s.Lines[:i], s.Lines[i+1:]...)
	return true
}

// SetLineNote replaces the per-line note. Returns false when absent.
func (s *CartState) SetLineNote(variantID, note string) bool {
	i := s.find(variantID)
	if i < 0 {
		return false
	}
	s.Lines[i].Note = note
	return true
}

func (s *CartState) SetOrderNote(note string) {
	s.OrderNote = note
}

func (s *CartState) SetPaymentMethod(m PaymentMethod) error {
	if !m.Valid() {
		return ErrInvalidPaymentMethod
	}
	s.PaymentMethod = m
	return nil
}

func (s *CartState) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range s.Lines {
		total = total.Add(l.Total())
	}
	return total
}

func (s *CartState) IsEmpty() bool {
	return len(s.Lines) == 0
}

// Reset returns the cart to the empty default state, as done right after a
// checkout link is generated.
func (s *CartState) Reset() {
	*s = NewCartState()
}
