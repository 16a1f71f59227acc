// Package checkout renders the order summary and the WhatsApp deep link.
package checkout

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/jandersonsiqueira/direto-na-porta/models"
	"github.com/jandersonsiqueira/direto-na-porta/money"
)

// ErrEmptyCart is returned when checkout is attempted with no lines.
var ErrEmptyCart = errors.New("carrinho vazio")

const summaryHeader = "NOVO PEDIDO - DIRETO NA PORTA"

// Summary renders the deterministic multi-line order text: numbered lines
// with quantity, unit price and line total, followed by the grand total,
// the payment method and the optional order note.
func Summary(state models.CartState) (string, error) {
	if state.IsEmpty() {
		return "", ErrEmptyCart
	}

	lines := []string{summaryHeader, ""}
	for i, item := range state.Lines {
		lines = append(lines, fmt.Sprintf("%d. %s — %d x %s = %s",
			i+1, item.Name, item.Quantity, money.BRL(item.Price), money.BRL(item.Total())))
		if item.Note != "" {
			lines = append(lines, "Observação: "+item.Note)
		}
	}

	lines = append(lines, "", "Total: "+money.BRL(state.Total()))
	lines = append(lines, "Pagamento: "+state.PaymentMethod.Label())
	if state.OrderNote != "" {
		lines = append(lines, "Observação do pedido: "+state.OrderNote)
	}
	lines = append(lines, "", "Obrigado!")

	return strings.Join(lines, "\n"), nil
}

// WhatsAppLink builds the wa.me deep link pre-filled with the summary.
// The number is the full international form without "+" (55 + DDD + number).
func WhatsAppLink(number, text string) string {
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(text)
}
