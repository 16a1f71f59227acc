// Package money renders amounts the way the storefront displays them:
// two decimal digits with Brazilian separators.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Format renders the amount with exactly two decimals and pt-BR
// separators, e.g. 1234.5 -> "1.234,50".
func Format(d decimal.Decimal) string {
	return printer.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

// BRL prefixes the formatted amount with the currency symbol: "R$ 10,00".
func BRL(d decimal.Decimal) string {
	return "R$ " + Format(d)
}
