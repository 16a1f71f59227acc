package models

import "github.com/shopspring/decimal"

func init() {
	// Prices serialize as JSON numbers, matching the catalog contract.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is a display-ready catalog entry. VariantID is the stable key
// used by the cart; ID is the upstream item id.
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"nome"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`
	ImageURL  string          `json:"image_url,omitempty"`
	VariantID string          `json:"variant_id"`
}

// CatalogIndex maps a category display name to its products, in upstream
// item order. Rebuilt wholesale on every aggregation.
type CatalogIndex map[string][]Product
