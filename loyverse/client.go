package loyverse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the production Loyverse API root.
const DefaultBaseURL = "https://api.loyverse.com/v1.0"

// pageLimit caps the items and inventory reads at a single page.
const pageLimit = 250

// ErrTokenMissing is returned before any network call when the client was
// built without an API token.
var ErrTokenMissing = errors.New("LOYVERSE_TOKEN not configured")

// UpstreamError reports a non-success response from the Loyverse API.
type UpstreamError struct {
	URL        string
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("bad response %d for %s", e.StatusCode, e.URL)
}

// Category is an upstream catalog category.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// StoreListing is the per-store pricing/availability record on a variant.
// Only the first listing is ever consulted.
type StoreListing struct {
	StoreID          string              `json:"store_id"`
	Price            decimal.NullDecimal `json:"price"`
	Currency         string              `json:"currency"`
	AvailableForSale bool                `json:"available_for_sale"`
}

// Variant is the orderable unit of an item. Only the first variant is ever
// consulted.
type Variant struct {
	VariantID string         `json:"variant_id"`
	SKU       string         `json:"sku"`
	Stores    []StoreListing `json:"stores"`
}

// Item is an upstream catalog item.
type Item struct {
	ID         string    `json:"id"`
	Name       string    `json:"item_name"`
	CategoryID string    `json:"category_id"`
	ImageURL   string    `json:"image_url"`
	TrackStock bool      `json:"track_stock"`
	Variants   []Variant `json:"variants"`
}

// InventoryLevel maps a variant to its in-stock quantity.
type InventoryLevel struct {
	VariantID string  `json:"variant_id"`
	InStock   float64 `json:"in_stock"`
}

// Client reads the three Loyverse collections with bearer-token auth. It
// never writes upstream.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var out struct {
		Categories []Category `json:"categories"`
	}
	if err := c.getJSON(ctx, "/categories", &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

func (c *Client) Items(ctx context.Context) ([]Item, error) {
	var out struct {
		Items []Item `json:"items"`
	}
	if err := c.getJSON(ctx, fmt.Sprintf("/items?limit=%d", pageLimit), &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) InventoryLevels(ctx context.Context) ([]InventoryLevel, error) {
	var out struct {
		InventoryLevels []InventoryLevel `json:"inventory_levels"`
	}
	if err := c.getJSON(ctx, fmt.Sprintf("/inventory?limit=%d", pageLimit), &out); err != nil {
		return nil, err
	}
	return out.InventoryLevels, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	if c.token == "" {
		return ErrTokenMissing
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach Loyverse: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return &UpstreamError{URL: url, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse Loyverse response: %w", err)
	}
	return nil
}
