package catalog

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jandersonsiqueira/direto-na-porta/loyverse"
	"github.com/jandersonsiqueira/direto-na-porta/models"
)

// DefaultCategory buckets items whose category id has no upstream match.
const DefaultCategory = "DIVERSOS"

// DefaultCurrency is assumed when the store listing carries none.
const DefaultCurrency = "BRL"

// fetchTimeout bounds each of the three upstream reads.
const fetchTimeout = 10 * time.Second

// Fetcher is the slice of the Loyverse client the aggregator needs.
type Fetcher interface {
	Categories(ctx context.Context) ([]loyverse.Category, error)
	Items(ctx context.Context) ([]loyverse.Item, error)
	InventoryLevels(ctx context.Context) ([]loyverse.InventoryLevel, error)
}

// Aggregate fetches the three collections concurrently and joins them into
// a catalog index. Any single failure voids all three results; the first
// error is returned and no partial index is ever produced.
func Aggregate(ctx context.Context, src Fetcher) (models.CatalogIndex, error) {
	var (
		categories []loyverse.Category
		items      []loyverse.Item
		levels     []loyverse.InventoryLevel
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ctx, cancel := context.WithTimeout(gctx, fetchTimeout)
		defer cancel()
		var err error
		categories, err = src.Categories(ctx)
		return err
	})
	g.Go(func() error {
		ctx, cancel := context.WithTimeout(gctx, fetchTimeout)
		defer cancel()
		var err error
		items, err = src.Items(ctx)
		return err
	})
	g.Go(func() error {
		ctx, cancel := context.WithTimeout(gctx, fetchTimeout)
		defer cancel()
		var err error
		levels, err = src.InventoryLevels(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return BuildIndex(categories, items, levels), nil
}

// BuildIndex is the pure join: it groups visible items by category display
// name, preserving upstream item order within each category. No sorting is
// applied; ordering across categories is the consumer's concern.
func BuildIndex(categories []loyverse.Category, items []loyverse.Item, levels []loyverse.InventoryLevel) models.CatalogIndex {
	stock := make(map[string]float64, len(levels))
	for _, lv := range levels {
		stock[lv.VariantID] = lv.InStock
	}

	categoryNames := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	index := make(models.CatalogIndex)
	for _, item := range items {
		// An item without a variant or store listing has no orderable unit.
		if len(item.Variants) == 0 {
			continue
		}
		variant := item.Variants[0]
		if len(variant.Stores) == 0 {
			continue
		}
		listing := variant.Stores[0]

		if !visible(item, listing, stock[variant.VariantID]) {
			continue
		}

		name := categoryNames[item.CategoryID]
		if name == "" {
			name = DefaultCategory
		}

		price := decimal.Zero
		if listing.Price.Valid {
			price = listing.Price.Decimal
		}
		currency := listing.Currency
		if currency == "" {
			currency = DefaultCurrency
		}

		index[name] = append(index[name], models.Product{
			ID:        item.ID,
			Name:      item.Name,
			Price:     price,
			Currency:  currency,
			ImageURL:  item.ImageURL,
			VariantID: variant.VariantID,
		})
	}
	return index
}

// visible is the hard filter: for sale at the first store, stock-tracked,
// and strictly positive stock. Untracked items are excluded outright.
func visible(item loyverse.Item, listing loyverse.StoreListing, inStock float64) bool {
	return listing.AvailableForSale && item.TrackStock && inStock > 0
}
