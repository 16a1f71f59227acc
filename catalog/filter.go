package catalog

import (
	"strings"

	"github.com/jandersonsiqueira/direto-na-porta/models"
)

// AllCategories selects every category in Filter.
const AllCategories = "all"

// Filter applies the view filters over an already-built index: category
// selection (empty or "all" keeps everything, otherwise exactly one
// category) and a case-insensitive substring search on product name within
// the visible set. Categories emptied by the search are dropped. The input
// index is never mutated.
func Filter(index models.CatalogIndex, category, query string) models.CatalogIndex {
	q := strings.ToLower(query)
	out := make(models.CatalogIndex, len(index))

	for name, products := range index {
		if category != "" && category != AllCategories && name != category {
			continue
		}
		if q == "" {
			out[name] = products
			continue
		}
		var matched []models.Product
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Name), q) {
				matched = append(matched, p)
			}
		}
		if len(matched) > 0 {
			out[name] = matched
		}
	}
	return out
}
