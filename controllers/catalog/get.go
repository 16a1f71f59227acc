package catalogController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jandersonsiqueira/direto-na-porta/catalog"
	"github.com/jandersonsiqueira/direto-na-porta/loyverse"
	"github.com/jandersonsiqueira/direto-na-porta/models"
)

type CatalogResponse struct {
	Catalog models.CatalogIndex `json:"catalog"`
}

// GET /api/catalog?category=&q=
//
// Aggregates the upstream collections under the request context, then
// applies the optional view filters. A missing token surfaces as a 500
// before any upstream call; an upstream failure surfaces as a 502 carrying
// the failing URL and status.
func GetCatalog(src catalog.Fetcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := catalog.Aggregate(c.Request.Context(), src)
		if err != nil {
			status := http.StatusInternalServerError
			var upstream *loyverse.UpstreamError
			if errors.As(err, &upstream) {
				status = http.StatusBadGateway
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		index = catalog.Filter(index, c.Query("category"), c.Query("q"))
		c.JSON(http.StatusOK, CatalogResponse{Catalog: index})
	}
}
