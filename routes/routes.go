package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jandersonsiqueira/direto-na-porta/cart"
	"github.com/jandersonsiqueira/direto-na-porta/catalog"
)

// SetupRoutes is the single entry-point that wires up the catalog and cart
// route groups.
func SetupRoutes(r *gin.Engine, src catalog.Fetcher, repo *cart.Repository, whatsAppNumber string) {
	SetupCatalogRoutes(r, src)
	SetupCartRoutes(r, repo, whatsAppNumber)
}
