package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jandersonsiqueira/direto-na-porta/catalog"
	catalogController "github.com/jandersonsiqueira/direto-na-porta/controllers/catalog"
)

func SetupCatalogRoutes(r *gin.Engine, src catalog.Fetcher) {
	api := r.Group("/api")
	{
		// Aggregated category -> products mapping
		api.GET("/catalog", catalogController.GetCatalog(src))
	}
}
