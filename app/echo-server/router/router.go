package router

import (
	"scentMatch/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendHandler) {
	api.GET("/fragrances", handler.ListFragrances)
	api.GET("/accords", handler.ListAccords)

	api.POST("/recommend-by-fragrances", handler.RecommendByFragrances)
	api.POST("/recommend-by-accords", handler.RecommendByAccords)

	admin := api.Group("/admin")
	admin.POST("/catalog/reload", handler.ReloadCatalog)
}
