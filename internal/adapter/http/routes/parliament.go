package routes

import (
	"parlamento/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEntries           = "/entries"
	PathAutonomousRegions = "/autonomousRegions"
	PathDataSources       = "/dataSources"
)

func addEntryRoutes(rg *gin.RouterGroup, h *handlers.ParliamentEntryHandler) {
	entries := rg.Group(PathEntries)
	{
		entries.GET("", h.ListEntries)
		entries.POST("", h.CreateEntry)
		entries.PUT("/:id", h.UpdateEntry)
		entries.DELETE("/:id", h.DeleteEntry)
	}
}

func addAutonomousRegionRoutes(rg *gin.RouterGroup, h *handlers.AutonomousRegionHandler) {
	regions := rg.Group(PathAutonomousRegions)
	{
		regions.GET("", h.ListRegions)
		regions.POST("", h.CreateRegion)
		regions.PUT("/:id", h.UpdateRegion)
		regions.DELETE("/:id", h.DeleteRegion)
	}
}

func addDataSourceRoutes(rg *gin.RouterGroup, h *handlers.DataSourceHandler) {
	sources := rg.Group(PathDataSources)
	{
		sources.GET("", h.ListDataSources)
		sources.POST("", h.CreateDataSource)
		sources.PUT("/:id", h.UpdateDataSource)
		sources.DELETE("/:id", h.DeleteDataSource)
		// Placeholder: records lastFetched only.
		sources.POST("/:id/fetch", h.FetchDataSource)
	}
}
