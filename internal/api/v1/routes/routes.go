package routes

import (
	"github.com/gin-gonic/gin"

	"vidsum/internal/api/v1/handlers"
	"vidsum/internal/api/v1/services"
)

// ServiceContainer holds the services the v1 routes depend on.
type ServiceContainer struct {
	SummaryService services.SummaryService
	MaxUploadBytes int64
}

// RegisterRoutes registers all v1 API routes.
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	summaryHandler := handlers.NewSummaryHandler(container.SummaryService, container.MaxUploadBytes)

	summaries := router.Group("/summaries")
	{
		summaries.POST("", summaryHandler.Upload)
		summaries.POST("/text", summaryHandler.SummarizeText)
		summaries.GET("/:id", summaryHandler.Get)
		summaries.GET("/:id/transcript", summaryHandler.DownloadTranscript)
		summaries.GET("/:id/summary", summaryHandler.DownloadSummary)
		summaries.DELETE("/:id", summaryHandler.Delete)
	}
}
