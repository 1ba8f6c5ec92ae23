package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/havncube/billing-service/internal/adapter/http/handlers"
)

const PathEstimates = "/estimates"

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.PUT("/:id", estimateHandler.UpdateEstimate)
		estimates.DELETE("/:id", estimateHandler.DeleteEstimate)
		estimates.POST("/:id/pdf", estimateHandler.GeneratePDF)
	}
}
