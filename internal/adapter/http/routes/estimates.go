package routes

import (
	"psaops/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
)

func addEstimateRoutes(rg *gin.RouterGroup, rowsHandler *handlers.EstimateRowsHandler) {
	estimates := rg.Group(PathEstimates + "/:estimate_id")
	{
		estimates.GET("/detail", rowsHandler.GetEstimateDetail)
		estimates.GET("/totals", rowsHandler.GetEstimateTotals)

		rows := estimates.Group("/rows/:row_key")
		{
			rows.PATCH("", rowsHandler.UpdateRowField)
			rows.DELETE("", rowsHandler.DeleteRow)
			rows.PUT("/hours/:week_start", rowsHandler.SetWeekHours)
			rows.POST("/fill", rowsHandler.FillRowHours)
		}
	}
}
