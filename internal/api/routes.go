package api

import (
	"github.com/gin-gonic/gin"

	"rentfolio/server/config"
	"rentfolio/server/internal/database"
	"rentfolio/server/internal/queue"
)

func SetupRoutes(router *gin.Engine, db *database.Database, ingestQueue *queue.TransactionQueue, cfg *config.Config) {
	handler := NewHandler(db, ingestQueue, cfg, nil)

	api := router.Group("/api")
	{
		api.GET("/properties", handler.GetAllProperties)
		api.POST("/properties", handler.CreateProperty)
		api.GET("/properties/:id", handler.GetProperty)
		api.PUT("/properties/:id", handler.UpdateProperty)
		api.POST("/properties/:id/archive", handler.ArchiveProperty)
		api.DELETE("/properties/:id", handler.DeleteProperty)
		api.GET("/properties/:id/reports/pl", handler.GetPropertyPLReport)

		api.GET("/transactions", handler.GetTransactions)
		api.POST("/transactions", handler.CreateTransaction)
		api.DELETE("/transactions/:id", handler.DeleteTransaction)
		api.POST("/transactions/import", handler.ImportTransactions)

		api.GET("/reports/summary", handler.GetPortfolioSummary)
		api.GET("/reports/cash-flow", handler.GetCashFlowReport)
		api.GET("/reports/cash-flow/export", handler.ExportCashFlowCSV)
		api.GET("/reports/assets", handler.GetAssetReport)
		api.GET("/reports/assets/export", handler.ExportAssetCSV)
		api.GET("/reports/pl", handler.GetPortfolioPLReport)
		api.POST("/reports/refresh", handler.RefreshReports)
	}
}
