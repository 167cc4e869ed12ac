package api

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"rentfolio/server/config"
	"rentfolio/server/internal/database"
	"rentfolio/server/internal/format"
	"rentfolio/server/internal/importer"
	"rentfolio/server/internal/models"
	"rentfolio/server/internal/queue"
	"rentfolio/server/internal/reports"
)

type Handler struct {
	db       *database.Database
	logger   *logrus.Logger
	reports  *reports.Service
	importer *importer.Importer
	config   *config.Config
}

type ArchiveRequest struct {
	Archived bool `json:"archived"`
}

func NewHandler(db *database.Database, ingestQueue *queue.TransactionQueue, cfg *config.Config, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	cache := reports.NewReportCache(cfg.Reports.CacheTTL)

	return &Handler{
		db:       db,
		logger:   logger,
		reports:  reports.NewService(db, cache, logger),
		importer: importer.NewImporter(ingestQueue, cfg.BatchProcessing.MaxBatchSize, logger),
		config:   cfg,
	}
}

func (h *Handler) GetAllProperties(c *gin.Context) {
	includeArchived := c.Query("include_archived") == "true"

	properties, err := h.db.GetAllProperties(includeArchived)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get properties")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get properties"})
		return
	}

	c.JSON(http.StatusOK, properties)
}

func (h *Handler) GetProperty(c *gin.Context) {
	property, err := h.db.GetProperty(c.Param("id"))
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to get property")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get property"})
		return
	}

	c.JSON(http.StatusOK, property)
}

func (h *Handler) CreateProperty(c *gin.Context) {
	var property models.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		h.logger.WithError(err).Error("Failed to parse property")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if property.Address == "" || property.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Address and status are required"})
		return
	}

	if err := h.db.CreateProperty(&property); err != nil {
		h.logger.WithError(err).Error("Failed to create property")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create property"})
		return
	}

	c.JSON(http.StatusCreated, property)
}

func (h *Handler) UpdateProperty(c *gin.Context) {
	var property models.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		h.logger.WithError(err).Error("Failed to parse property")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	property.ID = c.Param("id")

	err := h.db.UpdateProperty(&property)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to update property")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update property"})
		return
	}

	c.JSON(http.StatusOK, property)
}

func (h *Handler) ArchiveProperty(c *gin.Context) {
	var req ArchiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse archive request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	err := h.db.SetPropertyArchived(c.Param("id"), req.Archived)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to archive property")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to archive property"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handler) DeleteProperty(c *gin.Context) {
	err := h.db.DeleteProperty(c.Param("id"))
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to delete property")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete property"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handler) GetTransactions(c *gin.Context) {
	transactions, err := h.db.GetTransactions(c.Query("property_id"), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		h.logger.WithError(err).Error("Failed to get transactions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get transactions"})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

func (h *Handler) CreateTransaction(c *gin.Context) {
	var transaction models.Transaction
	if err := c.ShouldBindJSON(&transaction); err != nil {
		h.logger.WithError(err).Error("Failed to parse transaction")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if transaction.Date == "" || transaction.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date and category are required"})
		return
	}
	if transaction.ExpenseType == "" {
		transaction.ExpenseType = models.ExpenseTypeOperating
	}

	if err := h.db.CreateTransaction(&transaction); err != nil {
		h.logger.WithError(err).Error("Failed to create transaction")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

func (h *Handler) DeleteTransaction(c *gin.Context) {
	err := h.db.DeleteTransaction(c.Param("id"))
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to delete transaction")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// ImportTransactions accepts a CSV body and enqueues parsed rows for
// batched persistence. Row-level failures are reported back without
// failing the request.
func (h *Handler) ImportTransactions(c *gin.Context) {
	result, err := h.importer.Import(c.Request.Body)
	if err != nil {
		h.logger.WithError(err).Error("Failed to import transactions")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, result)
}

func (h *Handler) GetCashFlowReport(c *gin.Context) {
	c.JSON(http.StatusOK, h.reports.CashFlowReport())
}

func (h *Handler) GetAssetReport(c *gin.Context) {
	c.JSON(http.StatusOK, h.reports.AssetReport())
}

func (h *Handler) GetPropertyPLReport(c *gin.Context) {
	report, err := h.reports.PropertyPLReport(c.Param("id"), h.monthCount(c))
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate property P&L report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate P&L report"})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *Handler) GetPortfolioPLReport(c *gin.Context) {
	report, err := h.reports.PortfolioPLReport(h.monthCount(c))
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate portfolio P&L report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate P&L report"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetPortfolioSummary returns the headline dashboard figures with
// display formatting applied.
func (h *Handler) GetPortfolioSummary(c *gin.Context) {
	cashFlow := h.reports.CashFlowReport()
	assets := h.reports.AssetReport()
	if cashFlow.Data == nil || assets.Data == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate portfolio summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"properties_count":       cashFlow.Data.Summary.PropertiesCount,
		"monthly_rent_income":    format.Currency(cashFlow.Data.Summary.CurrentTotalRentIncome),
		"monthly_net_cash_flow":  format.Currency(cashFlow.Data.Summary.CurrentTotalNetCashFlow),
		"total_property_value":   format.Currency(assets.Data.Summary.TotalPropertyValue),
		"total_equity":           format.Currency(assets.Data.Summary.TotalEquity),
		"average_equity_percent": format.Percent(assets.Data.Summary.AverageEquityPercent),
		"has_warnings":           cashFlow.HasWarnings || assets.HasWarnings,
	})
}

func (h *Handler) ExportCashFlowCSV(c *gin.Context) {
	scenario := reports.ScenarioCurrent
	if strings.EqualFold(c.Query("scenario"), "potential") {
		scenario = reports.ScenarioPotential
	}

	result := h.reports.CashFlowReport()
	if result.Data == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate cash flow report"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="cash-flow-report.csv"`)
	if err := reports.WriteCashFlowCSV(c.Writer, result.Data, scenario); err != nil {
		h.logger.WithError(err).Error("Failed to write cash flow CSV")
	}
}

func (h *Handler) ExportAssetCSV(c *gin.Context) {
	result := h.reports.AssetReport()
	if result.Data == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate asset report"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="asset-report.csv"`)
	if err := reports.WriteAssetCSV(c.Writer, result.Data); err != nil {
		h.logger.WithError(err).Error("Failed to write asset CSV")
	}
}

// RefreshReports drops the report cache so the next request recomputes.
func (h *Handler) RefreshReports(c *gin.Context) {
	h.reports.Refresh()
	c.JSON(http.StatusOK, gin.H{"status": "Report cache cleared"})
}

func (h *Handler) monthCount(c *gin.Context) int {
	monthsStr := c.DefaultQuery("months", strconv.Itoa(h.config.Reports.MonthWindow))
	months, err := strconv.Atoi(monthsStr)
	if err != nil || months <= 0 {
		months = h.config.Reports.MonthWindow
	}
	return months
}
