package reports

import (
	"os"

	"github.com/sirupsen/logrus"

	"rentfolio/server/internal/models"
)

// Store is the slice of the database the report service reads from.
type Store interface {
	GetAllProperties(includeArchived bool) ([]models.Property, error)
	GetProperty(id string) (*models.Property, error)
	GetAllTransactions() ([]models.Transaction, error)
}

// Service is the reporting entry point for the API layer. It fetches
// the inputs, pre-filters archived properties, consults the report
// cache, and converts fetch failures into ReportError values so every
// failure reaches the caller in the same shape.
type Service struct {
	store  Store
	cache  *ReportCache
	pl     *PLGenerator
	logger *logrus.Logger
}

func NewService(store Store, cache *ReportCache, logger *logrus.Logger) *Service {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	if cache == nil {
		cache = NewReportCache(DefaultCacheTTL)
	}
	return &Service{
		store:  store,
		cache:  cache,
		pl:     NewPLGenerator(),
		logger: logger,
	}
}

func fetchError(message string, err error) []ReportError {
	return []ReportError{{Message: message, Details: err.Error()}}
}

// CashFlowReport returns the portfolio cash-flow report for all
// non-archived properties, served from cache when fresh.
func (s *Service) CashFlowReport() CashFlowResult {
	properties, err := s.store.GetAllProperties(false)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load properties for cash flow report")
		return CashFlowResult{Errors: fetchError("failed to load properties", err), HasWarnings: true}
	}
	return s.cache.GetCashFlowReport(properties)
}

// AssetReport returns the portfolio asset report for all non-archived
// properties, served from cache when fresh.
func (s *Service) AssetReport() AssetResult {
	properties, err := s.store.GetAllProperties(false)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load properties for asset report")
		return AssetResult{Errors: fetchError("failed to load properties", err), HasWarnings: true}
	}
	return s.cache.GetAssetReport(properties)
}

// PropertyPLReport builds the trailing-month P&L for one property.
func (s *Service) PropertyPLReport(propertyID string, monthCount int) (*PropertyPLReport, error) {
	property, err := s.store.GetProperty(propertyID)
	if err != nil {
		return nil, err
	}
	transactions, err := s.store.GetAllTransactions()
	if err != nil {
		return nil, err
	}
	report := s.pl.GeneratePropertyPLReport(transactions, property.ID, property.Address, monthCount)
	return &report, nil
}

// PortfolioPLReport builds the trailing-month P&L across the whole
// portfolio. Archived properties stay in the lookup list so their
// transactions can be excluded.
func (s *Service) PortfolioPLReport(monthCount int) (*PortfolioPLReport, error) {
	properties, err := s.store.GetAllProperties(true)
	if err != nil {
		return nil, err
	}
	transactions, err := s.store.GetAllTransactions()
	if err != nil {
		return nil, err
	}
	report := s.pl.GeneratePortfolioPLReport(transactions, properties, monthCount)
	return &report, nil
}

// Refresh drops the cached reports so the next call recomputes.
func (s *Service) Refresh() {
	s.cache.Clear()
}
