package reports

import (
	"time"

	"rentfolio/server/internal/models"
)

// AggregateCashFlowData builds a portfolio cash-flow report from a list
// of properties. Non-operational properties are dropped before
// computation, and a failure on one property is recorded as a
// ReportError without aborting the rest. Callers are expected to have
// excluded archived properties already.
func AggregateCashFlowData(properties []models.Property) CashFlowResult {
	report := &PortfolioCashFlowReport{
		Properties:  []PropertyCashFlowData{},
		GeneratedAt: time.Now(),
	}
	var errs []ReportError

	for _, p := range properties {
		if !IsOperationalProperty(p.Status) {
			continue
		}
		data, err := CalculatePropertyCashFlow(p)
		if err != nil {
			errs = append(errs, ReportError{
				Message:         "failed to calculate property cash flow",
				PropertyID:      p.ID,
				PropertyAddress: p.Address,
				Details:         err.Error(),
			})
			continue
		}
		report.Properties = append(report.Properties, data)
	}

	summary := &report.Summary
	for _, d := range report.Properties {
		summary.CurrentTotalRentIncome += d.CurrentRentIncome
		summary.PotentialTotalRentIncome += d.PotentialRentIncome
		summary.CurrentTotalExpenses.add(d.CurrentExpenses)
		summary.PotentialTotalExpenses.add(d.PotentialExpenses)
		summary.CurrentTotalNetCashFlow += d.CurrentNetCashFlow
		summary.PotentialTotalNetCashFlow += d.PotentialNetCashFlow
		summary.TotalOperationalUnits += d.OperationalUnits
		summary.TotalBehindRentUnits += d.BehindRentUnits
		summary.TotalVacantUnits += d.VacantUnits
	}
	summary.PropertiesCount = len(report.Properties)
	summary.OperationalPropertiesCount = len(report.Properties)

	return CashFlowResult{
		Data:        report,
		Errors:      errs,
		HasWarnings: len(errs) > 0,
	}
}

// AggregateAssetData builds a portfolio asset report following the same
// algorithm as AggregateCashFlowData.
func AggregateAssetData(properties []models.Property) AssetResult {
	report := &PortfolioAssetReport{
		Properties:  []PropertyAssetData{},
		GeneratedAt: time.Now(),
	}
	var errs []ReportError

	for _, p := range properties {
		if !IsOperationalProperty(p.Status) {
			continue
		}
		data, err := CalculatePropertyAssets(p)
		if err != nil {
			errs = append(errs, ReportError{
				Message:         "failed to calculate property assets",
				PropertyID:      p.ID,
				PropertyAddress: p.Address,
				Details:         err.Error(),
			})
			continue
		}
		report.Properties = append(report.Properties, data)
	}

	summary := &report.Summary
	for _, d := range report.Properties {
		summary.TotalPropertyValue += d.CurrentValue
		summary.TotalLoanValue += d.LoanValue
		summary.TotalEquity += d.Equity
	}
	summary.PropertiesCount = len(report.Properties)
	summary.OperationalPropertiesCount = len(report.Properties)
	if summary.TotalPropertyValue > 0 {
		summary.AverageEquityPercent = summary.TotalEquity / summary.TotalPropertyValue * 100
	}

	return AssetResult{
		Data:        report,
		Errors:      errs,
		HasWarnings: len(errs) > 0,
	}
}
