package reports

import "time"

// ExpenseBreakdown mirrors the monthly expense categories of a property.
// The same breakdown is used for the current and potential scenarios;
// the two scenarios differ only in rent income.
type ExpenseBreakdown struct {
	Mortgage           float64 `json:"mortgage"`
	PropertyTax        float64 `json:"property_tax"`
	Insurance          float64 `json:"insurance"`
	PropertyManagement float64 `json:"property_management"`
	Utilities          float64 `json:"utilities"`
	Vacancy            float64 `json:"vacancy"`
	CapEx              float64 `json:"cap_ex"`
	Other              float64 `json:"other"`
	Total              float64 `json:"total"`
}

func (e *ExpenseBreakdown) add(other ExpenseBreakdown) {
	e.Mortgage += other.Mortgage
	e.PropertyTax += other.PropertyTax
	e.Insurance += other.Insurance
	e.PropertyManagement += other.PropertyManagement
	e.Utilities += other.Utilities
	e.Vacancy += other.Vacancy
	e.CapEx += other.CapEx
	e.Other += other.Other
	e.Total += other.Total
}

// PropertyCashFlowData is the per-property cash-flow line of a report.
type PropertyCashFlowData struct {
	PropertyID           string           `json:"property_id"`
	Address              string           `json:"address"`
	Status               string           `json:"status"`
	IsOperational        bool             `json:"is_operational"`
	CurrentRentIncome    float64          `json:"current_rent_income"`
	PotentialRentIncome  float64          `json:"potential_rent_income"`
	CurrentExpenses      ExpenseBreakdown `json:"current_expenses"`
	PotentialExpenses    ExpenseBreakdown `json:"potential_expenses"`
	CurrentNetCashFlow   float64          `json:"current_net_cash_flow"`
	PotentialNetCashFlow float64          `json:"potential_net_cash_flow"`
	OperationalUnits     int              `json:"operational_units"`
	BehindRentUnits      int              `json:"behind_rent_units"`
	VacantUnits          int              `json:"vacant_units"`
}

// CashFlowSummary holds portfolio-wide sums over the included properties.
type CashFlowSummary struct {
	PropertiesCount            int              `json:"properties_count"`
	OperationalPropertiesCount int              `json:"operational_properties_count"`
	CurrentTotalRentIncome     float64          `json:"current_total_rent_income"`
	PotentialTotalRentIncome   float64          `json:"potential_total_rent_income"`
	CurrentTotalExpenses       ExpenseBreakdown `json:"current_total_expenses"`
	PotentialTotalExpenses     ExpenseBreakdown `json:"potential_total_expenses"`
	CurrentTotalNetCashFlow    float64          `json:"current_total_net_cash_flow"`
	PotentialTotalNetCashFlow  float64          `json:"potential_total_net_cash_flow"`
	TotalOperationalUnits      int              `json:"total_operational_units"`
	TotalBehindRentUnits       int              `json:"total_behind_rent_units"`
	TotalVacantUnits           int              `json:"total_vacant_units"`
}

type PortfolioCashFlowReport struct {
	Properties  []PropertyCashFlowData `json:"properties"`
	Summary     CashFlowSummary        `json:"summary"`
	GeneratedAt time.Time              `json:"generated_at"`
}

// PropertyAssetData is the per-property equity line of a report.
type PropertyAssetData struct {
	PropertyID    string  `json:"property_id"`
	Address       string  `json:"address"`
	Status        string  `json:"status"`
	IsOperational bool    `json:"is_operational"`
	CurrentValue  float64 `json:"current_value"`
	LoanValue     float64 `json:"loan_value"`
	Equity        float64 `json:"equity"`
	EquityPercent float64 `json:"equity_percent"`
}

type AssetSummary struct {
	PropertiesCount            int     `json:"properties_count"`
	OperationalPropertiesCount int     `json:"operational_properties_count"`
	TotalPropertyValue         float64 `json:"total_property_value"`
	TotalLoanValue             float64 `json:"total_loan_value"`
	TotalEquity                float64 `json:"total_equity"`
	AverageEquityPercent       float64 `json:"average_equity_percent"`
}

type PortfolioAssetReport struct {
	Properties  []PropertyAssetData `json:"properties"`
	Summary     AssetSummary        `json:"summary"`
	GeneratedAt time.Time           `json:"generated_at"`
}

// ReportError describes a failure isolated to one property, or, when
// PropertyID is empty, a failure of the surrounding fetch.
type ReportError struct {
	Message         string `json:"message"`
	PropertyID      string `json:"property_id,omitempty"`
	PropertyAddress string `json:"property_address,omitempty"`
	Details         string `json:"details,omitempty"`
}

// CashFlowResult wraps a cash-flow report with any per-property errors
// collected while building it.
type CashFlowResult struct {
	Data        *PortfolioCashFlowReport `json:"data"`
	Errors      []ReportError            `json:"errors"`
	HasWarnings bool                     `json:"has_warnings"`
}

type AssetResult struct {
	Data        *PortfolioAssetReport `json:"data"`
	Errors      []ReportError         `json:"errors"`
	HasWarnings bool                  `json:"has_warnings"`
}

// MonthlyPLData is one calendar-month profit-and-loss bucket.
type MonthlyPLData struct {
	Month              string             `json:"month"` // YYYY-MM
	TotalIncome        float64            `json:"total_income"`
	TotalExpenses      float64            `json:"total_expenses"`
	NetIncome          float64            `json:"net_income"`
	IncomeByCategory   map[string]float64 `json:"income_by_category"`
	ExpensesByCategory map[string]float64 `json:"expenses_by_category"`
}

// PLAverage is the trailing average over the configured month window.
// The JSON name keeps the historical six-month default even when the
// window is configured differently.
type PLAverage struct {
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	NetIncome     float64 `json:"net_income"`
}

type PropertyPLReport struct {
	PropertyID      string          `json:"property_id"`
	PropertyAddress string          `json:"property_address"`
	Months          []MonthlyPLData `json:"months"`
	SixMonthAverage PLAverage       `json:"sixMonthAverage"`
}

type PortfolioPLReport struct {
	Months          []MonthlyPLData `json:"months"`
	SixMonthAverage PLAverage       `json:"sixMonthAverage"`
	LastFullMonth   MonthlyPLData   `json:"last_full_month"`
}
