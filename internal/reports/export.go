package reports

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Scenario selects which rent figures a cash-flow export uses.
type Scenario string

const (
	ScenarioCurrent   Scenario = "Current"
	ScenarioPotential Scenario = "Potential"
)

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// WriteCashFlowCSV flattens a cash-flow report into CSV rows with a
// header row and a trailing TOTAL row. The header wording, column order
// and two-decimal formatting are a compatibility contract with existing
// spreadsheet consumers.
func WriteCashFlowCSV(w io.Writer, report *PortfolioCashFlowReport, scenario Scenario) error {
	cw := csv.NewWriter(w)

	header := []string{
		"Address",
		"Status",
		fmt.Sprintf("%s Monthly Rent", scenario),
		"Mortgage Payment",
		"Property Tax",
		"Property Management",
		"Total Expenses",
		fmt.Sprintf("%s Net Cash Flow", scenario),
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, p := range report.Properties {
		rent, net := p.CurrentRentIncome, p.CurrentNetCashFlow
		if scenario == ScenarioPotential {
			rent, net = p.PotentialRentIncome, p.PotentialNetCashFlow
		}
		row := []string{
			p.Address,
			p.Status,
			money(rent),
			money(p.CurrentExpenses.Mortgage),
			money(p.CurrentExpenses.PropertyTax),
			money(p.CurrentExpenses.PropertyManagement),
			money(p.CurrentExpenses.Total),
			money(net),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	s := report.Summary
	totalRent, totalNet := s.CurrentTotalRentIncome, s.CurrentTotalNetCashFlow
	if scenario == ScenarioPotential {
		totalRent, totalNet = s.PotentialTotalRentIncome, s.PotentialTotalNetCashFlow
	}
	total := []string{
		"TOTAL",
		"",
		money(totalRent),
		money(s.CurrentTotalExpenses.Mortgage),
		money(s.CurrentTotalExpenses.PropertyTax),
		money(s.CurrentTotalExpenses.PropertyManagement),
		money(s.CurrentTotalExpenses.Total),
		money(totalNet),
	}
	if err := cw.Write(total); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

// WriteAssetCSV flattens an asset report into CSV rows with the same
// header/TOTAL conventions as WriteCashFlowCSV.
func WriteAssetCSV(w io.Writer, report *PortfolioAssetReport) error {
	cw := csv.NewWriter(w)

	header := []string{"Address", "Status", "Current Value", "Loan Value", "Equity", "Equity Percentage"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, p := range report.Properties {
		row := []string{
			p.Address,
			p.Status,
			money(p.CurrentValue),
			money(p.LoanValue),
			money(p.Equity),
			money(p.EquityPercent),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	s := report.Summary
	total := []string{
		"TOTAL",
		"",
		money(s.TotalPropertyValue),
		money(s.TotalLoanValue),
		money(s.TotalEquity),
		money(s.AverageEquityPercent),
	}
	if err := cw.Write(total); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}
