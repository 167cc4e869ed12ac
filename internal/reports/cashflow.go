package reports

import (
	"fmt"
	"math"

	"rentfolio/server/internal/models"
)

// checkFinite rejects NaN and infinite inputs instead of silently
// coercing them to zero. Missing optional fields are still treated as
// zero by the callers.
func checkFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("non-finite value %v in field %s", v, field)
	}
	return nil
}

func derefOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func expenseBreakdown(e *models.MonthlyExpenses) ExpenseBreakdown {
	if e == nil {
		return ExpenseBreakdown{}
	}
	return ExpenseBreakdown{
		Mortgage:           e.Mortgage,
		PropertyTax:        e.PropertyTax,
		Insurance:          e.Insurance,
		PropertyManagement: e.PropertyManagement,
		Utilities:          e.Utilities,
		Vacancy:            e.Vacancy,
		CapEx:              e.CapEx,
		Other:              e.Other,
		Total:              e.Total,
	}
}

func validateCashFlowInputs(p models.Property) error {
	if err := checkFinite("actual_rent", p.ActualRent); err != nil {
		return err
	}
	if err := checkFinite("potential_rent", p.PotentialRent); err != nil {
		return err
	}
	if p.MonthlyExpenses == nil {
		return nil
	}
	e := p.MonthlyExpenses
	fields := map[string]float64{
		"mortgage":            e.Mortgage,
		"property_tax":        e.PropertyTax,
		"insurance":           e.Insurance,
		"property_management": e.PropertyManagement,
		"utilities":           e.Utilities,
		"vacancy":             e.Vacancy,
		"cap_ex":              e.CapEx,
		"other":               e.Other,
		"total":               e.Total,
	}
	for name, v := range fields {
		if err := checkFinite("monthly_expenses."+name, v); err != nil {
			return err
		}
	}
	return nil
}

// CalculatePropertyCashFlow computes the current and potential cash-flow
// figures for a single property.
//
// Non-operational properties report all-zero figures regardless of any
// data on the record. The expense breakdown is read as stored, with the
// Total field trusted rather than recomputed, and is shared by both
// scenarios.
func CalculatePropertyCashFlow(p models.Property) (PropertyCashFlowData, error) {
	data := PropertyCashFlowData{
		PropertyID: p.ID,
		Address:    p.Address,
		Status:     p.Status,
	}

	if !IsOperationalProperty(p.Status) {
		return data, nil
	}

	if err := validateCashFlowInputs(p); err != nil {
		return PropertyCashFlowData{}, err
	}

	expenses := expenseBreakdown(p.MonthlyExpenses)

	data.IsOperational = true
	data.CurrentRentIncome = p.ActualRent
	data.PotentialRentIncome = p.PotentialRent
	data.CurrentExpenses = expenses
	data.PotentialExpenses = expenses
	data.CurrentNetCashFlow = data.CurrentRentIncome - expenses.Total
	data.PotentialNetCashFlow = data.PotentialRentIncome - expenses.Total

	if len(p.PropertyUnits) == 0 {
		// Legacy records carry only a unit count.
		data.OperationalUnits = p.Units
		return data, nil
	}

	for _, unit := range p.PropertyUnits {
		switch unit.Status {
		case models.UnitStatusBehindRent:
			data.BehindRentUnits++
		case models.UnitStatusVacant:
			data.VacantUnits++
		default:
			// Unrecognized unit statuses count as operational.
			data.OperationalUnits++
		}
	}

	return data, nil
}
