package reports

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentfolio/server/internal/models"
)

func testProperties() []models.Property {
	return []models.Property{
		{
			ID:                "p1",
			Address:           "12 Main St",
			Status:            models.StatusOperational,
			ActualRent:        1800,
			PotentialRent:     2000,
			CurrentHouseValue: 300000,
			CurrentLoanValue:  floatPtr(180000),
			MonthlyExpenses:   &models.MonthlyExpenses{Mortgage: 900, Total: 1200},
			PropertyUnits:     []models.PropertyUnit{{Status: models.UnitStatusOperational}},
		},
		{
			ID:         "p2",
			Address:    "34 Oak Ave",
			Status:     models.StatusOpportunity,
			ActualRent: 999,
			ARV:        150000,
		},
		{
			ID:              "p3",
			Address:         "56 Pine Rd",
			Status:          models.StatusNeedsTenant,
			PotentialRent:   1400,
			ARV:             220000,
			MonthlyExpenses: &models.MonthlyExpenses{Mortgage: 700, Total: 950},
		},
	}
}

func TestAggregateCashFlowData(t *testing.T) {
	properties := testProperties()
	result := AggregateCashFlowData(properties)

	require.NotNil(t, result.Data)
	assert.Empty(t, result.Errors)
	assert.False(t, result.HasWarnings)

	// Non-operational p2 is dropped entirely
	require.Len(t, result.Data.Properties, 2)
	assert.Equal(t, "p1", result.Data.Properties[0].PropertyID)
	assert.Equal(t, "p3", result.Data.Properties[1].PropertyID)

	summary := result.Data.Summary
	assert.Equal(t, 2, summary.PropertiesCount)
	assert.Equal(t, summary.PropertiesCount, summary.OperationalPropertiesCount)
	assert.InDelta(t, 1800, summary.CurrentTotalRentIncome, 1e-6)
	assert.InDelta(t, 3400, summary.PotentialTotalRentIncome, 1e-6)
	assert.InDelta(t, 1600, summary.CurrentTotalExpenses.Mortgage, 1e-6)
	assert.InDelta(t, 2150, summary.CurrentTotalExpenses.Total, 1e-6)

	// Sums of sums equal sum of totals
	assert.InDelta(t, summary.CurrentTotalRentIncome-summary.CurrentTotalExpenses.Total,
		summary.CurrentTotalNetCashFlow, 1e-6)
	assert.InDelta(t, summary.PotentialTotalRentIncome-summary.PotentialTotalExpenses.Total,
		summary.PotentialTotalNetCashFlow, 1e-6)

	// Per-property cash-flow identity
	for _, p := range result.Data.Properties {
		assert.InDelta(t, p.CurrentRentIncome-p.CurrentExpenses.Total, p.CurrentNetCashFlow, 1e-6)
		assert.InDelta(t, p.PotentialRentIncome-p.PotentialExpenses.Total, p.PotentialNetCashFlow, 1e-6)
	}
}

func TestAggregateCashFlowData_IsolatesBadProperties(t *testing.T) {
	properties := testProperties()
	properties[0].ActualRent = math.NaN()

	result := AggregateCashFlowData(properties)

	require.NotNil(t, result.Data)
	require.Len(t, result.Errors, 1)
	assert.True(t, result.HasWarnings)
	assert.Equal(t, "p1", result.Errors[0].PropertyID)
	assert.Equal(t, "12 Main St", result.Errors[0].PropertyAddress)

	// The rest of the batch survives
	require.Len(t, result.Data.Properties, 1)
	assert.Equal(t, "p3", result.Data.Properties[0].PropertyID)
}

func TestAggregateCashFlowData_EmptyInput(t *testing.T) {
	result := AggregateCashFlowData(nil)

	require.NotNil(t, result.Data)
	assert.NotNil(t, result.Data.Properties)
	assert.Empty(t, result.Data.Properties)
	assert.Zero(t, result.Data.Summary.CurrentTotalRentIncome)
	assert.Empty(t, result.Errors)
	assert.False(t, result.HasWarnings)
	assert.False(t, result.Data.GeneratedAt.IsZero())
}

func TestAggregateAssetData(t *testing.T) {
	properties := testProperties()
	result := AggregateAssetData(properties)

	require.NotNil(t, result.Data)
	assert.Empty(t, result.Errors)
	require.Len(t, result.Data.Properties, 2)

	summary := result.Data.Summary
	assert.InDelta(t, 520000, summary.TotalPropertyValue, 1e-6)
	assert.InDelta(t, 180000, summary.TotalLoanValue, 1e-6)
	assert.InDelta(t, 340000, summary.TotalEquity, 1e-6)
	assert.InDelta(t, 340000.0/520000.0*100, summary.AverageEquityPercent, 1e-6)
	assert.Equal(t, 2, summary.PropertiesCount)
}

func TestAggregateAssetData_EmptyInput(t *testing.T) {
	result := AggregateAssetData([]models.Property{})

	require.NotNil(t, result.Data)
	assert.Empty(t, result.Data.Properties)
	assert.Zero(t, result.Data.Summary.AverageEquityPercent)
}

func TestAggregateFilterMatchesClassifier(t *testing.T) {
	properties := testProperties()

	expected := 0
	for _, p := range properties {
		if IsOperationalProperty(p.Status) {
			expected++
		}
	}

	result := AggregateCashFlowData(properties)
	require.NotNil(t, result.Data)
	assert.Len(t, result.Data.Properties, expected)
}
