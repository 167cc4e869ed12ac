package reports

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentfolio/server/internal/models"
)

func TestCalculatePropertyCashFlow_Operational(t *testing.T) {
	property := models.Property{
		ID:            "p1",
		Address:       "12 Main St",
		Status:        models.StatusOperational,
		ActualRent:    1800,
		PotentialRent: 2100,
		MonthlyExpenses: &models.MonthlyExpenses{
			Mortgage:           800,
			PropertyTax:        200,
			Insurance:          100,
			PropertyManagement: 150,
			Total:              1250,
		},
	}

	data, err := CalculatePropertyCashFlow(property)
	require.NoError(t, err)

	assert.True(t, data.IsOperational)
	assert.Equal(t, 1800.0, data.CurrentRentIncome)
	assert.Equal(t, 2100.0, data.PotentialRentIncome)
	assert.Equal(t, 550.0, data.CurrentNetCashFlow)
	assert.Equal(t, 850.0, data.PotentialNetCashFlow)
	// Both scenarios share the same expense breakdown
	assert.Equal(t, data.CurrentExpenses, data.PotentialExpenses)
}

func TestCalculatePropertyCashFlow_NonOperationalZeroed(t *testing.T) {
	property := models.Property{
		ID:         "p1",
		Address:    "12 Main St",
		Status:     models.StatusOpportunity,
		ActualRent: 1800,
		MonthlyExpenses: &models.MonthlyExpenses{
			Total: 2000,
		},
	}

	data, err := CalculatePropertyCashFlow(property)
	require.NoError(t, err)

	assert.False(t, data.IsOperational)
	assert.Zero(t, data.CurrentRentIncome)
	assert.Zero(t, data.CurrentExpenses.Total)
	assert.Zero(t, data.CurrentNetCashFlow)
	assert.Zero(t, data.OperationalUnits)
}

func TestCalculatePropertyCashFlow_NilExpenses(t *testing.T) {
	property := models.Property{
		ID:         "p1",
		Status:     models.StatusOperational,
		ActualRent: 1500,
	}

	data, err := CalculatePropertyCashFlow(property)
	require.NoError(t, err)

	assert.Equal(t, ExpenseBreakdown{}, data.CurrentExpenses)
	assert.Equal(t, 1500.0, data.CurrentNetCashFlow)
}

func TestCalculatePropertyCashFlow_TotalTrustedAsGiven(t *testing.T) {
	// Total is read as stored even when it disagrees with its parts.
	property := models.Property{
		ID:         "p1",
		Status:     models.StatusOperational,
		ActualRent: 1000,
		MonthlyExpenses: &models.MonthlyExpenses{
			Mortgage: 800,
			Total:    500,
		},
	}

	data, err := CalculatePropertyCashFlow(property)
	require.NoError(t, err)

	assert.Equal(t, 500.0, data.CurrentExpenses.Total)
	assert.Equal(t, 500.0, data.CurrentNetCashFlow)
}

func TestCalculatePropertyCashFlow_UnitTallies(t *testing.T) {
	tests := []struct {
		name            string
		property        models.Property
		wantOperational int
		wantBehind      int
		wantVacant      int
	}{
		{
			name: "counts by status",
			property: models.Property{
				Status: models.StatusOperational,
				PropertyUnits: []models.PropertyUnit{
					{Status: models.UnitStatusOperational},
					{Status: models.UnitStatusBehindRent},
					{Status: models.UnitStatusVacant},
					{Status: models.UnitStatusOperational},
				},
			},
			wantOperational: 2,
			wantBehind:      1,
			wantVacant:      1,
		},
		{
			name: "unrecognized statuses count as operational",
			property: models.Property{
				Status: models.StatusOperational,
				PropertyUnits: []models.PropertyUnit{
					{Status: "Renovating"},
					{Status: ""},
				},
			},
			wantOperational: 2,
		},
		{
			name: "empty unit list falls back to the unit count field",
			property: models.Property{
				Status: models.StatusOperational,
				Units:  3,
			},
			wantOperational: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := CalculatePropertyCashFlow(tt.property)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOperational, data.OperationalUnits)
			assert.Equal(t, tt.wantBehind, data.BehindRentUnits)
			assert.Equal(t, tt.wantVacant, data.VacantUnits)
		})
	}
}

func TestCalculatePropertyCashFlow_RejectsNonFinite(t *testing.T) {
	property := models.Property{
		ID:         "p1",
		Status:     models.StatusOperational,
		ActualRent: math.NaN(),
	}

	_, err := CalculatePropertyCashFlow(property)
	assert.Error(t, err)

	property.ActualRent = 1000
	property.MonthlyExpenses = &models.MonthlyExpenses{Total: math.Inf(1)}
	_, err = CalculatePropertyCashFlow(property)
	assert.Error(t, err)
}
