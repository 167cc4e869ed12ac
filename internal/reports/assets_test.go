package reports

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentfolio/server/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

func TestCalculatePropertyAssets(t *testing.T) {
	tests := []struct {
		name              string
		property          models.Property
		wantValue         float64
		wantLoan          float64
		wantEquity        float64
		wantEquityPercent float64
	}{
		{
			name: "live valuation",
			property: models.Property{
				Status:            models.StatusOperational,
				CurrentHouseValue: 300000,
				ARV:               350000,
				CurrentLoanValue:  floatPtr(180000),
			},
			wantValue:         300000,
			wantLoan:          180000,
			wantEquity:        120000,
			wantEquityPercent: 40,
		},
		{
			name: "falls back to ARV without a live valuation",
			property: models.Property{
				Status:           models.StatusRehab,
				ARV:              250000,
				CurrentLoanValue: floatPtr(150000),
			},
			wantValue:         250000,
			wantLoan:          150000,
			wantEquity:        100000,
			wantEquityPercent: 40,
		},
		{
			name: "nil loan counts as zero",
			property: models.Property{
				Status:            models.StatusOperational,
				CurrentHouseValue: 200000,
			},
			wantValue:         200000,
			wantEquity:        200000,
			wantEquityPercent: 100,
		},
		{
			name: "non-positive loan counts as zero",
			property: models.Property{
				Status:            models.StatusOperational,
				CurrentHouseValue: 200000,
				CurrentLoanValue:  floatPtr(-5000),
			},
			wantValue:         200000,
			wantEquity:        200000,
			wantEquityPercent: 100,
		},
		{
			name:     "zero value yields zero percent, not NaN",
			property: models.Property{Status: models.StatusOperational},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := CalculatePropertyAssets(tt.property)
			require.NoError(t, err)

			assert.InDelta(t, tt.wantValue, data.CurrentValue, 1e-6)
			assert.InDelta(t, tt.wantLoan, data.LoanValue, 1e-6)
			assert.InDelta(t, tt.wantEquity, data.Equity, 1e-6)
			assert.InDelta(t, tt.wantEquityPercent, data.EquityPercent, 1e-6)
			// Equity identity
			assert.InDelta(t, data.CurrentValue-data.LoanValue, data.Equity, 1e-6)
		})
	}
}

func TestCalculatePropertyAssets_CarriesOperationalFlag(t *testing.T) {
	// Value computations are not gated on the flag.
	data, err := CalculatePropertyAssets(models.Property{
		Status: models.StatusOpportunity,
		ARV:    100000,
	})
	require.NoError(t, err)

	assert.False(t, data.IsOperational)
	assert.Equal(t, 100000.0, data.CurrentValue)
}

func TestCalculatePropertyAssets_RejectsNonFinite(t *testing.T) {
	_, err := CalculatePropertyAssets(models.Property{
		Status:            models.StatusOperational,
		CurrentHouseValue: math.NaN(),
	})
	assert.Error(t, err)
}
