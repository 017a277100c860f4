package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvestment_Valid(t *testing.T) {
	inv, err := NewInvestment(1000, 100, 5, 10)

	require.NoError(t, err)
	assert.Equal(t, Investment{Principal: 1000, Contribution: 100, Rate: 5, Years: 10}, inv)
	assert.Equal(t, 1200.0, inv.AnnualContribution())
}

func TestNewInvestment_AllZero(t *testing.T) {
	inv, err := NewInvestment(0, 0, 0, 0)

	require.NoError(t, err)
	assert.Equal(t, Investment{}, inv)
}

func TestNewInvestment_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		principal    float64
		contribution float64
		rate         float64
		years        int
	}{
		{"negative principal", -1, 100, 5, 10},
		{"negative contribution", 1000, -0.01, 5, 10},
		{"negative rate", 1000, 100, -5, 10},
		{"negative years", 1000, 100, 5, -1},
		{"all negative", -1, -1, -1, -1},
		{"NaN rate", 1000, 100, math.NaN(), 10},
		{"infinite principal", math.Inf(1), 100, 5, 10},
		{"infinite contribution", 1000, math.Inf(1), 5, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := NewInvestment(tt.principal, tt.contribution, tt.rate, tt.years)

			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, Investment{}, inv)
		})
	}
}

func TestDefaultParams(t *testing.T) {
	req := DefaultRequestParams()
	assert.Equal(t, InvestmentParams{Principal: 0, Contribution: 1, Rate: 5, Years: 5}, req)

	cli := DefaultCLIParams()
	assert.Equal(t, InvestmentParams{Principal: 0, Contribution: 1, Rate: 5, Years: 0}, cli)
}

func TestInvestmentParams_JSONKeepsDefaultsForMissingFields(t *testing.T) {
	params := DefaultRequestParams()
	require.NoError(t, json.Unmarshal([]byte(`{"principal": 250, "years": 2}`), &params))

	assert.Equal(t, 250.0, params.Principal)
	assert.Equal(t, 1.0, params.Contribution)
	assert.Equal(t, 5.0, params.Rate)
	assert.Equal(t, 2, params.Years)

	inv, err := params.Investment()
	require.NoError(t, err)
	assert.Equal(t, 2, inv.Years)
}

func TestInvestmentParams_InvalidFails(t *testing.T) {
	params := DefaultRequestParams()
	params.Principal = -1

	_, err := params.Investment()
	assert.ErrorIs(t, err, ErrInvalidInput)
}
