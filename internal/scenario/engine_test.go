package scenario_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rendite-app/rendite/internal/domain/models"
	"github.com/rendite-app/rendite/internal/finance"
	"github.com/rendite-app/rendite/internal/scenario"
)

func exampleBaseline() models.PropertyFinancials {
	return models.PropertyFinancials{
		PurchasePrice:          300000,
		LivingAreaSqm:          80,
		MonthlyColdRent:        1200,
		BuildingFeeTotal:       250,
		BuildingFeePassThrough: 150,
		PropertyTransferTaxPct: 6.5,
		NotaryFeePct:           2,
		BrokerFeePct:           3.57,
		Equity:                 60000,
		InterestRatePct:        3.5,
		AmortizationRatePct:    2,
		PropertyType:           models.PropertyTypeApartment,
	}
}

func TestAdjustBaseline(t *testing.T) {
	adj := models.DefaultScenarioAdjustment()
	adj.RentDeltaPct = 10
	adj.PriceDeltaPct = -5
	adj.InterestDeltaPp = 1
	adj.AmortizationDeltaPp = -0.5
	adj.EquityDeltaPct = 25

	adjusted := scenario.AdjustBaseline(exampleBaseline(), adj)

	assert.InDelta(t, 1320.0, adjusted.MonthlyColdRent, 1e-9)
	assert.InDelta(t, 285000.0, adjusted.PurchasePrice, 1e-9)
	assert.Equal(t, 4.5, adjusted.InterestRatePct)
	assert.Equal(t, 1.5, adjusted.AmortizationRatePct)
	assert.InDelta(t, 75000.0, adjusted.Equity, 1e-9)

	// Untouched fields carry over unchanged.
	assert.Equal(t, 80.0, adjusted.LivingAreaSqm)
	assert.Equal(t, models.PropertyTypeApartment, adjusted.PropertyType)
}

func TestApply_ZeroDeltasReproduceBaseline(t *testing.T) {
	baseline := exampleBaseline()

	adjusted := scenario.AdjustBaseline(baseline, models.DefaultScenarioAdjustment())
	assert.Equal(t, baseline, adjusted)

	direct, err := finance.Derive(baseline)
	require.NoError(t, err)

	result, err := scenario.Apply(baseline, models.DefaultScenarioAdjustment())
	require.NoError(t, err)
	assert.Equal(t, direct, result.Derived)
}

func TestApply_RentDelta(t *testing.T) {
	adj := models.DefaultScenarioAdjustment()
	adj.RentDeltaPct = 10

	result, err := scenario.Apply(exampleBaseline(), adj)
	require.NoError(t, err)

	// 1320 + 150 - 100 - 1100.
	assert.InDelta(t, 270.0, result.Derived.MonthlyOperatingCashFlow, 1e-9)
	assert.Equal(t, 1100.0, result.MonthlyDebtService)
}

func TestApply_FullPriceDropFailsFast(t *testing.T) {
	adj := models.DefaultScenarioAdjustment()
	adj.PriceDeltaPct = -100

	_, err := scenario.Apply(exampleBaseline(), adj)
	require.Error(t, err)
	assert.True(t, finance.IsInvalidInput(err))
}

func TestApply_DebtCoverage(t *testing.T) {
	result, err := scenario.Apply(exampleBaseline(), models.DefaultScenarioAdjustment())
	require.NoError(t, err)

	assert.Equal(t, 1250.0, result.MonthlyNetOperatingIncome)
	assert.InDelta(t, 1250.0*12/13200.0, result.DSCR, 1e-9)
	assert.Nil(t, result.PayoffYear)
	assert.Empty(t, result.Projection)
}

func TestApply_NoDebtReportsZeroDSCR(t *testing.T) {
	baseline := exampleBaseline()
	baseline.Equity = baseline.PurchasePrice

	result, err := scenario.Apply(baseline, models.DefaultScenarioAdjustment())
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.MonthlyDebtService)
	assert.Equal(t, 0.0, result.DSCR)
}
