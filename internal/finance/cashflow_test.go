package finance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rendite-app/rendite/internal/domain/models"
	"github.com/rendite-app/rendite/internal/finance"
)

func TestCalculateMonthlyCashFlow(t *testing.T) {
	b := exampleBaseline()

	// 1200 rent + 150 pass-through - 100 owner-borne Hausgeld - 1100 debt.
	assert.Equal(t, 150.0, finance.CalculateMonthlyCashFlow(b))
	assert.Equal(t, 13200.0, finance.AnnualDebtService(b))
}

func TestCalculateMonthlyCashFlow_VacancyAndMaintenance(t *testing.T) {
	b := exampleBaseline()
	b.VacancyAllowancePct = 10
	b.MaintenanceAllowancePerSqmYear = 12 // 80 sqm -> 80/month

	// Vacancy reserves 10% of 1350, maintenance adds 80.
	assert.InDelta(t, 150.0-135.0-80.0, finance.CalculateMonthlyCashFlow(b), 1e-9)
}

func TestCalculateMonthlyCashFlow_HouseUsesManagementCost(t *testing.T) {
	b := exampleBaseline()
	b.PropertyType = models.PropertyTypeHouse
	b.BuildingFeeTotal = 0
	b.BuildingFeePassThrough = 0
	b.ManagementCost = 100

	// 1200 - 100 management - 1100 debt.
	assert.Equal(t, 0.0, finance.CalculateMonthlyCashFlow(b))
	assert.Equal(t, 100.0, b.NonPassThroughFee())
}

func TestCalculateMonthlyCashFlow_ZeroAreaIgnoresMaintenanceAllowance(t *testing.T) {
	b := exampleBaseline()
	b.LivingAreaSqm = 0
	b.MaintenanceAllowancePerSqmYear = 25

	assert.Equal(t, 150.0, finance.CalculateMonthlyCashFlow(b))
}

func TestCalculateMonthlyCashFlow_NegativeIsNotClamped(t *testing.T) {
	b := exampleBaseline()
	b.InterestRatePct = 8

	// Debt service rises to 2000/month; the result goes underwater.
	assert.Equal(t, -750.0, finance.CalculateMonthlyCashFlow(b))
}

func TestCalculateMonthlyNetOperatingIncome(t *testing.T) {
	b := exampleBaseline()
	b.ReserveFundMonthly = 50

	noi := finance.CalculateMonthlyNetOperatingIncome(b)
	assert.Equal(t, 1200.0, noi)
	assert.InDelta(t, noi-1100.0, finance.CalculateMonthlyCashFlow(b), 1e-9)
}
