package finance

import (
	"github.com/rendite-app/rendite/internal/domain/models"
)

// AnnualDebtService is the yearly interest plus scheduled amortization on the
// financed part of the purchase price.
func AnnualDebtService(b models.PropertyFinancials) float64 {
	return (b.PurchasePrice - b.Equity) * (b.InterestRatePct + b.AmortizationRatePct) / 100
}

// MonthlyVacancyLoss is the vacancy reserve taken out of rent plus the
// pass-through building fees.
func MonthlyVacancyLoss(b models.PropertyFinancials) float64 {
	return b.VacancyAllowancePct / 100 * (b.MonthlyColdRent + b.BuildingFeePassThrough)
}

// MonthlyMaintenance spreads the per-sqm yearly maintenance allowance across
// twelve months. A living area of zero contributes nothing; the area is an
// explicit input and is never defaulted.
func MonthlyMaintenance(b models.PropertyFinancials) float64 {
	return b.MaintenanceAllowancePerSqmYear * b.LivingAreaSqm / 12
}

// CalculateMonthlyNetOperatingIncome is the monthly operating result before
// debt service: rent plus pass-through fees, less the owner-borne building
// cost, vacancy reserve, maintenance and reserve fund.
func CalculateMonthlyNetOperatingIncome(b models.PropertyFinancials) float64 {
	return b.MonthlyColdRent + b.BuildingFeePassThrough -
		b.NonPassThroughFee() -
		MonthlyVacancyLoss(b) -
		MonthlyMaintenance(b) -
		b.ReserveFundMonthly
}

// CalculateMonthlyCashFlow is the signed monthly pre-tax cash flow. A negative
// result is a valid outcome signalling an underwater investment; nothing is
// clamped here.
func CalculateMonthlyCashFlow(b models.PropertyFinancials) float64 {
	return CalculateMonthlyNetOperatingIncome(b) - AnnualDebtService(b)/12
}
