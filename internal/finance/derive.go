// Package finance implements the deterministic rental property model:
// acquisition costs, operating cash flow, net rental yield and the
// investability score. Every function is pure; derived values are recomputed
// from the baseline as a whole and never patched incrementally.
package finance

import (
	"github.com/rendite-app/rendite/internal/domain/models"
)

// Derive recomputes every derived value from the baseline. It is the single
// entry point callers use after any baseline change.
func Derive(b models.PropertyFinancials) (models.DerivedFinancials, error) {
	costs := CalculateAcquisitionCosts(b)
	cashFlow := CalculateMonthlyCashFlow(b)

	yieldPct, err := CalculateNetRentalYield(b)
	if err != nil {
		return models.DerivedFinancials{}, err
	}

	debtService := AnnualDebtService(b)
	score := CalculateInvestabilityScore(yieldPct, cashFlow, b.Equity, debtService, BreakEvenYears(b.Equity, cashFlow))

	return models.DerivedFinancials{
		AcquisitionCosts:         costs,
		TotalAcquisitionCost:     b.PurchasePrice + costs.Total,
		MonthlyOperatingCashFlow: cashFlow,
		NetRentalYieldPct:        yieldPct,
		InvestabilityScore:       score,
	}, nil
}

// Summary exposes the four numbers the narrative generator consumes. DSCR is
// reported as zero when there is no debt service.
func Summary(b models.PropertyFinancials, d models.DerivedFinancials) models.MetricSummary {
	var dscr float64
	if ads := AnnualDebtService(b); ads > 0 {
		dscr = CalculateMonthlyNetOperatingIncome(b) * 12 / ads
	}

	var equityRatio float64
	if d.TotalAcquisitionCost != 0 {
		equityRatio = b.Equity / d.TotalAcquisitionCost * 100
	}

	return models.MetricSummary{
		MonthlyOperatingCashFlow: d.MonthlyOperatingCashFlow,
		NetRentalYieldPct:        d.NetRentalYieldPct,
		DSCR:                     dscr,
		EquityRatioPct:           equityRatio,
	}
}
