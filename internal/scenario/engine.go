// Package scenario applies what-if adjustments to a property baseline and
// re-runs the financial model, optionally projecting the result across a
// multi-year holding period. All delta arithmetic lives here; callers never
// duplicate it.
package scenario

import (
	"github.com/rendite-app/rendite/internal/domain/models"
	"github.com/rendite-app/rendite/internal/finance"
)

// AdjustBaseline returns a copy of the baseline with the scenario deltas
// applied. Rent, price and equity deltas are relative percentages; interest
// and amortization deltas are absolute percentage points. An all-zero
// adjustment returns the baseline values bit for bit.
func AdjustBaseline(b models.PropertyFinancials, adj models.ScenarioAdjustment) models.PropertyFinancials {
	out := b
	out.MonthlyColdRent = b.MonthlyColdRent * (1 + adj.RentDeltaPct/100)
	out.PurchasePrice = b.PurchasePrice * (1 + adj.PriceDeltaPct/100)
	out.InterestRatePct = b.InterestRatePct + adj.InterestDeltaPp
	out.AmortizationRatePct = b.AmortizationRatePct + adj.AmortizationDeltaPp
	out.Equity = b.Equity * (1 + adj.EquityDeltaPct/100)
	return out
}

// Apply recomputes the full model against the adjusted baseline. The
// InvalidInput guard propagates when a price delta of -100% drives the
// adjusted price to zero.
func Apply(b models.PropertyFinancials, adj models.ScenarioAdjustment) (models.ScenarioResult, error) {
	adjusted := AdjustBaseline(b, adj)

	derived, err := finance.Derive(adjusted)
	if err != nil {
		return models.ScenarioResult{}, err
	}

	debtService := finance.AnnualDebtService(adjusted)
	noi := finance.CalculateMonthlyNetOperatingIncome(adjusted)

	var dscr float64
	if debtService > 0 {
		dscr = noi * 12 / debtService
	}

	return models.ScenarioResult{
		Derived:                   derived,
		MonthlyDebtService:        debtService / 12,
		MonthlyNetOperatingIncome: noi,
		DSCR:                      dscr,
	}, nil
}
