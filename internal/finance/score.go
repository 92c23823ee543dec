package finance

import "math"

// Weights of the investability blend.
const (
	yieldWeight     = 0.4
	equityWeight    = 0.3
	dscrWeight      = 0.2
	breakEvenWeight = 0.1
)

// BreakEvenYears is the number of years of positive cash flow needed to
// recover the invested equity. When the cash flow is not positive the equity
// is never recovered and the result is +Inf.
func BreakEvenYears(equity, monthlyCashFlow float64) float64 {
	if monthlyCashFlow <= 0 {
		return math.Inf(1)
	}
	return equity / (monthlyCashFlow * 12)
}

// CalculateInvestabilityScore blends yield, equity cash-flow return, a DSCR
// proxy and the break-even horizon into an integer score in [0,100]. Every
// division is guarded, so the function never fails on finite inputs.
func CalculateInvestabilityScore(netYieldPct, monthlyCashFlow, equity, annualDebtService, breakEvenYears float64) int {
	yieldScore := math.Min(netYieldPct/10, 1) * 100

	var equityReturn float64
	if equity > 0 {
		equityReturn = monthlyCashFlow * 12 / equity
	}
	equityScore := math.Min(equityReturn/0.05, 1) * 100

	var dscrProxy float64
	if annualDebtService > 0 {
		dscrProxy = monthlyCashFlow * 12 / annualDebtService
	}
	dscrScore := math.Min(dscrProxy/2, 1) * 100

	var breakEvenNorm float64
	switch {
	case breakEvenYears <= 5:
		breakEvenNorm = 1
	case breakEvenYears >= 20:
		breakEvenNorm = 0
	default:
		breakEvenNorm = 1 - (breakEvenYears-5)/15
	}
	breakEvenScore := breakEvenNorm * 100

	total := yieldWeight*yieldScore + equityWeight*equityScore + dscrWeight*dscrScore + breakEvenWeight*breakEvenScore
	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}
	return int(math.Round(total))
}
