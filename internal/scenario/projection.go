package scenario

import (
	"fmt"
	"math"

	"github.com/rendite-app/rendite/internal/domain/models"
	"github.com/rendite-app/rendite/internal/finance"
)

// MaxProjectionYears bounds the holding period a projection may cover.
const MaxProjectionYears = 50

// Project runs Apply and then walks the holding period year by year: rent and
// operating costs inflate, the loan amortizes according to the adjustment's
// loan type, and the property value appreciates when enabled. Year 1 uses the
// adjusted baseline values; inflation compounds from year 2 on.
func Project(b models.PropertyFinancials, adj models.ScenarioAdjustment, horizonYears int) (models.ScenarioResult, error) {
	if horizonYears < 1 || horizonYears > MaxProjectionYears {
		return models.ScenarioResult{}, &finance.InvalidInputError{
			Field:  "horizonYears",
			Reason: fmt.Sprintf("must be between 1 and %d, got %d", MaxProjectionYears, horizonYears),
		}
	}

	result, err := Apply(b, adj)
	if err != nil {
		return models.ScenarioResult{}, err
	}

	adjusted := AdjustBaseline(b, adj)

	principal := adjusted.PurchasePrice - adjusted.Equity
	if principal < 0 {
		principal = 0
	}
	outstanding := principal

	// The annuity payment stays fixed at its year-1 value for the whole
	// schedule; only the interest/principal split shifts.
	annuityPayment := principal * (adjusted.InterestRatePct + adjusted.AmortizationRatePct) / 100

	// Year-1 anchors for the inflating operating costs.
	baseVacancy := finance.MonthlyVacancyLoss(adjusted)
	baseMaintenance := finance.MonthlyMaintenance(adjusted)
	baseNonPassThrough := adjusted.NonPassThroughFee()

	var payoffYear *int
	years := make([]models.ProjectionYear, 0, horizonYears)

	for y := 1; y <= horizonYears; y++ {
		rentFactor := math.Pow(1+adj.RentInflationPctPerYear/100, float64(y-1))
		costFactor := math.Pow(1+adj.CostInflationPctPerYear/100, float64(y-1))

		rent := adjusted.MonthlyColdRent * rentFactor
		vacancy := baseVacancy * costFactor
		maintenance := baseMaintenance * costFactor
		nonPassThrough := baseNonPassThrough * costFactor

		var interest, scheduled float64
		if outstanding > 0 {
			interest = outstanding * adjusted.InterestRatePct / 100
			if adj.LoanType == models.LoanTypeDecliningBalance {
				// Constant absolute principal payment on the original loan.
				scheduled = principal * adjusted.AmortizationRatePct / 100
			} else {
				scheduled = annuityPayment - interest
				if scheduled < 0 {
					scheduled = 0
				}
			}
		}

		principalPaid := scheduled + adj.ExtraAnnualPrincipalPayment
		if outstanding <= 0 {
			principalPaid = 0
		}
		if principalPaid > outstanding {
			principalPaid = outstanding
		}
		outstanding -= principalPaid

		if payoffYear == nil && principal > 0 && outstanding <= 0 {
			year := y
			payoffYear = &year
		}

		monthlyDebt := (interest + principalPaid) / 12
		cashFlow := rent + adjusted.BuildingFeePassThrough -
			nonPassThrough - vacancy - maintenance -
			monthlyDebt - adjusted.ReserveFundMonthly

		value := adjusted.PurchasePrice
		if adj.AppreciationEnabled {
			value = adjusted.PurchasePrice * math.Pow(1+adj.AppreciationPctPerYear/100, float64(y))
		}
		saleProceeds := value*(1-adj.SellingCostPct/100) - outstanding

		years = append(years, models.ProjectionYear{
			Year:                     y,
			MonthlyColdRent:          rent,
			MonthlyOperatingCashFlow: cashFlow,
			InterestPaid:             interest,
			PrincipalPaid:            principalPaid,
			OutstandingPrincipal:     outstanding,
			PropertyValue:            value,
			NetSaleProceeds:          saleProceeds,
		})
	}

	result.PayoffYear = payoffYear
	result.Projection = years
	return result, nil
}
