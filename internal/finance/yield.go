package finance

import (
	"github.com/rendite-app/rendite/internal/domain/models"
)

// CalculateNetRentalYield relates the annual net rental income (cold rent less
// the owner-borne building cost) to the total acquisition cost, in percent.
// A total acquisition cost of zero is an InvalidInputError, never Inf or NaN.
func CalculateNetRentalYield(b models.PropertyFinancials) (float64, error) {
	total := TotalAcquisitionCost(b)
	if total == 0 {
		return 0, &InvalidInputError{Field: "totalAcquisitionCost", Reason: "must not be zero"}
	}

	annualNetIncome := 12 * (b.MonthlyColdRent - b.NonPassThroughFee())
	return annualNetIncome / total * 100, nil
}
