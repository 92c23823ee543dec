package finance

import (
	"fmt"

	"github.com/rendite-app/rendite/internal/domain/models"
)

// Warning flags an input outside sane bounds. Warnings are advisory: the
// calculators still run and the caller decides how to surface them.
type Warning struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate runs the advisory range checks over a baseline. An empty slice
// means nothing looked suspicious.
func Validate(b models.PropertyFinancials) []Warning {
	var warnings []Warning

	add := func(field, format string, args ...any) {
		warnings = append(warnings, Warning{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if b.PurchasePrice <= 0 {
		add("purchasePrice", "should be positive, got %.2f", b.PurchasePrice)
	}
	if b.MonthlyColdRent < 0 {
		add("monthlyColdRent", "should not be negative")
	}
	for _, rate := range []struct {
		field string
		value float64
	}{
		{"propertyTransferTaxPct", b.PropertyTransferTaxPct},
		{"notaryFeePct", b.NotaryFeePct},
		{"brokerFeePct", b.BrokerFeePct},
		{"interestRatePct", b.InterestRatePct},
		{"amortizationRatePct", b.AmortizationRatePct},
	} {
		if rate.value < 0 {
			add(rate.field, "negative rate %.2f produces negative costs", rate.value)
		}
	}
	if b.VacancyAllowancePct < 0 || b.VacancyAllowancePct > 100 {
		add("vacancyAllowancePct", "expected between 0 and 100, got %.2f", b.VacancyAllowancePct)
	}
	if b.BuildingFeePassThrough > b.BuildingFeeTotal {
		add("buildingFeePassThrough", "exceeds buildingFeeTotal")
	}
	if b.LivingAreaSqm == 0 && b.MaintenanceAllowancePerSqmYear > 0 {
		add("livingAreaSqm", "area is zero, maintenance allowance has no effect")
	}
	if b.Equity < 0 {
		add("equity", "should not be negative")
	}
	if total := TotalAcquisitionCost(b); total > 0 && b.Equity > total {
		add("equity", "exceeds total acquisition cost %.2f", total)
	}

	return warnings
}
