package finance_test

import (
	"github.com/rendite-app/rendite/internal/domain/models"
)

// exampleBaseline is the worked condominium example used across the suite:
// 300k purchase with 6.5/2/3.57 closing rates, 240k financed at 5.5% combined,
// a 250/150 Hausgeld split and no vacancy or maintenance allowances.
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
