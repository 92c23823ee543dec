package finance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rendite-app/rendite/internal/domain/models"
	"github.com/rendite-app/rendite/internal/finance"
)

func TestCalculateAcquisitionCosts(t *testing.T) {
	costs := finance.CalculateAcquisitionCosts(exampleBaseline())

	assert.Equal(t, 19500.0, costs.TransferTax)
	assert.Equal(t, 6000.0, costs.Notary)
	assert.Equal(t, 10710.0, costs.Broker)
	assert.Equal(t, 36210.0, costs.Total)

	require.Equal(t, 336210.0, finance.TotalAcquisitionCost(exampleBaseline()))
}

func TestCalculateAcquisitionCosts_Additivity(t *testing.T) {
	cases := []struct {
		name                          string
		price, transfer, notary, broker float64
	}{
		{"typical", 300000, 6.5, 2, 3.57},
		{"no broker", 185000, 5, 1.5, 0},
		{"odd price", 123457, 6.5, 1.785, 3.57},
		{"small flat", 79990, 3.5, 2, 2.38},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := models.PropertyFinancials{
				PurchasePrice:          tc.price,
				PropertyTransferTaxPct: tc.transfer,
				NotaryFeePct:           tc.notary,
				BrokerFeePct:           tc.broker,
			}
			costs := finance.CalculateAcquisitionCosts(b)
			assert.Equal(t, costs.TransferTax+costs.Notary+costs.Broker, costs.Total)
			assert.Equal(t, tc.price+costs.Total, finance.TotalAcquisitionCost(b))
		})
	}
}

func TestCalculateAcquisitionCosts_RoundsHalfAwayFromZero(t *testing.T) {
	// 1% of 250 is exactly 2.50 and must round up to 3.
	b := models.PropertyFinancials{PurchasePrice: 250, NotaryFeePct: 1}
	assert.Equal(t, 3.0, finance.CalculateAcquisitionCosts(b).Notary)

	// A negative rate is not rejected: -2.50 rounds away from zero to -3.
	b = models.PropertyFinancials{PurchasePrice: 250, NotaryFeePct: -1}
	assert.Equal(t, -3.0, finance.CalculateAcquisitionCosts(b).Notary)
}

func TestCalculateAcquisitionCosts_ZeroPrice(t *testing.T) {
	costs := finance.CalculateAcquisitionCosts(models.PropertyFinancials{
		PropertyTransferTaxPct: 6.5,
		NotaryFeePct:           2,
		BrokerFeePct:           3.57,
	})
	assert.Equal(t, models.AcquisitionCosts{}, costs)
}
