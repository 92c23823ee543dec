package finance

import (
	"math"

	"github.com/rendite-app/rendite/internal/domain/models"
)

// roundCurrency rounds to the nearest whole currency unit, half away from zero.
func roundCurrency(v float64) float64 {
	if v >= 0 {
		return math.Floor(v + 0.5)
	}
	return math.Ceil(v - 0.5)
}

// CalculateAcquisitionCosts converts the three closing-cost rates into
// absolute amounts. Each component is rounded independently; the total is the
// exact sum of the rounded components. Negative rates are not rejected here
// and simply produce negative components (Validate flags them).
func CalculateAcquisitionCosts(b models.PropertyFinancials) models.AcquisitionCosts {
	costs := models.AcquisitionCosts{
		TransferTax: roundCurrency(b.PropertyTransferTaxPct / 100 * b.PurchasePrice),
		Notary:      roundCurrency(b.NotaryFeePct / 100 * b.PurchasePrice),
		Broker:      roundCurrency(b.BrokerFeePct / 100 * b.PurchasePrice),
	}
	costs.Total = costs.TransferTax + costs.Notary + costs.Broker
	return costs
}

// TotalAcquisitionCost is the purchase price plus all closing costs.
func TotalAcquisitionCost(b models.PropertyFinancials) float64 {
	return b.PurchasePrice + CalculateAcquisitionCosts(b).Total
}
