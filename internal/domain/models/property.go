package models

// PropertyType enumerates the supported property categories.
type PropertyType string

const (
	PropertyTypeApartment   PropertyType = "apartment"
	PropertyTypeHouse       PropertyType = "house"
	PropertyTypeMultiFamily PropertyType = "multi-family-house"
)

// PropertyFinancials is the baseline input record for every calculation.
// All currency fields are expressed in whole currency units, all rates in
// percent (6.5 means 6.5%).
type PropertyFinancials struct {
	PurchasePrice          float64 `json:"purchasePrice" bson:"purchase_price"`
	LivingAreaSqm          float64 `json:"livingAreaSqm" bson:"living_area_sqm"`
	MonthlyColdRent        float64 `json:"monthlyColdRent" bson:"monthly_cold_rent"`
	BuildingFeeTotal       float64 `json:"buildingFeeTotal" bson:"building_fee_total"`
	BuildingFeePassThrough float64 `json:"buildingFeePassThrough" bson:"building_fee_pass_through"`

	// ManagementCost replaces the building-fee split for house and
	// multi-family properties.
	ManagementCost float64 `json:"managementCost" bson:"management_cost"`

	PropertyTransferTaxPct float64 `json:"propertyTransferTaxPct" bson:"property_transfer_tax_pct"`
	NotaryFeePct           float64 `json:"notaryFeePct" bson:"notary_fee_pct"`
	BrokerFeePct           float64 `json:"brokerFeePct" bson:"broker_fee_pct"`

	VacancyAllowancePct            float64 `json:"vacancyAllowancePct" bson:"vacancy_allowance_pct"`
	MaintenanceAllowancePerSqmYear float64 `json:"maintenanceAllowancePerSqmYear" bson:"maintenance_allowance_per_sqm_year"`

	Equity              float64 `json:"equity" bson:"equity"`
	InterestRatePct     float64 `json:"interestRatePct" bson:"interest_rate_pct"`
	AmortizationRatePct float64 `json:"amortizationRatePct" bson:"amortization_rate_pct"`
	ReserveFundMonthly  float64 `json:"reserveFundMonthly" bson:"reserve_fund_monthly"`

	PropertyType PropertyType `json:"propertyType" bson:"property_type"`
}

// NonPassThroughFee returns the monthly owner-borne building cost: the part of
// the Hausgeld that cannot be passed to the tenant for apartments, or the
// management cost for house and multi-family properties.
func (p PropertyFinancials) NonPassThroughFee() float64 {
	if p.PropertyType == PropertyTypeApartment {
		return p.BuildingFeeTotal - p.BuildingFeePassThrough
	}
	return p.ManagementCost
}

// AcquisitionCosts breaks the closing costs into their absolute components.
type AcquisitionCosts struct {
	TransferTax float64 `json:"transferTax" bson:"transfer_tax"`
	Notary      float64 `json:"notary" bson:"notary"`
	Broker      float64 `json:"broker" bson:"broker"`
	Total       float64 `json:"total" bson:"total"`
}

// DerivedFinancials holds every value computed from a PropertyFinancials
// baseline. It is always recomputed as a whole, never patched field by field.
type DerivedFinancials struct {
	AcquisitionCosts         AcquisitionCosts `json:"acquisitionCosts" bson:"acquisition_costs"`
	TotalAcquisitionCost     float64          `json:"totalAcquisitionCost" bson:"total_acquisition_cost"`
	MonthlyOperatingCashFlow float64          `json:"monthlyOperatingCashFlow" bson:"monthly_operating_cash_flow"`
	NetRentalYieldPct        float64          `json:"netRentalYieldPct" bson:"net_rental_yield_pct"`
	InvestabilityScore       int              `json:"investabilityScore" bson:"investability_score"`
}

// MetricSummary is the stable four-number shape consumed by the narrative
// commentary generator.
type MetricSummary struct {
	MonthlyOperatingCashFlow float64 `json:"monthlyOperatingCashFlow"`
	NetRentalYieldPct        float64 `json:"netRentalYieldPct"`
	DSCR                     float64 `json:"dscr"`
	EquityRatioPct           float64 `json:"equityRatioPct"`
}
