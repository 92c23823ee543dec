package models

// LoanType selects the amortization schedule used for multi-year projections.
type LoanType string

const (
	LoanTypeAnnuity          LoanType = "annuity"
	LoanTypeDecliningBalance LoanType = "declining-balance"
)

// DefaultSellingCostPct is applied when an adjustment does not override it.
const DefaultSellingCostPct = 7.0

// ScenarioAdjustment is a named overlay of deltas applied to a baseline before
// recomputing the full model. Percentage deltas are relative (+10 means +10%),
// Pp deltas are absolute percentage points.
type ScenarioAdjustment struct {
	RentDeltaPct        float64 `json:"rentDeltaPct" bson:"rent_delta_pct"`
	PriceDeltaPct       float64 `json:"priceDeltaPct" bson:"price_delta_pct"`
	InterestDeltaPp     float64 `json:"interestDeltaPp" bson:"interest_delta_pp"`
	AmortizationDeltaPp float64 `json:"amortizationDeltaPp" bson:"amortization_delta_pp"`
	EquityDeltaPct      float64 `json:"equityDeltaPct" bson:"equity_delta_pct"`

	ExtraAnnualPrincipalPayment float64 `json:"extraAnnualPrincipalPayment" bson:"extra_annual_principal_payment"`

	AppreciationEnabled    bool    `json:"appreciationEnabled" bson:"appreciation_enabled"`
	AppreciationPctPerYear float64 `json:"appreciationPctPerYear" bson:"appreciation_pct_per_year"`

	LoanType LoanType `json:"loanType" bson:"loan_type"`

	RentInflationPctPerYear float64 `json:"rentInflationPctPerYear" bson:"rent_inflation_pct_per_year"`
	CostInflationPctPerYear float64 `json:"costInflationPctPerYear" bson:"cost_inflation_pct_per_year"`

	SellingCostPct float64 `json:"sellingCostPct" bson:"selling_cost_pct"`
}

// DefaultScenarioAdjustment returns an adjustment with every delta at zero and
// the documented defaults filled in. Handlers bind request bodies on top of
// this value so absent fields keep their defaults.
func DefaultScenarioAdjustment() ScenarioAdjustment {
	return ScenarioAdjustment{
		LoanType:       LoanTypeAnnuity,
		SellingCostPct: DefaultSellingCostPct,
	}
}

// ProjectionYear is one row of a multi-year projection.
type ProjectionYear struct {
	Year                     int     `json:"year" bson:"year"`
	MonthlyColdRent          float64 `json:"monthlyColdRent" bson:"monthly_cold_rent"`
	MonthlyOperatingCashFlow float64 `json:"monthlyOperatingCashFlow" bson:"monthly_operating_cash_flow"`
	InterestPaid             float64 `json:"interestPaid" bson:"interest_paid"`
	PrincipalPaid            float64 `json:"principalPaid" bson:"principal_paid"`
	OutstandingPrincipal     float64 `json:"outstandingPrincipal" bson:"outstanding_principal"`
	PropertyValue            float64 `json:"propertyValue" bson:"property_value"`
	NetSaleProceeds          float64 `json:"netSaleProceeds" bson:"net_sale_proceeds"`
}

// ScenarioResult is the recomputed model for an adjusted baseline, with the
// debt-coverage extras and, when a horizon was requested, the projection rows.
type ScenarioResult struct {
	Derived                   DerivedFinancials `json:"derived" bson:"derived"`
	MonthlyDebtService        float64           `json:"monthlyDebtService" bson:"monthly_debt_service"`
	MonthlyNetOperatingIncome float64           `json:"monthlyNetOperatingIncome" bson:"monthly_net_operating_income"`
	DSCR                      float64           `json:"dscr" bson:"dscr"`

	// PayoffYear is the first projection year in which the outstanding
	// principal reaches zero; nil when the loan outlives the horizon or no
	// projection was run.
	PayoffYear *int `json:"payoffYear" bson:"payoff_year,omitempty"`

	Projection []ProjectionYear `json:"projection,omitempty" bson:"projection,omitempty"`
}
