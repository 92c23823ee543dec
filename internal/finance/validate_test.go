package finance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rendite-app/rendite/internal/finance"
)

func warningFields(warnings []finance.Warning) []string {
	fields := make([]string, 0, len(warnings))
	for _, w := range warnings {
		fields = append(fields, w.Field)
	}
	return fields
}

func TestValidate_CleanBaseline(t *testing.T) {
	assert.Empty(t, finance.Validate(exampleBaseline()))
}

func TestValidate_FlagsOutOfRangeInputs(t *testing.T) {
	b := exampleBaseline()
	b.BrokerFeePct = -3.57
	b.VacancyAllowancePct = 150
	b.BuildingFeePassThrough = b.BuildingFeeTotal + 50
	b.Equity = 500000

	fields := warningFields(finance.Validate(b))
	assert.Contains(t, fields, "brokerFeePct")
	assert.Contains(t, fields, "vacancyAllowancePct")
	assert.Contains(t, fields, "buildingFeePassThrough")
	assert.Contains(t, fields, "equity")
}

func TestValidate_ZeroAreaWithMaintenanceAllowance(t *testing.T) {
	b := exampleBaseline()
	b.LivingAreaSqm = 0
	b.MaintenanceAllowancePerSqmYear = 25

	assert.Contains(t, warningFields(finance.Validate(b)), "livingAreaSqm")
}

func TestValidate_WarningsAreAdvisoryOnly(t *testing.T) {
	b := exampleBaseline()
	b.VacancyAllowancePct = 150

	// Out-of-range inputs still compute; only a zero denominator is fatal.
	_, err := finance.Derive(b)
	assert.NoError(t, err)
}
