package analysis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rendite-app/rendite/internal/domain/models"
	"github.com/rendite-app/rendite/internal/finance"
	"github.com/rendite-app/rendite/internal/repository/mongodb"
)

// fakeRepo is an in-memory stand-in for the MongoDB repository.
type fakeRepo struct {
	analyses  map[string]models.Analysis
	scenarios []models.Scenario
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{analyses: map[string]models.Analysis{}}
}

func (f *fakeRepo) SaveAnalysis(_ context.Context, a models.Analysis) error {
	f.analyses[a.ID] = a
	return nil
}

func (f *fakeRepo) ReplaceAnalysis(_ context.Context, a models.Analysis) error {
	if _, ok := f.analyses[a.ID]; !ok {
		return mongodb.ErrNotFound
	}
	f.analyses[a.ID] = a
	return nil
}

func (f *fakeRepo) GetAnalysis(_ context.Context, id string) (models.Analysis, error) {
	a, ok := f.analyses[id]
	if !ok {
		return models.Analysis{}, mongodb.ErrNotFound
	}
	return a, nil
}

func (f *fakeRepo) ListAnalyses(_ context.Context) ([]models.Analysis, error) {
	out := []models.Analysis{}
	for _, a := range f.analyses {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeRepo) DeleteAnalysis(_ context.Context, id string) error {
	if _, ok := f.analyses[id]; !ok {
		return mongodb.ErrNotFound
	}
	delete(f.analyses, id)
	return nil
}

func (f *fakeRepo) InsertScenario(_ context.Context, sc models.Scenario) error {
	f.scenarios = append(f.scenarios, sc)
	return nil
}

func (f *fakeRepo) LatestScenario(_ context.Context, analysisID, scenarioID string) (models.Scenario, error) {
	var latest models.Scenario
	found := false
	for _, sc := range f.scenarios {
		if sc.AnalysisID == analysisID && sc.ID == scenarioID && (!found || sc.Revision > latest.Revision) {
			latest = sc
			found = true
		}
	}
	if !found {
		return models.Scenario{}, mongodb.ErrNotFound
	}
	return latest, nil
}

func (f *fakeRepo) ListScenarios(_ context.Context, analysisID string) ([]models.Scenario, error) {
	out := []models.Scenario{}
	for _, sc := range f.scenarios {
		if sc.AnalysisID == analysisID {
			out = append(out, sc)
		}
	}
	return out, nil
}

func testBaseline() models.PropertyFinancials {
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

func newTestService(repo *fakeRepo) *Service {
	svc := NewService(repo, nil, nil)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	svc.newID = func() string { return "an_test" }
	return svc
}

func TestCreateDerivesBeforeWrite(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	created, warnings, err := svc.Create(context.Background(), "Altbau Leipzig", testBaseline())
	require.NoError(t, err)
	assert.Empty(t, warnings)

	stored := repo.analyses[created.ID]
	assert.Equal(t, 150.0, stored.Derived.MonthlyOperatingCashFlow)
	assert.Equal(t, 336210.0, stored.Derived.TotalAcquisitionCost)

	// Stored derived values always match a fresh derivation of the baseline.
	fresh, err := finance.Derive(stored.Baseline)
	require.NoError(t, err)
	assert.Equal(t, fresh, stored.Derived)
}

func TestCreateRejectsZeroPrice(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	baseline := testBaseline()
	baseline.PurchasePrice = 0

	_, warnings, err := svc.Create(context.Background(), "broken", baseline)
	require.Error(t, err)
	assert.True(t, finance.IsInvalidInput(err))
	assert.NotEmpty(t, warnings, "zero price should also be flagged by validation")
	assert.Empty(t, repo.analyses, "nothing may be written on a failed derivation")
}

func TestUpdateRederivesAtomically(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	created, _, err := svc.Create(context.Background(), "Altbau Leipzig", testBaseline())
	require.NoError(t, err)

	changed := testBaseline()
	changed.MonthlyColdRent = 1320

	updated, _, err := svc.Update(context.Background(), created.ID, "Altbau Leipzig v2", changed)
	require.NoError(t, err)
	assert.InDelta(t, 270.0, updated.Derived.MonthlyOperatingCashFlow, 1e-9)

	stored := repo.analyses[created.ID]
	assert.Equal(t, updated.Derived, stored.Derived)
	assert.Equal(t, changed, stored.Baseline)
}

func TestUpdateUnknownAnalysis(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, _, err := svc.Update(context.Background(), "missing", "x", testBaseline())
	assert.ErrorIs(t, err, mongodb.ErrNotFound)
}

func TestSummaryShape(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	created, _, err := svc.Create(context.Background(), "Altbau Leipzig", testBaseline())
	require.NoError(t, err)

	summary, err := svc.Summary(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, 150.0, summary.MonthlyOperatingCashFlow)
	assert.InDelta(t, 1250.0*12/13200.0, summary.DSCR, 1e-9)
	assert.InDelta(t, 60000.0/336210.0*100, summary.EquityRatioPct, 1e-9)
}

func TestExportDisabled(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	created, _, err := svc.Create(context.Background(), "Altbau Leipzig", testBaseline())
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Export(context.Background(), created.ID), ErrExportDisabled)
}

func TestRederiveAllRefreshesStaleDocuments(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	created, _, err := svc.Create(context.Background(), "Altbau Leipzig", testBaseline())
	require.NoError(t, err)

	// Simulate a document written by an older model version.
	stale := repo.analyses[created.ID]
	stale.Derived.InvestabilityScore = 1
	repo.analyses[created.ID] = stale

	updated, err := svc.RederiveAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	fresh, err := finance.Derive(testBaseline())
	require.NoError(t, err)
	assert.Equal(t, fresh, repo.analyses[created.ID].Derived)

	// A second sweep finds nothing to do.
	updated, err = svc.RederiveAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, updated)
}
