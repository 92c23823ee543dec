// Package scenario (service) persists immutable what-if scenarios for stored
// analyses and serves previews and projections through the engine.
package scenario

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rendite-app/rendite/internal/domain/models"
	"github.com/rendite-app/rendite/internal/repository/mongodb"
	engine "github.com/rendite-app/rendite/internal/scenario"
)

// Service computes and stores scenarios.
type Service struct {
	repo   mongodb.Repository
	logger *zap.Logger
	now    func() time.Time
	newID  func() string
}

// NewService wires a new scenario service instance.
func NewService(repo mongodb.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

func (s *Service) compute(baseline models.PropertyFinancials, adj models.ScenarioAdjustment, horizonYears int) (models.ScenarioResult, error) {
	if horizonYears > 0 {
		return engine.Project(baseline, adj, horizonYears)
	}
	return engine.Apply(baseline, adj)
}

// Create computes a scenario against the analysis baseline and stores it as
// revision 1.
func (s *Service) Create(ctx context.Context, analysisID, name string, adj models.ScenarioAdjustment, horizonYears int) (models.Scenario, error) {
	analysis, err := s.repo.GetAnalysis(ctx, analysisID)
	if err != nil {
		return models.Scenario{}, err
	}

	result, err := s.compute(analysis.Baseline, adj, horizonYears)
	if err != nil {
		return models.Scenario{}, err
	}

	scenario := models.Scenario{
		ID:         s.newID(),
		AnalysisID: analysisID,
		Revision:   1,
		Name:       name,
		Adjustment: adj,
		Result:     result,
		CreatedAt:  s.now().UTC(),
	}

	if err := s.repo.InsertScenario(ctx, scenario); err != nil {
		return models.Scenario{}, fmt.Errorf("insert scenario: %w", err)
	}

	s.logger.Info("scenario created",
		zap.String("analysis_id", analysisID), zap.String("scenario_id", scenario.ID))
	return scenario, nil
}

// Update recomputes the scenario with the new adjustment and appends it as
// the next revision. The previous revisions stay untouched.
func (s *Service) Update(ctx context.Context, analysisID, scenarioID, name string, adj models.ScenarioAdjustment, horizonYears int) (models.Scenario, error) {
	analysis, err := s.repo.GetAnalysis(ctx, analysisID)
	if err != nil {
		return models.Scenario{}, err
	}

	latest, err := s.repo.LatestScenario(ctx, analysisID, scenarioID)
	if err != nil {
		return models.Scenario{}, err
	}

	result, err := s.compute(analysis.Baseline, adj, horizonYears)
	if err != nil {
		return models.Scenario{}, err
	}

	next := models.Scenario{
		ID:         scenarioID,
		AnalysisID: analysisID,
		Revision:   latest.Revision + 1,
		Name:       name,
		Adjustment: adj,
		Result:     result,
		CreatedAt:  s.now().UTC(),
	}

	if err := s.repo.InsertScenario(ctx, next); err != nil {
		return models.Scenario{}, fmt.Errorf("insert scenario revision: %w", err)
	}

	s.logger.Info("scenario revised",
		zap.String("scenario_id", scenarioID), zap.Int("revision", next.Revision))
	return next, nil
}

// Get returns the latest revision of a scenario.
func (s *Service) Get(ctx context.Context, analysisID, scenarioID string) (models.Scenario, error) {
	return s.repo.LatestScenario(ctx, analysisID, scenarioID)
}

// List returns the latest revision of every scenario for an analysis.
func (s *Service) List(ctx context.Context, analysisID string) ([]models.Scenario, error) {
	return s.repo.ListScenarios(ctx, analysisID)
}

// Projection re-runs the stored scenario adjustment over the requested
// horizon against the current analysis baseline.
func (s *Service) Projection(ctx context.Context, analysisID, scenarioID string, horizonYears int) (models.ScenarioResult, error) {
	analysis, err := s.repo.GetAnalysis(ctx, analysisID)
	if err != nil {
		return models.ScenarioResult{}, err
	}

	scenario, err := s.repo.LatestScenario(ctx, analysisID, scenarioID)
	if err != nil {
		return models.ScenarioResult{}, err
	}

	return engine.Project(analysis.Baseline, scenario.Adjustment, horizonYears)
}

// Preview computes a scenario against an inline baseline without touching
// storage.
func (s *Service) Preview(baseline models.PropertyFinancials, adj models.ScenarioAdjustment, horizonYears int) (models.ScenarioResult, error) {
	return s.compute(baseline, adj, horizonYears)
}
