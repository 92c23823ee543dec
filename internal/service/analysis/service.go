// Package analysis owns the lifecycle of stored analyses: every create or
// update re-derives the financial model and writes baseline and derived
// values as one unit.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rendite-app/rendite/internal/domain/models"
	"github.com/rendite-app/rendite/internal/finance"
	"github.com/rendite-app/rendite/internal/repository/mongodb"
	"github.com/rendite-app/rendite/internal/repository/sheets"
)

// ErrExportDisabled is returned when no spreadsheet export is configured.
var ErrExportDisabled = errors.New("spreadsheet export is not configured")

// Service implements analysis CRUD on top of the repository and the pure
// financial model.
type Service struct {
	repo     mongodb.Repository
	exporter sheets.Exporter
	logger   *zap.Logger
	now      func() time.Time
	newID    func() string
}

// NewService wires a new analysis service instance. The exporter may be nil
// when the Sheets integration is disabled.
func NewService(repo mongodb.Repository, exporter sheets.Exporter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:     repo,
		exporter: exporter,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Create derives the model for the baseline and stores the result. The
// returned warnings are advisory range findings, never blockers.
func (s *Service) Create(ctx context.Context, name string, baseline models.PropertyFinancials) (models.Analysis, []finance.Warning, error) {
	warnings := finance.Validate(baseline)

	derived, err := finance.Derive(baseline)
	if err != nil {
		return models.Analysis{}, warnings, err
	}

	now := s.now().UTC()
	analysis := models.Analysis{
		ID:        s.newID(),
		Name:      name,
		Baseline:  baseline,
		Derived:   derived,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.SaveAnalysis(ctx, analysis); err != nil {
		return models.Analysis{}, warnings, fmt.Errorf("save analysis: %w", err)
	}

	s.logger.Info("analysis created", zap.String("analysis_id", analysis.ID), zap.Int("score", derived.InvestabilityScore))
	return analysis, warnings, nil
}

// Update replaces the baseline of an existing analysis. Derivation happens
// before the single document write, so readers never observe a stale pairing.
func (s *Service) Update(ctx context.Context, id, name string, baseline models.PropertyFinancials) (models.Analysis, []finance.Warning, error) {
	existing, err := s.repo.GetAnalysis(ctx, id)
	if err != nil {
		return models.Analysis{}, nil, err
	}

	warnings := finance.Validate(baseline)

	derived, err := finance.Derive(baseline)
	if err != nil {
		return models.Analysis{}, warnings, err
	}

	existing.Name = name
	existing.Baseline = baseline
	existing.Derived = derived
	existing.UpdatedAt = s.now().UTC()

	if err := s.repo.ReplaceAnalysis(ctx, existing); err != nil {
		return models.Analysis{}, warnings, fmt.Errorf("replace analysis: %w", err)
	}

	s.logger.Info("analysis updated", zap.String("analysis_id", id))
	return existing, warnings, nil
}

// Get fetches one analysis.
func (s *Service) Get(ctx context.Context, id string) (models.Analysis, error) {
	return s.repo.GetAnalysis(ctx, id)
}

// List returns all stored analyses.
func (s *Service) List(ctx context.Context) ([]models.Analysis, error) {
	return s.repo.ListAnalyses(ctx)
}

// Delete removes an analysis and its scenario history.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteAnalysis(ctx, id)
}

// Summary returns the stable four-number shape for an analysis.
func (s *Service) Summary(ctx context.Context, id string) (models.MetricSummary, error) {
	analysis, err := s.repo.GetAnalysis(ctx, id)
	if err != nil {
		return models.MetricSummary{}, err
	}
	return finance.Summary(analysis.Baseline, analysis.Derived), nil
}

// Export appends the analysis snapshot to the configured spreadsheet.
func (s *Service) Export(ctx context.Context, id string) error {
	if s.exporter == nil {
		return ErrExportDisabled
	}

	analysis, err := s.repo.GetAnalysis(ctx, id)
	if err != nil {
		return err
	}
	return s.exporter.AppendAnalysis(ctx, analysis)
}

// RederiveAll recomputes derived values for every stored analysis and
// rewrites the documents whose numbers changed. The nightly sweep uses this
// so a model change can never leave stale scores behind.
func (s *Service) RederiveAll(ctx context.Context) (int, error) {
	analyses, err := s.repo.ListAnalyses(ctx)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, analysis := range analyses {
		derived, err := finance.Derive(analysis.Baseline)
		if err != nil {
			s.logger.Warn("skipping analysis with invalid baseline",
				zap.String("analysis_id", analysis.ID), zap.Error(err))
			continue
		}
		if derived == analysis.Derived {
			continue
		}

		analysis.Derived = derived
		analysis.UpdatedAt = s.now().UTC()
		if err := s.repo.ReplaceAnalysis(ctx, analysis); err != nil {
			return updated, fmt.Errorf("rewrite analysis %s: %w", analysis.ID, err)
		}
		updated++
	}

	return updated, nil
}
