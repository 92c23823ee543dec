// Package insight bridges the AI client into the domain: listing extraction
// into a baseline draft and commentary on the metric summary.
package insight

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/rendite-app/rendite/internal/domain/models"
	"github.com/rendite-app/rendite/pkg/clients/anthropic"
)

// ErrDisabled is returned when no Anthropic API key is configured.
var ErrDisabled = errors.New("ai features are not configured")

// Service wraps the optional AI client.
type Service struct {
	client anthropic.Client
	logger *zap.Logger
}

// NewService wires a new insight service. The client may be nil.
func NewService(client anthropic.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, logger: logger}
}

// ExtractBaseline turns free-form listing text into a baseline draft. Fields
// the model could not find stay at zero; the caller reviews the draft before
// saving an analysis from it.
func (s *Service) ExtractBaseline(ctx context.Context, listing string) (models.PropertyFinancials, string, error) {
	if s.client == nil {
		return models.PropertyFinancials{}, "", ErrDisabled
	}

	extraction, err := s.client.ExtractListing(ctx, listing)
	if err != nil {
		return models.PropertyFinancials{}, "", err
	}

	baseline := models.PropertyFinancials{PropertyType: models.PropertyTypeApartment}
	if t := models.PropertyType(extraction.PropertyType); t == models.PropertyTypeHouse || t == models.PropertyTypeMultiFamily {
		baseline.PropertyType = t
	}
	assign(&baseline.PurchasePrice, extraction.PurchasePrice)
	assign(&baseline.LivingAreaSqm, extraction.LivingAreaSqm)
	assign(&baseline.MonthlyColdRent, extraction.MonthlyColdRent)
	assign(&baseline.BuildingFeeTotal, extraction.BuildingFeeTotal)
	assign(&baseline.BuildingFeePassThrough, extraction.BuildingFeePassThrough)

	s.logger.Debug("listing extracted", zap.String("notes", extraction.Notes))
	return baseline, extraction.Notes, nil
}

// Commentary produces a short free-text assessment of a metric summary.
func (s *Service) Commentary(ctx context.Context, summary models.MetricSummary) (string, error) {
	if s.client == nil {
		return "", ErrDisabled
	}

	return s.client.CommentOnMetrics(ctx, anthropic.MetricFigures{
		MonthlyCashFlow:   summary.MonthlyOperatingCashFlow,
		NetRentalYieldPct: summary.NetRentalYieldPct,
		DSCR:              summary.DSCR,
		EquityRatioPct:    summary.EquityRatioPct,
	})
}

func assign(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
