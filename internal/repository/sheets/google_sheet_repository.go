package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/rendite-app/rendite/internal/config"
	"github.com/rendite-app/rendite/internal/domain/models"
)

const exportRange = "Analyses!A:H"

// Exporter defines the spreadsheet export operations.
type Exporter interface {
	AppendAnalysis(ctx context.Context, analysis models.Analysis) error
}

// GoogleSheetExporter appends analysis snapshots to a spreadsheet using the
// official Google Sheets API.
type GoogleSheetExporter struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetExporter builds a Google Sheets backed exporter instance.
func NewGoogleSheetExporter(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (Exporter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetExporter{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// AppendAnalysis writes one snapshot row: name, price, total acquisition
// cost, monthly cash flow, yield, score and the update timestamp.
func (e *GoogleSheetExporter) AppendAnalysis(ctx context.Context, analysis models.Analysis) error {
	values := []interface{}{
		analysis.UpdatedAt.Format("2006-01-02"),
		analysis.Name,
		analysis.Baseline.PurchasePrice,
		analysis.Derived.TotalAcquisitionCost,
		analysis.Derived.MonthlyOperatingCashFlow,
		analysis.Derived.NetRentalYieldPct,
		analysis.Derived.InvestabilityScore,
		string(analysis.Baseline.PropertyType),
	}

	payload := &sheetsapi.ValueRange{Values: [][]interface{}{values}}

	call := e.service.Spreadsheets.Values.Append(e.spreadsheetID, exportRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append analysis %s: %w", analysis.ID, err)
	}

	e.logger.Debug("analysis appended to sheet", zap.String("analysis_id", analysis.ID))
	return nil
}
