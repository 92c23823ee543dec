package models

// AnalysisRequest is the body for creating or replacing an analysis.
type AnalysisRequest struct {
	Name     string             `json:"name" binding:"required"`
	Baseline PropertyFinancials `json:"baseline" binding:"required"`
}

// ScenarioRequest is the body for creating or updating a scenario.
// HorizonYears of zero means no projection is run.
type ScenarioRequest struct {
	Name         string             `json:"name" binding:"required"`
	Adjustment   ScenarioAdjustment `json:"adjustment"`
	HorizonYears int                `json:"horizonYears"`
}

// PreviewRequest computes a scenario against an inline baseline without
// persisting anything.
type PreviewRequest struct {
	Baseline     PropertyFinancials `json:"baseline" binding:"required"`
	Adjustment   ScenarioAdjustment `json:"adjustment"`
	HorizonYears int                `json:"horizonYears"`
}

// ExtractionRequest carries free-form listing text for AI extraction.
type ExtractionRequest struct {
	Listing string `json:"listing" binding:"required"`
}
