package models

import "time"

// Analysis is the persistence envelope for a baseline and the derived values
// computed from it. Baseline and derived are written as a single document so
// no reader ever observes derived values from a partially updated baseline.
type Analysis struct {
	ID        string             `json:"id" bson:"_id"`
	Name      string             `json:"name" bson:"name"`
	Baseline  PropertyFinancials `json:"baseline" bson:"baseline"`
	Derived   DerivedFinancials  `json:"derived" bson:"derived"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updated_at"`
}

// Scenario is an immutable, versioned scenario record. Edits insert a new
// revision; prior revisions are kept as history and never rewritten.
type Scenario struct {
	ID         string             `json:"id" bson:"scenario_id"`
	AnalysisID string             `json:"analysisId" bson:"analysis_id"`
	Revision   int                `json:"revision" bson:"revision"`
	Name       string             `json:"name" bson:"name"`
	Adjustment ScenarioAdjustment `json:"adjustment" bson:"adjustment"`
	Result     ScenarioResult     `json:"result" bson:"result"`
	CreatedAt  time.Time          `json:"createdAt" bson:"created_at"`
}
