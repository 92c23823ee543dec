package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rendite-app/rendite/internal/domain/models"
)

// ErrNotFound signals that the requested analysis or scenario does not exist.
var ErrNotFound = errors.New("record not found")

// Repository defines the persistence operations for analyses and scenarios.
type Repository interface {
	SaveAnalysis(ctx context.Context, analysis models.Analysis) error
	ReplaceAnalysis(ctx context.Context, analysis models.Analysis) error
	GetAnalysis(ctx context.Context, id string) (models.Analysis, error)
	ListAnalyses(ctx context.Context) ([]models.Analysis, error)
	DeleteAnalysis(ctx context.Context, id string) error

	InsertScenario(ctx context.Context, scenario models.Scenario) error
	LatestScenario(ctx context.Context, analysisID, scenarioID string) (models.Scenario, error)
	ListScenarios(ctx context.Context, analysisID string) ([]models.Scenario, error)
}

// MongoDBRepository implements the Repository interface for MongoDB.
type MongoDBRepository struct {
	client       *mongo.Client
	dbName       string
	analysisColl string
	scenarioColl string
}

// NewMongoDBRepository connects to MongoDB and verifies the connection.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client:       client,
		dbName:       dbName,
		analysisColl: "analyses",
		scenarioColl: "scenarios",
	}, nil
}

func (r *MongoDBRepository) analyses() *mongo.Collection {
	return r.client.Database(r.dbName).Collection(r.analysisColl)
}

func (r *MongoDBRepository) scenarios() *mongo.Collection {
	return r.client.Database(r.dbName).Collection(r.scenarioColl)
}

// SaveAnalysis inserts a new analysis document. Baseline and derived travel in
// the same document, so the pair is always written atomically.
func (r *MongoDBRepository) SaveAnalysis(ctx context.Context, analysis models.Analysis) error {
	if _, err := r.analyses().InsertOne(ctx, analysis); err != nil {
		return fmt.Errorf("failed to insert analysis: %w", err)
	}
	return nil
}

// ReplaceAnalysis swaps the full document for an existing analysis.
func (r *MongoDBRepository) ReplaceAnalysis(ctx context.Context, analysis models.Analysis) error {
	result, err := r.analyses().ReplaceOne(ctx, bson.M{"_id": analysis.ID}, analysis)
	if err != nil {
		return fmt.Errorf("failed to replace analysis %s: %w", analysis.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// GetAnalysis fetches one analysis by id.
func (r *MongoDBRepository) GetAnalysis(ctx context.Context, id string) (models.Analysis, error) {
	var analysis models.Analysis
	err := r.analyses().FindOne(ctx, bson.M{"_id": id}).Decode(&analysis)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Analysis{}, ErrNotFound
	}
	if err != nil {
		return models.Analysis{}, fmt.Errorf("failed to load analysis %s: %w", id, err)
	}
	return analysis, nil
}

// ListAnalyses returns every stored analysis, newest first.
func (r *MongoDBRepository) ListAnalyses(ctx context.Context) ([]models.Analysis, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.analyses().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer cursor.Close(ctx)

	analyses := []models.Analysis{}
	if err := cursor.All(ctx, &analyses); err != nil {
		return nil, fmt.Errorf("failed to decode analyses: %w", err)
	}
	return analyses, nil
}

// DeleteAnalysis removes an analysis and all of its scenario history.
func (r *MongoDBRepository) DeleteAnalysis(ctx context.Context, id string) error {
	result, err := r.analyses().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete analysis %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	if _, err := r.scenarios().DeleteMany(ctx, bson.M{"analysis_id": id}); err != nil {
		return fmt.Errorf("failed to delete scenarios of analysis %s: %w", id, err)
	}
	return nil
}

// InsertScenario appends a scenario revision. Revisions are append-only; an
// update never rewrites an earlier document.
func (r *MongoDBRepository) InsertScenario(ctx context.Context, scenario models.Scenario) error {
	if _, err := r.scenarios().InsertOne(ctx, scenario); err != nil {
		return fmt.Errorf("failed to insert scenario: %w", err)
	}
	return nil
}

// LatestScenario returns the highest revision of a scenario.
func (r *MongoDBRepository) LatestScenario(ctx context.Context, analysisID, scenarioID string) (models.Scenario, error) {
	filter := bson.M{"analysis_id": analysisID, "scenario_id": scenarioID}
	opts := options.FindOne().SetSort(bson.D{{Key: "revision", Value: -1}})

	var scenario models.Scenario
	err := r.scenarios().FindOne(ctx, filter, opts).Decode(&scenario)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Scenario{}, ErrNotFound
	}
	if err != nil {
		return models.Scenario{}, fmt.Errorf("failed to load scenario %s: %w", scenarioID, err)
	}
	return scenario, nil
}

// ListScenarios returns the latest revision of every scenario attached to an
// analysis.
func (r *MongoDBRepository) ListScenarios(ctx context.Context, analysisID string) ([]models.Scenario, error) {
	opts := options.Find().SetSort(bson.D{{Key: "scenario_id", Value: 1}, {Key: "revision", Value: 1}})
	cursor, err := r.scenarios().Find(ctx, bson.M{"analysis_id": analysisID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios for analysis %s: %w", analysisID, err)
	}
	defer cursor.Close(ctx)

	var all []models.Scenario
	if err := cursor.All(ctx, &all); err != nil {
		return nil, fmt.Errorf("failed to decode scenarios: %w", err)
	}

	// Revisions come back sorted ascending; the last one per id wins.
	latest := []models.Scenario{}
	byID := map[string]int{}
	for _, sc := range all {
		if idx, seen := byID[sc.ID]; seen {
			latest[idx] = sc
			continue
		}
		byID[sc.ID] = len(latest)
		latest = append(latest, sc)
	}
	return latest, nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
