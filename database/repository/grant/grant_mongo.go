package grantRepo

import (
	"context"
	"fmt"
	"time"

	"lightfield/database"
	"lightfield/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GrantRepository defines methods for grant data access.
type GrantRepository interface {
	GetAll(activeOnly bool) ([]models.Grant, error)
	GetBySlug(slug string) (*models.Grant, error)
	GetByID(id string) (*models.Grant, error)
	GetFeatured(limit int64) ([]models.Grant, error)
	GetOpen() ([]models.Grant, error)
	Create(g *models.Grant) error
	Update(g *models.Grant) error
	Delete(id string) error
	Reorder(items []models.ReorderItem) error
}

// MongoGrantRepo implements GrantRepository using MongoDB.
type MongoGrantRepo struct {
	coll *mongo.Collection
}

// NewMongoGrantRepo creates a new instance of GrantRepository using MongoDB.
func NewMongoGrantRepo() GrantRepository {
	coll := database.DB().Collection("grants")
	repo := &MongoGrantRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoGrantRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "application_deadline", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetAll retrieves grants ordered by display priority.
func (r *MongoGrantRepo) GetAll(activeOnly bool) ([]models.Grant, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "order_priority", Value: 1}, {Key: "created_at", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve grants: %w", err)
	}
	defer cursor.Close(ctx)

	var grants []models.Grant
	if err := cursor.All(ctx, &grants); err != nil {
		return nil, fmt.Errorf("failed to decode grants: %w", err)
	}
	return grants, nil
}

// GetBySlug retrieves a grant by slug, or nil when not found.
func (r *MongoGrantRepo) GetBySlug(slug string) (*models.Grant, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var g models.Grant
	if err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&g); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch grant with slug %s: %w", slug, err)
	}
	return &g, nil
}

// GetByID retrieves a grant by its unique ID, or nil when not found.
func (r *MongoGrantRepo) GetByID(id string) (*models.Grant, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var g models.Grant
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&g); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch grant with id %s: %w", id, err)
	}
	return &g, nil
}

// GetFeatured retrieves the top featured active grants.
func (r *MongoGrantRepo) GetFeatured(limit int64) ([]models.Grant, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"is_featured": true, "is_active": true}
	opts := options.Find().
		SetSort(bson.D{{Key: "order_priority", Value: 1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve featured grants: %w", err)
	}
	defer cursor.Close(ctx)

	var grants []models.Grant
	if err := cursor.All(ctx, &grants); err != nil {
		return nil, fmt.Errorf("failed to decode featured grants: %w", err)
	}
	return grants, nil
}

// GetOpen retrieves open active grants ordered by nearest deadline.
func (r *MongoGrantRepo) GetOpen() ([]models.Grant, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"status": models.GrantStatusOpen, "is_active": true}
	opts := options.Find().SetSort(bson.D{{Key: "application_deadline", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve open grants: %w", err)
	}
	defer cursor.Close(ctx)

	var grants []models.Grant
	if err := cursor.All(ctx, &grants); err != nil {
		return nil, fmt.Errorf("failed to decode open grants: %w", err)
	}
	return grants, nil
}

// Create inserts a new grant document.
func (r *MongoGrantRepo) Create(g *models.Grant) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	g.CreatedAt = now
	g.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, g)
	if err != nil {
		return fmt.Errorf("failed to create grant: %w", err)
	}
	return nil
}

// Update modifies an existing grant document.
func (r *MongoGrantRepo) Update(g *models.Grant) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	g.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": g.ID}, bson.M{"$set": g})
	if err != nil {
		return fmt.Errorf("failed to update grant with id %s: %w", g.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("grant with id %s not found", g.ID)
	}
	return nil
}

// Delete removes a grant document by its ID.
func (r *MongoGrantRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete grant with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("grant with id %s not found", id)
	}
	return nil
}

// Reorder applies new display priorities in bulk.
func (r *MongoGrantRepo) Reorder(items []models.ReorderItem) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	writes := make([]mongo.WriteModel, 0, len(items))
	for _, item := range items {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"id": item.ID}).
			SetUpdate(bson.M{"$set": bson.M{"order_priority": item.OrderPriority, "updated_at": time.Now()}}))
	}
	if len(writes) == 0 {
		return nil
	}
	if _, err := r.coll.BulkWrite(ctx, writes); err != nil {
		return fmt.Errorf("failed to reorder grants: %w", err)
	}
	return nil
}
