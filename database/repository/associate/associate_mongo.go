package associateRepo

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

// AssociateRepository defines methods for associate data access.
type AssociateRepository interface {
	GetAll(activeOnly bool) ([]models.Associate, error)
	GetBySlug(slug string) (*models.Associate, error)
	GetByID(id string) (*models.Associate, error)
	Create(a *models.Associate) error
	Update(a *models.Associate) error
	Delete(id string) error
	Reorder(items []models.ReorderItem) error
}

// MongoAssociateRepo implements AssociateRepository using MongoDB.
type MongoAssociateRepo struct {
	coll *mongo.Collection
}

// NewMongoAssociateRepo creates a new instance of AssociateRepository using MongoDB.
func NewMongoAssociateRepo() AssociateRepository {
	coll := database.DB().Collection("associates")
	repo := &MongoAssociateRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAssociateRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetAll retrieves associates ordered by display priority then name.
func (r *MongoAssociateRepo) GetAll(activeOnly bool) ([]models.Associate, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "order_priority", Value: 1}, {Key: "name", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve associates: %w", err)
	}
	defer cursor.Close(ctx)

	var associates []models.Associate
	if err := cursor.All(ctx, &associates); err != nil {
		return nil, fmt.Errorf("failed to decode associates: %w", err)
	}
	return associates, nil
}

// GetBySlug retrieves an associate by slug, or nil when not found.
func (r *MongoAssociateRepo) GetBySlug(slug string) (*models.Associate, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var a models.Associate
	if err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch associate with slug %s: %w", slug, err)
	}
	return &a, nil
}

// GetByID retrieves an associate by its unique ID, or nil when not found.
func (r *MongoAssociateRepo) GetByID(id string) (*models.Associate, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var a models.Associate
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch associate with id %s: %w", id, err)
	}
	return &a, nil
}

// Create inserts a new associate document.
func (r *MongoAssociateRepo) Create(a *models.Associate) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, a)
	if err != nil {
		return fmt.Errorf("failed to create associate: %w", err)
	}
	return nil
}

// Update modifies an existing associate document.
func (r *MongoAssociateRepo) Update(a *models.Associate) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	a.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": a.ID}, bson.M{"$set": a})
	if err != nil {
		return fmt.Errorf("failed to update associate with id %s: %w", a.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("associate with id %s not found", a.ID)
	}
	return nil
}

// Delete removes an associate document by its ID.
func (r *MongoAssociateRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete associate with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("associate with id %s not found", id)
	}
	return nil
}

// Reorder applies new display priorities in bulk.
func (r *MongoAssociateRepo) Reorder(items []models.ReorderItem) error {
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
		return fmt.Errorf("failed to reorder associates: %w", err)
	}
	return nil
}
