package consultationRepo

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

// ServiceRepository defines methods for consultation service data access.
type ServiceRepository interface {
	GetAll(activeOnly bool) ([]models.ConsultationService, error)
	GetBySlug(slug string) (*models.ConsultationService, error)
	GetByID(id string) (*models.ConsultationService, error)
	GetFeatured() ([]models.ConsultationService, error)
	Create(s *models.ConsultationService) error
	Update(s *models.ConsultationService) error
	Delete(id string) error
	Reorder(items []models.ReorderItem) error
}

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo creates a new instance of ServiceRepository using MongoDB.
func NewMongoServiceRepo() ServiceRepository {
	coll := database.DB().Collection("consultation_services")
	repo := &MongoServiceRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoServiceRepo) ensureIndexes() error {
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

// GetAll retrieves services ordered by display priority.
func (r *MongoServiceRepo) GetAll(activeOnly bool) ([]models.ConsultationService, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "order_priority", Value: 1}, {Key: "name", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve consultation services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.ConsultationService
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode consultation services: %w", err)
	}
	return services, nil
}

// GetBySlug retrieves a service by slug, or nil when not found.
func (r *MongoServiceRepo) GetBySlug(slug string) (*models.ConsultationService, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var s models.ConsultationService
	if err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&s); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service with slug %s: %w", slug, err)
	}
	return &s, nil
}

// GetByID retrieves a service by its unique ID, or nil when not found.
func (r *MongoServiceRepo) GetByID(id string) (*models.ConsultationService, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var s models.ConsultationService
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&s); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, err)
	}
	return &s, nil
}

// GetFeatured retrieves featured active services.
func (r *MongoServiceRepo) GetFeatured() ([]models.ConsultationService, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"is_featured": true, "is_active": true}
	opts := options.Find().SetSort(bson.D{{Key: "order_priority", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve featured services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.ConsultationService
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode featured services: %w", err)
	}
	return services, nil
}

// Create inserts a new service document.
func (r *MongoServiceRepo) Create(s *models.ConsultationService) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, s)
	if err != nil {
		return fmt.Errorf("failed to create consultation service: %w", err)
	}
	return nil
}

// Update modifies an existing service document.
func (r *MongoServiceRepo) Update(s *models.ConsultationService) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	s.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": s.ID}, bson.M{"$set": s})
	if err != nil {
		return fmt.Errorf("failed to update service with id %s: %w", s.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("service with id %s not found", s.ID)
	}
	return nil
}

// Delete removes a service document by its ID.
func (r *MongoServiceRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete service with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("service with id %s not found", id)
	}
	return nil
}

// Reorder applies new display priorities in bulk.
func (r *MongoServiceRepo) Reorder(items []models.ReorderItem) error {
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
		return fmt.Errorf("failed to reorder services: %w", err)
	}
	return nil
}
