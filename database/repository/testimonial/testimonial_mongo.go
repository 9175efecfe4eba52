package testimonialRepo

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

// TestimonialRepository defines methods for testimonial data access.
type TestimonialRepository interface {
	GetAll(activeOnly bool) ([]models.Testimonial, error)
	GetByID(id string) (*models.Testimonial, error)
	Create(t *models.Testimonial) error
	Update(t *models.Testimonial) error
	Delete(id string) error
	Reorder(items []models.ReorderItem) error
}

// MongoTestimonialRepo implements TestimonialRepository using MongoDB.
type MongoTestimonialRepo struct {
	coll *mongo.Collection
}

// NewMongoTestimonialRepo creates a new instance of TestimonialRepository using MongoDB.
func NewMongoTestimonialRepo() TestimonialRepository {
	coll := database.DB().Collection("testimonials")
	repo := &MongoTestimonialRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTestimonialRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetAll retrieves testimonials ordered by display priority.
func (r *MongoTestimonialRepo) GetAll(activeOnly bool) ([]models.Testimonial, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "order_priority", Value: 1}, {Key: "created_at", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve testimonials: %w", err)
	}
	defer cursor.Close(ctx)

	var testimonials []models.Testimonial
	if err := cursor.All(ctx, &testimonials); err != nil {
		return nil, fmt.Errorf("failed to decode testimonials: %w", err)
	}
	return testimonials, nil
}

// GetByID retrieves a testimonial by its unique ID, or nil when not found.
func (r *MongoTestimonialRepo) GetByID(id string) (*models.Testimonial, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var t models.Testimonial
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch testimonial with id %s: %w", id, err)
	}
	return &t, nil
}

// Create inserts a new testimonial document.
func (r *MongoTestimonialRepo) Create(t *models.Testimonial) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, t)
	if err != nil {
		return fmt.Errorf("failed to create testimonial: %w", err)
	}
	return nil
}

// Update modifies an existing testimonial document.
func (r *MongoTestimonialRepo) Update(t *models.Testimonial) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	t.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": t.ID}, bson.M{"$set": t})
	if err != nil {
		return fmt.Errorf("failed to update testimonial with id %s: %w", t.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("testimonial with id %s not found", t.ID)
	}
	return nil
}

// Delete removes a testimonial document by its ID.
func (r *MongoTestimonialRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete testimonial with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("testimonial with id %s not found", id)
	}
	return nil
}

// Reorder applies new display priorities in bulk.
func (r *MongoTestimonialRepo) Reorder(items []models.ReorderItem) error {
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
		return fmt.Errorf("failed to reorder testimonials: %w", err)
	}
	return nil
}
