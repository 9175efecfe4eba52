package categoryRepo

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

// CategoryRepository defines methods for blog category data access.
type CategoryRepository interface {
	GetAll() ([]models.BlogCategory, error)
	GetByID(id string) (*models.BlogCategory, error)
	GetBySlug(slug string) (*models.BlogCategory, error)
	Create(c *models.BlogCategory) error
	Update(c *models.BlogCategory) error
	Delete(id string) error
	Reorder(items []models.ReorderItem) error
}

// MongoCategoryRepo implements CategoryRepository using MongoDB.
type MongoCategoryRepo struct {
	coll *mongo.Collection
}

// NewMongoCategoryRepo creates a new instance of CategoryRepository using MongoDB.
func NewMongoCategoryRepo() CategoryRepository {
	coll := database.DB().Collection("blog_categories")
	repo := &MongoCategoryRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCategoryRepo) ensureIndexes() error {
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

// GetAll retrieves categories ordered by display priority then name.
func (r *MongoCategoryRepo) GetAll() ([]models.BlogCategory, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "order_priority", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []models.BlogCategory
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}

// GetByID retrieves a category by its unique ID, or nil when not found.
func (r *MongoCategoryRepo) GetByID(id string) (*models.BlogCategory, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var c models.BlogCategory
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch category with id %s: %w", id, err)
	}
	return &c, nil
}

// GetBySlug retrieves a category by slug, or nil when not found.
func (r *MongoCategoryRepo) GetBySlug(slug string) (*models.BlogCategory, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var c models.BlogCategory
	if err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch category with slug %s: %w", slug, err)
	}
	return &c, nil
}

// Create inserts a new category document.
func (r *MongoCategoryRepo) Create(c *models.BlogCategory) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, c)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// Update modifies an existing category document.
func (r *MongoCategoryRepo) Update(c *models.BlogCategory) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	c.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": c.ID}, bson.M{"$set": c})
	if err != nil {
		return fmt.Errorf("failed to update category with id %s: %w", c.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("category with id %s not found", c.ID)
	}
	return nil
}

// Delete removes a category document by its ID.
func (r *MongoCategoryRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete category with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("category with id %s not found", id)
	}
	return nil
}

// Reorder applies new display priorities in bulk.
func (r *MongoCategoryRepo) Reorder(items []models.ReorderItem) error {
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
		return fmt.Errorf("failed to reorder categories: %w", err)
	}
	return nil
}
