package contactRepo

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

// ContactRepository defines methods for contact submission data access.
type ContactRepository interface {
	Create(c *models.ContactSubmission) error
	GetAll(status string) ([]models.ContactSubmission, error)
	GetByID(id string) (*models.ContactSubmission, error)
	UpdateStatus(id, status string) error
	CountByStatus() (map[string]int64, error)
}

// MongoContactRepo implements ContactRepository using MongoDB.
type MongoContactRepo struct {
	coll *mongo.Collection
}

// NewMongoContactRepo creates a new instance of ContactRepository using MongoDB.
func NewMongoContactRepo() ContactRepository {
	coll := database.DB().Collection("contact_submissions")
	repo := &MongoContactRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoContactRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new contact submission.
func (r *MongoContactRepo) Create(c *models.ContactSubmission) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.Status == "" {
		c.Status = models.ContactStatusUnread
	}

	_, err := r.coll.InsertOne(ctx, c)
	if err != nil {
		return fmt.Errorf("failed to create contact submission: %w", err)
	}
	return nil
}

// GetAll retrieves submissions, optionally filtered by status, newest first.
func (r *MongoContactRepo) GetAll(status string) ([]models.ContactSubmission, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve contact submissions: %w", err)
	}
	defer cursor.Close(ctx)

	var submissions []models.ContactSubmission
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, fmt.Errorf("failed to decode contact submissions: %w", err)
	}
	return submissions, nil
}

// GetByID retrieves a submission by its unique ID, or nil when not found.
func (r *MongoContactRepo) GetByID(id string) (*models.ContactSubmission, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var c models.ContactSubmission
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch contact submission with id %s: %w", id, err)
	}
	return &c, nil
}

// UpdateStatus moves a submission between unread/read/responded.
func (r *MongoContactRepo) UpdateStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}})
	if err != nil {
		return fmt.Errorf("failed to update contact submission with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("contact submission with id %s not found", id)
	}
	return nil
}

// CountByStatus aggregates submission counts per status.
func (r *MongoContactRepo) CountByStatus() (map[string]int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate contacts by status: %w", err)
	}
	defer cursor.Close(ctx)

	counts := make(map[string]int64)
	for cursor.Next(ctx) {
		var row struct {
			ID    string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode status count: %w", err)
		}
		counts[row.ID] = row.Count
	}
	return counts, nil
}
