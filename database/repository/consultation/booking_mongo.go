package consultationRepo

import (
	"fmt"
	"time"

	"lightfield/database"
	"lightfield/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BookingFilter narrows admin booking listings.
type BookingFilter struct {
	Status      string
	ClientEmail string
	DateFrom    string // "YYYY-MM-DD" on preferred_date
	DateTo      string
}

// BookingStats summarizes booking volume and revenue for the admin dashboard.
type BookingStats struct {
	Total     int64            `json:"total"`
	ByStatus  map[string]int64 `json:"by_status"`
	Revenue   int64            `json:"revenue"` // sum of verified amounts, major unit
	ThisMonth int64            `json:"this_month"`
}

// BookingRepository defines methods for consultation booking data access.
type BookingRepository interface {
	Create(b *models.ConsultationBooking) error
	GetByReference(reference string) (*models.ConsultationBooking, error)
	GetByID(id string) (*models.ConsultationBooking, error)
	Update(b *models.ConsultationBooking) error
	Delete(id string) error
	List(filter BookingFilter) ([]models.ConsultationBooking, error)
	Stats() (*BookingStats, error)
}

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.DB().Collection("consultation_bookings")
	repo := &MongoBookingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "reference", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(b *models.ConsultationBooking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, b)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByReference retrieves a booking by payment reference, or nil when not found.
func (r *MongoBookingRepo) GetByReference(reference string) (*models.ConsultationBooking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var b models.ConsultationBooking
	if err := r.coll.FindOne(ctx, bson.M{"reference": reference}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with reference %s: %w", reference, err)
	}
	return &b, nil
}

// GetByID retrieves a booking by its unique ID, or nil when not found.
func (r *MongoBookingRepo) GetByID(id string) (*models.ConsultationBooking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var b models.ConsultationBooking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &b, nil
}

// Update modifies an existing booking document.
func (r *MongoBookingRepo) Update(b *models.ConsultationBooking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	b.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": b.ID}, bson.M{"$set": b})
	if err != nil {
		return fmt.Errorf("failed to update booking with id %s: %w", b.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking with id %s not found", b.ID)
	}
	return nil
}

// Delete removes a booking document by its ID.
func (r *MongoBookingRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete booking with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("booking with id %s not found", id)
	}
	return nil
}

// List retrieves bookings matching the filter, newest first.
func (r *MongoBookingRepo) List(filter BookingFilter) ([]models.ConsultationBooking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.ClientEmail != "" {
		query["client_email"] = filter.ClientEmail
	}
	if filter.DateFrom != "" || filter.DateTo != "" {
		dateRange := bson.M{}
		if filter.DateFrom != "" {
			dateRange["$gte"] = filter.DateFrom
		}
		if filter.DateTo != "" {
			dateRange["$lte"] = filter.DateTo
		}
		query["preferred_date"] = dateRange
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.ConsultationBooking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// Stats aggregates booking counts per status plus verified revenue.
func (r *MongoBookingRepo) Stats() (*BookingStats, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	stats := &BookingStats{ByStatus: make(map[string]int64)}

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate bookings by status: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var row struct {
			ID    string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode status count: %w", err)
		}
		stats.ByStatus[row.ID] = row.Count
		stats.Total += row.Count
	}

	revenuePipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"payment_verified": true}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "revenue": bson.M{"$sum": "$amount"}}}},
	}
	revCursor, err := r.coll.Aggregate(ctx, revenuePipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate booking revenue: %w", err)
	}
	defer revCursor.Close(ctx)

	if revCursor.Next(ctx) {
		var row struct {
			Revenue int64 `bson:"revenue"`
		}
		if err := revCursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode revenue: %w", err)
		}
		stats.Revenue = row.Revenue
	}

	monthStart := time.Now().AddDate(0, 0, 1-time.Now().Day()).Truncate(24 * time.Hour)
	thisMonth, err := r.coll.CountDocuments(ctx, bson.M{"created_at": bson.M{"$gte": monthStart}})
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings this month: %w", err)
	}
	stats.ThisMonth = thisMonth

	return stats, nil
}
