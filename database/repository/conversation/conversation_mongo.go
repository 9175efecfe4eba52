package conversationRepo

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

// ChatAnalytics summarizes chat usage for the admin dashboard.
type ChatAnalytics struct {
	TotalSessions     int64   `json:"total_sessions"`
	TotalMessages     int64   `json:"total_messages"`
	AvgResponseTimeMs float64 `json:"avg_response_time_ms"`
}

// DayCount is a sessions-per-day aggregation row.
type DayCount struct {
	Day   string `json:"day"` // "YYYY-MM-DD"
	Count int64  `json:"count"`
}

// ConversationRepository defines methods for chat transcript and analytics access.
type ConversationRepository interface {
	AppendMessages(sessionID string, messages ...models.ChatMessage) error
	GetBySessionID(sessionID string) (*models.Conversation, error)
	RecordExchange(rec *models.ChatRecord) error
	Analytics() (*ChatAnalytics, error)
	SessionsPerDay(days int) ([]DayCount, error)
}

// MongoConversationRepo implements ConversationRepository using MongoDB.
type MongoConversationRepo struct {
	conversations *mongo.Collection
	records       *mongo.Collection
}

// NewMongoConversationRepo creates a new instance of ConversationRepository using MongoDB.
func NewMongoConversationRepo() ConversationRepository {
	db := database.DB()
	repo := &MongoConversationRepo{
		conversations: db.Collection("conversations"),
		records:       db.Collection("chat_records"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoConversationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	_, err := r.conversations.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "session_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create conversation index: %w", err)
	}

	_, err = r.records.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "session_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create chat record index: %w", err)
	}
	return nil
}

// AppendMessages adds messages to a session transcript, creating it on first use.
func (r *MongoConversationRepo) AppendMessages(sessionID string, messages ...models.ChatMessage) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	update := bson.M{
		"$push":        bson.M{"messages": bson.M{"$each": messages}},
		"$set":         bson.M{"updated_at": now},
		"$setOnInsert": bson.M{"id": sessionID, "created_at": now},
	}
	opts := options.Update().SetUpsert(true)

	if _, err := r.conversations.UpdateOne(ctx, bson.M{"session_id": sessionID}, update, opts); err != nil {
		return fmt.Errorf("failed to append messages to session %s: %w", sessionID, err)
	}
	return nil
}

// GetBySessionID retrieves a session transcript, or nil when not found.
func (r *MongoConversationRepo) GetBySessionID(sessionID string) (*models.Conversation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var conv models.Conversation
	if err := r.conversations.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&conv); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch conversation %s: %w", sessionID, err)
	}
	return &conv, nil
}

// RecordExchange stores a per-exchange analytics row.
func (r *MongoConversationRepo) RecordExchange(rec *models.ChatRecord) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	rec.CreatedAt = time.Now()
	if _, err := r.records.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("failed to record chat exchange: %w", err)
	}
	return nil
}

// Analytics aggregates overall chat usage.
func (r *MongoConversationRepo) Analytics() (*ChatAnalytics, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	sessions, err := r.conversations.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"count":   bson.M{"$sum": 1},
			"avgTime": bson.M{"$avg": "$response_time_ms"},
		}}},
	}
	cursor, err := r.records.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate chat records: %w", err)
	}
	defer cursor.Close(ctx)

	analytics := &ChatAnalytics{TotalSessions: sessions}
	if cursor.Next(ctx) {
		var row struct {
			Count   int64   `bson:"count"`
			AvgTime float64 `bson:"avgTime"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode chat analytics: %w", err)
		}
		analytics.TotalMessages = row.Count
		analytics.AvgResponseTimeMs = row.AvgTime
	}
	return analytics, nil
}

// SessionsPerDay aggregates distinct chat exchanges per day for the last N days.
func (r *MongoConversationRepo) SessionsPerDay(days int) ([]DayCount, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	since := time.Now().AddDate(0, 0, -days)
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"created_at": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$created_at"}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	cursor, err := r.records.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sessions per day: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []DayCount
	for cursor.Next(ctx) {
		var row struct {
			ID    string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode day count: %w", err)
		}
		rows = append(rows, DayCount{Day: row.ID, Count: row.Count})
	}
	return rows, nil
}
