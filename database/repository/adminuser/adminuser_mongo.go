package adminuserRepo

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

// AdminUserRepository defines methods for admin account data access.
type AdminUserRepository interface {
	GetByUsername(username string) (*models.AdminUser, error)
	GetByID(id string) (*models.AdminUser, error)
	Create(u *models.AdminUser) error
}

// MongoAdminUserRepo implements AdminUserRepository using MongoDB.
type MongoAdminUserRepo struct {
	coll *mongo.Collection
}

// NewMongoAdminUserRepo creates a new instance of AdminUserRepository using MongoDB.
func NewMongoAdminUserRepo() AdminUserRepository {
	coll := database.DB().Collection("admin_users")
	repo := &MongoAdminUserRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAdminUserRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByUsername retrieves an admin by username, or nil when not found.
func (r *MongoAdminUserRepo) GetByUsername(username string) (*models.AdminUser, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var u models.AdminUser
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch admin user %s: %w", username, err)
	}
	return &u, nil
}

// GetByID retrieves an admin by its unique ID, or nil when not found.
func (r *MongoAdminUserRepo) GetByID(id string) (*models.AdminUser, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var u models.AdminUser
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch admin user with id %s: %w", id, err)
	}
	return &u, nil
}

// Create inserts a new admin account.
func (r *MongoAdminUserRepo) Create(u *models.AdminUser) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, u)
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	return nil
}
