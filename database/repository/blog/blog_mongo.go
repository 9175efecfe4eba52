package blogRepo

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

// ListFilter narrows blog post listings.
type ListFilter struct {
	PublishedOnly bool
	Category      string // category slug
	FeaturedOnly  bool
	Search        string
	Page          int64
	PageSize      int64
}

// BlogRepository defines methods for blog post data access.
type BlogRepository interface {
	List(filter ListFilter) ([]models.BlogPost, int64, error)
	GetBySlug(slug string) (*models.BlogPost, error)
	GetByID(id string) (*models.BlogPost, error)
	Create(p *models.BlogPost) error
	Update(p *models.BlogPost) error
	Delete(id string) error
	Reorder(items []models.ReorderItem) error
	IncrementViewCount(slug string) error
	SetAIOverview(id, overview string) error
	CountByCategory() (map[string]int64, error)
	CountByMonth(months int) ([]MonthCount, error)
	ViewsByMonth(months int) ([]MonthViews, error)
	TotalViews() (int64, error)
	MissingAIOverviewIDs() ([]string, error)
}

// MonthCount is a posts-per-month aggregation row.
type MonthCount struct {
	Month string `bson:"month" json:"month"` // "YYYY-MM"
	Count int64  `bson:"count" json:"count"`
}

// MonthViews is a views-per-month aggregation row.
type MonthViews struct {
	Month string `bson:"month" json:"month"` // "YYYY-MM"
	Views int64  `bson:"views" json:"views"`
}

// MongoBlogRepo implements BlogRepository using MongoDB.
type MongoBlogRepo struct {
	coll *mongo.Collection
}

// NewMongoBlogRepo creates a new instance of BlogRepository using MongoDB.
func NewMongoBlogRepo() BlogRepository {
	coll := database.DB().Collection("blog_posts")
	repo := &MongoBlogRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBlogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "is_published", Value: 1}, {Key: "publish_date", Value: -1}}},
		{Keys: bson.D{{Key: "categories", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// List retrieves posts matching the filter, newest first, with the total count.
func (r *MongoBlogRepo) List(filter ListFilter) ([]models.BlogPost, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if filter.PublishedOnly {
		query["is_published"] = true
	}
	if filter.Category != "" {
		query["categories"] = filter.Category
	}
	if filter.FeaturedOnly {
		query["is_featured"] = true
	}
	if filter.Search != "" {
		query["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": filter.Search, "$options": "i"}},
			bson.M{"excerpt": bson.M{"$regex": filter.Search, "$options": "i"}},
		}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count blog posts: %w", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "publish_date", Value: -1}, {Key: "created_at", Value: -1}})
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		opts.SetSkip((page - 1) * filter.PageSize).SetLimit(filter.PageSize)
	}

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve blog posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []models.BlogPost
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, 0, fmt.Errorf("failed to decode blog posts: %w", err)
	}
	return posts, total, nil
}

// GetBySlug retrieves a post by slug, or nil when not found.
func (r *MongoBlogRepo) GetBySlug(slug string) (*models.BlogPost, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.BlogPost
	if err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch blog post with slug %s: %w", slug, err)
	}
	return &p, nil
}

// GetByID retrieves a post by its unique ID, or nil when not found.
func (r *MongoBlogRepo) GetByID(id string) (*models.BlogPost, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.BlogPost
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch blog post with id %s: %w", id, err)
	}
	return &p, nil
}

// Create inserts a new post document.
func (r *MongoBlogRepo) Create(p *models.BlogPost) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return fmt.Errorf("failed to create blog post: %w", err)
	}
	return nil
}

// Update modifies an existing post document.
func (r *MongoBlogRepo) Update(p *models.BlogPost) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	p.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": p.ID}, bson.M{"$set": p})
	if err != nil {
		return fmt.Errorf("failed to update blog post with id %s: %w", p.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("blog post with id %s not found", p.ID)
	}
	return nil
}

// Delete removes a post document by its ID.
func (r *MongoBlogRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete blog post with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("blog post with id %s not found", id)
	}
	return nil
}

// Reorder applies new display priorities in bulk.
func (r *MongoBlogRepo) Reorder(items []models.ReorderItem) error {
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
		return fmt.Errorf("failed to reorder blog posts: %w", err)
	}
	return nil
}

// IncrementViewCount bumps the view counter for a published post.
func (r *MongoBlogRepo) IncrementViewCount(slug string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx, bson.M{"slug": slug}, bson.M{"$inc": bson.M{"view_count": 1}})
	if err != nil {
		return fmt.Errorf("failed to increment view count for %s: %w", slug, err)
	}
	return nil
}

// SetAIOverview stores a generated overview on a post.
func (r *MongoBlogRepo) SetAIOverview(id, overview string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id},
		bson.M{"$set": bson.M{"ai_overview": overview, "updated_at": time.Now()}})
	if err != nil {
		return fmt.Errorf("failed to set AI overview for %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("blog post with id %s not found", id)
	}
	return nil
}

// CountByCategory aggregates published post counts per category slug.
func (r *MongoBlogRepo) CountByCategory() (map[string]int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"is_published": true}}},
		{{Key: "$unwind", Value: "$categories"}},
		{{Key: "$group", Value: bson.M{"_id": "$categories", "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate posts by category: %w", err)
	}
	defer cursor.Close(ctx)

	counts := make(map[string]int64)
	for cursor.Next(ctx) {
		var row struct {
			ID    string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode category count: %w", err)
		}
		counts[row.ID] = row.Count
	}
	return counts, nil
}

// CountByMonth aggregates published posts per calendar month for the last N months.
func (r *MongoBlogRepo) CountByMonth(months int) ([]MonthCount, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	since := time.Now().AddDate(0, -months, 0)
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"is_published": true, "publish_date": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$dateToString": bson.M{"format": "%Y-%m", "date": "$publish_date"}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate posts by month: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []MonthCount
	for cursor.Next(ctx) {
		var row struct {
			ID    string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode month count: %w", err)
		}
		rows = append(rows, MonthCount{Month: row.ID, Count: row.Count})
	}
	return rows, nil
}

// ViewsByMonth sums view counts of published posts per calendar month of
// publication for the last N months.
func (r *MongoBlogRepo) ViewsByMonth(months int) ([]MonthViews, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	since := time.Now().AddDate(0, -months, 0)
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"is_published": true, "publish_date": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$dateToString": bson.M{"format": "%Y-%m", "date": "$publish_date"}},
			"views": bson.M{"$sum": "$view_count"},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate views by month: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []MonthViews
	for cursor.Next(ctx) {
		var row struct {
			ID    string `bson:"_id"`
			Views int64  `bson:"views"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode month views: %w", err)
		}
		rows = append(rows, MonthViews{Month: row.ID, Views: row.Views})
	}
	return rows, nil
}

// TotalViews sums view counts across all posts.
func (r *MongoBlogRepo) TotalViews() (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$view_count"}}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to sum view counts: %w", err)
	}
	defer cursor.Close(ctx)

	if cursor.Next(ctx) {
		var row struct {
			Total int64 `bson:"total"`
		}
		if err := cursor.Decode(&row); err != nil {
			return 0, fmt.Errorf("failed to decode view total: %w", err)
		}
		return row.Total, nil
	}
	return 0, nil
}

// MissingAIOverviewIDs lists published posts that still need an AI overview.
func (r *MongoBlogRepo) MissingAIOverviewIDs() ([]string, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"is_published": true, "$or": bson.A{
		bson.M{"ai_overview": ""},
		bson.M{"ai_overview": bson.M{"$exists": false}},
	}}
	opts := options.Find().SetProjection(bson.M{"id": 1})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find posts missing overviews: %w", err)
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var row struct {
			ID string `bson:"id"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode post id: %w", err)
		}
		ids = append(ids, row.ID)
	}
	return ids, nil
}
