package models

import "time"

// BlogCategory groups blog posts for navigation and filtering.
type BlogCategory struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Slug          string    `bson:"slug" json:"slug"`
	Description   string    `bson:"description,omitempty" json:"description,omitempty"`
	OrderPriority int       `bson:"order_priority" json:"order_priority"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// BlogPost is a long-form article. Categories hold category slugs.
type BlogPost struct {
	ID               string     `bson:"id" json:"id"`
	Title            string     `bson:"title" json:"title"`
	Slug             string     `bson:"slug" json:"slug"`
	Excerpt          string     `bson:"excerpt" json:"excerpt"`
	Content          string     `bson:"content" json:"content"`
	Author           string     `bson:"author" json:"author"`
	Categories       []string   `bson:"categories" json:"categories"`
	FeaturedImageURL string     `bson:"featured_image_url,omitempty" json:"featured_image_url,omitempty"`
	MetaDescription  string     `bson:"meta_description,omitempty" json:"meta_description,omitempty"`
	MetaKeywords     string     `bson:"meta_keywords,omitempty" json:"meta_keywords,omitempty"`
	AIOverview       string     `bson:"ai_overview,omitempty" json:"ai_overview,omitempty"`
	IsPublished      bool       `bson:"is_published" json:"is_published"`
	IsFeatured       bool       `bson:"is_featured" json:"is_featured"`
	OrderPriority    int        `bson:"order_priority" json:"order_priority"`
	ViewCount        int64      `bson:"view_count" json:"view_count"`
	PublishDate      *time.Time `bson:"publish_date,omitempty" json:"publish_date,omitempty"`
	CreatedAt        time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `bson:"updated_at" json:"updated_at"`
}
