package models

import "time"

// Associate represents a firm lawyer profile shown on the site.
type Associate struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Slug          string    `bson:"slug" json:"slug"`
	Title         string    `bson:"title" json:"title"`
	Bio           string    `bson:"bio" json:"bio"`
	Expertise     []string  `bson:"expertise" json:"expertise"`
	ImageURL      string    `bson:"image_url" json:"image_url"`
	Email         string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone         string    `bson:"phone,omitempty" json:"phone,omitempty"`
	LinkedinURL   string    `bson:"linkedin_url,omitempty" json:"linkedin_url,omitempty"`
	TwitterURL    string    `bson:"twitter_url,omitempty" json:"twitter_url,omitempty"`
	OrderPriority int       `bson:"order_priority" json:"order_priority"`
	IsActive      bool      `bson:"is_active" json:"is_active"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}
