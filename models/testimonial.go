package models

import "time"

// Testimonial is a client review curated by admins.
type Testimonial struct {
	ID              string    `bson:"id" json:"id"`
	ClientName      string    `bson:"client_name" json:"client_name"`
	ClientTitle     string    `bson:"client_title,omitempty" json:"client_title,omitempty"`
	ClientCompany   string    `bson:"client_company,omitempty" json:"client_company,omitempty"`
	TestimonialText string    `bson:"testimonial_text" json:"testimonial_text"`
	ClientImageURL  string    `bson:"client_image_url,omitempty" json:"client_image_url,omitempty"`
	Rating          int       `bson:"rating" json:"rating"` // 1..5
	CaseType        string    `bson:"case_type,omitempty" json:"case_type,omitempty"`
	IsFeatured      bool      `bson:"is_featured" json:"is_featured"`
	IsActive        bool      `bson:"is_active" json:"is_active"`
	OrderPriority   int       `bson:"order_priority" json:"order_priority"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}
