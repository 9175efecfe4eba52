package models

import "time"

// ConsultationService is a bookable consultation offering.
type ConsultationService struct {
	ID                string    `bson:"id" json:"id"`
	Name              string    `bson:"name" json:"name"`
	Slug              string    `bson:"slug" json:"slug"`
	Description       string    `bson:"description" json:"description"`
	ShortDescription  string    `bson:"short_description" json:"short_description"`
	Category          string    `bson:"category" json:"category"`
	Price             int64     `bson:"price" json:"price"` // major currency unit
	Currency          string    `bson:"currency" json:"currency"`
	FormattedPrice    string    `bson:"-" json:"formatted_price"`
	DurationMinutes   int       `bson:"duration_minutes" json:"duration_minutes"`
	FormattedDuration string    `bson:"-" json:"formatted_duration"`
	IconName          string    `bson:"icon_name,omitempty" json:"icon_name,omitempty"`
	ImageURL          string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	OrderPriority     int       `bson:"order_priority" json:"order_priority"`
	IsActive          bool      `bson:"is_active" json:"is_active"`
	IsFeatured        bool      `bson:"is_featured" json:"is_featured"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updated_at"`
}

// ConsultationBooking is a visitor booking keyed by its payment reference.
type ConsultationBooking struct {
	ID                       string     `bson:"id" json:"id"`
	Reference                string     `bson:"reference" json:"reference"`
	ServiceID                string     `bson:"service_id,omitempty" json:"service_id,omitempty"`
	ServiceName              string     `bson:"service_name,omitempty" json:"service_name,omitempty"`
	CustomServiceDescription string     `bson:"custom_service_description,omitempty" json:"custom_service_description,omitempty"`
	ClientName               string     `bson:"client_name" json:"client_name"`
	ClientEmail              string     `bson:"client_email" json:"client_email"`
	ClientPhone              string     `bson:"client_phone,omitempty" json:"client_phone,omitempty"`
	ClientCompany            string     `bson:"client_company,omitempty" json:"client_company,omitempty"`
	PreferredDate            string     `bson:"preferred_date" json:"preferred_date"` // "YYYY-MM-DD"
	PreferredTime            string     `bson:"preferred_time" json:"preferred_time"` // "HH:MM"
	Notes                    string     `bson:"notes,omitempty" json:"notes,omitempty"`
	AdminNotes               string     `bson:"admin_notes,omitempty" json:"admin_notes,omitempty"`
	AssignedAssociateID      string     `bson:"assigned_associate_id,omitempty" json:"assigned_associate_id,omitempty"`
	Amount                   int64      `bson:"amount" json:"amount"` // major currency unit
	Currency                 string     `bson:"currency" json:"currency"`
	PaystackAccessCode       string     `bson:"paystack_access_code,omitempty" json:"-"`
	PaymentChannel           string     `bson:"payment_channel,omitempty" json:"payment_channel,omitempty"`
	PaymentVerified          bool       `bson:"payment_verified" json:"payment_verified"`
	PaymentVerifiedAt        *time.Time `bson:"payment_verified_at,omitempty" json:"payment_verified_at,omitempty"`
	Status                   string     `bson:"status" json:"status"`
	CreatedAt                time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt                time.Time  `bson:"updated_at" json:"updated_at"`
}
