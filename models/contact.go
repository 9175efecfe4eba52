package models

import "time"

// Contact submission statuses.
const (
	ContactStatusUnread    = "unread"
	ContactStatusRead      = "read"
	ContactStatusResponded = "responded"
)

// ContactSubmission holds a message sent through the contact form.
type ContactSubmission struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Subject   string    `bson:"subject" json:"subject"`
	Message   string    `bson:"message" json:"message"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
