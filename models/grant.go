package models

import "time"

// Grant statuses.
const (
	GrantStatusOpen     = "open"
	GrantStatusClosed   = "closed"
	GrantStatusUpcoming = "upcoming"
)

// Grant represents a funding opportunity published by the firm.
type Grant struct {
	ID                  string     `bson:"id" json:"id"`
	Title               string     `bson:"title" json:"title"`
	Slug                string     `bson:"slug" json:"slug"`
	GrantType           string     `bson:"grant_type" json:"grant_type"`
	Amount              int64      `bson:"amount" json:"amount"`
	Currency            string     `bson:"currency" json:"currency"`
	ShortDescription    string     `bson:"short_description" json:"short_description"`
	Description         string     `bson:"description" json:"description"`
	ImageURL            string     `bson:"image_url,omitempty" json:"image_url,omitempty"`
	TargetAudience      string     `bson:"target_audience,omitempty" json:"target_audience,omitempty"`
	EligibilityCriteria []string   `bson:"eligibility_criteria" json:"eligibility_criteria"`
	Requirements        []string   `bson:"requirements" json:"requirements"`
	Guidelines          []string   `bson:"guidelines" json:"guidelines"`
	ApplicationDeadline *time.Time `bson:"application_deadline,omitempty" json:"application_deadline,omitempty"`
	Status              string     `bson:"status" json:"status"`
	IsFeatured          bool       `bson:"is_featured" json:"is_featured"`
	IsActive            bool       `bson:"is_active" json:"is_active"`
	OrderPriority       int        `bson:"order_priority" json:"order_priority"`
	CreatedAt           time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time  `bson:"updated_at" json:"updated_at"`
}

// IsApplicationOpen reports whether the grant currently accepts applications.
func (g *Grant) IsApplicationOpen(now time.Time) bool {
	if g.Status != GrantStatusOpen || !g.IsActive {
		return false
	}
	if g.ApplicationDeadline == nil {
		return true
	}
	return g.ApplicationDeadline.After(now)
}

// DaysUntilDeadline returns the whole days remaining before the deadline,
// or -1 when no deadline is set or it has passed.
func (g *Grant) DaysUntilDeadline(now time.Time) int {
	if g.ApplicationDeadline == nil || !g.ApplicationDeadline.After(now) {
		return -1
	}
	return int(g.ApplicationDeadline.Sub(now).Hours() / 24)
}
