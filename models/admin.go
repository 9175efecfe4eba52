package models

import "time"

// AdminUser is a staff account for the management dashboard.
type AdminUser struct {
	ID           string    `bson:"id" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	IsStaff      bool      `bson:"is_staff" json:"is_staff"`
	IsSuperuser  bool      `bson:"is_superuser" json:"is_superuser"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}
