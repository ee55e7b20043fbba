package models

import "time"

// Staff represents a clinic staff member (e.g. an audiologist) appointments are assigned to.
type Staff struct {
	ID           string    `bson:"id" json:"id"`
	DisplayName  string    `bson:"display_name" json:"displayName"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"` // e.g. "audiologist", "reception"
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}
