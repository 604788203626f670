package models

import "time"

// Instructor is a teaching provider on the marketplace.
type Instructor struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash,omitempty" json:"-"`
	Disciplines  []string  `bson:"disciplines" json:"disciplines"` // e.g., ["ski", "snowboard"]
	Resort       string    `bson:"resort,omitempty" json:"resort,omitempty"`
	Bio          string    `bson:"bio,omitempty" json:"bio,omitempty"`
	HourlyRate   float64   `bson:"hourlyRate,omitempty" json:"hourlyRate,omitempty"`
	Currency     string    `bson:"currency,omitempty" json:"currency,omitempty"`
	Status       string    `bson:"status" json:"status"` // "pending" until availability is set up, then "active"
	FCMToken     string    `bson:"fcmToken,omitempty" json:"-"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
