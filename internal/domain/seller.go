package domain

import "time"

// Seller is a user's seller profile acting as point of contact for listings.
type Seller struct {
	ID        string    `bson:"_id,omitempty"`
	UserID    string    `bson:"user_id"`
	City      string    `bson:"city"`
	Location  string    `bson:"location"`
	Verified  bool      `bson:"verified"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}
