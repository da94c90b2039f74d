package dto

import "time"

// CreateSellerRequest payload for the self-service path.
type CreateSellerRequest struct {
	City     string `json:"city"`
	Location string `json:"location"`
}

// CreateVerifiedSellerRequest payload for the admin path.
type CreateVerifiedSellerRequest struct {
	UserID   string `json:"user_id"`
	City     string `json:"city"`
	Location string `json:"location"`
}

// SellerResponse is the wire shape of a seller profile.
type SellerResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	City      string    `json:"city"`
	Location  string    `json:"location"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
