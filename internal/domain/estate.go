package domain

import "time"

// EstateStatus enumerates moderation states for listings.
type EstateStatus string

const (
	EstateStatusWaiting  EstateStatus = "waiting"
	EstateStatusApproved EstateStatus = "approved"
)

// EstateType enumerates listing types.
type EstateType string

const (
	EstateTypeSale EstateType = "sale"
	EstateTypeRent EstateType = "rent"
)

// Estate is the aggregate for property listings.
type Estate struct {
	ID              string       `bson:"_id,omitempty"`
	Name            string       `bson:"name"`
	PresentationImg string       `bson:"presentation_img"`
	Description     string       `bson:"description"`
	Price           float64      `bson:"price"`
	Type            EstateType   `bson:"type"`
	CategoryID      string       `bson:"category_id"`
	UserID          string       `bson:"user_id"`
	SellerID        *string      `bson:"seller_id,omitempty"`
	City            string       `bson:"city"`
	Address         string       `bson:"address"`
	Status          EstateStatus `bson:"status"`
	Characteristics []string     `bson:"characteristics"`
	Images          []string     `bson:"images"`
	WantSeller      bool         `bson:"want_seller"`
	CreatedAt       time.Time    `bson:"created_at"`
	UpdatedAt       time.Time    `bson:"updated_at"`
}
