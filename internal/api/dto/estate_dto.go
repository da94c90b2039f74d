package dto

import (
	"time"

	"github.com/spec-kit/estate-service/internal/domain"
)

// EstateResponse is the wire shape of a listing.
type EstateResponse struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	PresentationImg string              `json:"presentation_img"`
	Description     string              `json:"description"`
	Price           float64             `json:"price"`
	Type            domain.EstateType   `json:"type"`
	CategoryID      string              `json:"category_id"`
	UserID          string              `json:"user_id"`
	SellerID        *string             `json:"seller_id,omitempty"`
	City            string              `json:"city"`
	Address         string              `json:"address"`
	Status          domain.EstateStatus `json:"status"`
	Characteristics []string            `json:"characteristics"`
	Images          []string            `json:"images"`
	WantSeller      bool                `json:"want_seller"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// AssignSellerRequest payload.
type AssignSellerRequest struct {
	EstateID string `json:"estate_id"`
	SellerID string `json:"seller_id"`
}
