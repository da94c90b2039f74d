package dto

import (
	"time"

	"github.com/spec-kit/estate-service/internal/domain"
)

// CreateMeetingRequest payload.
type CreateMeetingRequest struct {
	EstateID string  `json:"estate_id"`
	Date     string  `json:"date"`
	Message  string  `json:"message"`
	SellerID *string `json:"seller_id,omitempty"`
}

// UpdateMeetingStatusRequest payload.
type UpdateMeetingStatusRequest struct {
	Status string `json:"status"`
}

// MeetingResponse is the wire shape of a viewing request.
type MeetingResponse struct {
	ID            string               `json:"id"`
	UserID        string               `json:"user_id"`
	EstateID      string               `json:"estate_id"`
	SellerID      *string              `json:"seller_id,omitempty"`
	Date          time.Time            `json:"date"`
	Message       string               `json:"message"`
	Status        domain.MeetingStatus `json:"status"`
	WaitingSeller bool                 `json:"waiting_seller"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// UserSummary is the reduced user shape used in expansions.
type UserSummary struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  domain.UserRole `json:"role"`
}

// MeetingDetailResponse expands a meeting with its linked records. Absent
// links are null rather than dropped.
type MeetingDetailResponse struct {
	Meeting    MeetingResponse `json:"meeting"`
	Estate     *EstateResponse `json:"estate"`
	Seller     *SellerResponse `json:"seller"`
	SellerUser *UserSummary    `json:"seller_user"`
	Requester  *UserSummary    `json:"requester"`
}
