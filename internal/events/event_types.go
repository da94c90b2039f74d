package events

import "github.com/spec-kit/estate-service/internal/domain"

// EventType identifies a domain event.
type EventType string

const (
	EventEstateCreated        EventType = "estate.created"
	EventEstateApproved       EventType = "estate.approved"
	EventSellerAssigned       EventType = "estate.seller_assigned"
	EventMeetingRequested     EventType = "meeting.requested"
	EventMeetingStatusChanged EventType = "meeting.status_changed"
	EventSellerCreated        EventType = "seller.created"
)

// Actor identifies who triggered an event.
type Actor struct {
	UserID string `json:"user_id"`
	Role   string `json:"role,omitempty"`
}

// Event is the envelope published on the dispatcher.
type Event struct {
	Type      EventType
	SubjectID string
	Actor     Actor
	Payload   any
}

// EstateCreatedPayload accompanies EventEstateCreated.
type EstateCreatedPayload struct {
	Name       string  `json:"name"`
	City       string  `json:"city"`
	Price      float64 `json:"price"`
	ImageCount int     `json:"image_count"`
	WantSeller bool    `json:"want_seller"`
}

// EstateApprovedPayload accompanies EventEstateApproved.
type EstateApprovedPayload struct {
	Status domain.EstateStatus `json:"status"`
}

// SellerAssignedPayload accompanies EventSellerAssigned.
type SellerAssignedPayload struct {
	SellerID string `json:"seller_id"`
}

// MeetingRequestedPayload accompanies EventMeetingRequested.
type MeetingRequestedPayload struct {
	EstateID      string  `json:"estate_id"`
	SellerID      *string `json:"seller_id,omitempty"`
	Date          string  `json:"date"`
	WaitingSeller bool    `json:"waiting_seller"`
}

// MeetingStatusChangedPayload accompanies EventMeetingStatusChanged.
type MeetingStatusChangedPayload struct {
	OldStatus domain.MeetingStatus `json:"old_status"`
	NewStatus domain.MeetingStatus `json:"new_status"`
}

// SellerCreatedPayload accompanies EventSellerCreated.
type SellerCreatedPayload struct {
	UserID   string `json:"user_id"`
	Verified bool   `json:"verified"`
}
