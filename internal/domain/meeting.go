package domain

import "time"

// MeetingStatus enumerates lifecycle states for viewing requests.
type MeetingStatus string

const (
	MeetingStatusPending   MeetingStatus = "pending"
	MeetingStatusAccepted  MeetingStatus = "accepted"
	MeetingStatusRejected  MeetingStatus = "rejected"
	MeetingStatusCancelled MeetingStatus = "cancelled"
)

// Meeting is a request to view an estate on a given date.
type Meeting struct {
	ID            string        `bson:"_id,omitempty"`
	UserID        string        `bson:"user_id"`
	EstateID      string        `bson:"estate_id"`
	SellerID      *string       `bson:"seller_id,omitempty"`
	Date          time.Time     `bson:"date"`
	Message       string        `bson:"message"`
	Status        MeetingStatus `bson:"status"`
	WaitingSeller bool          `bson:"waiting_seller"`
	CreatedAt     time.Time     `bson:"created_at"`
	UpdatedAt     time.Time     `bson:"updated_at"`
}

// MeetingDetail expands a meeting with its linked records for read-time joins.
// Absent links stay nil without dropping the meeting itself.
type MeetingDetail struct {
	Meeting    Meeting
	Estate     *Estate
	Seller     *Seller
	SellerUser *User
	Requester  *User
}
