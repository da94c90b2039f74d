// Package locale is the single home for user-facing strings. Handlers and
// services reference these constants instead of hardcoding text, so swapping
// the locale strategy later touches one file.
package locale

const (
	MsgFillAllFields      = "Please fill all the fields"
	MsgNoFilesUploaded    = "No files were uploaded"
	MsgImageRatio         = "Please upload min 2 images for each characteristic"
	MsgInvalidPrice       = "Price must be a positive number"
	MsgEstateCreated      = "Estate created successfully"
	MsgEstateApproved     = "Estate approved"
	MsgSellerAssigned     = "Seller assigned to estate"
	MsgEstateNotFound     = "Estate not found"
	MsgSellerNotFound     = "Seller not found"
	MsgUserNotFound       = "User not found"
	MsgMeetingNotFound    = "Meeting not found"
	MsgMeetingCreated     = "Meeting request created"
	MsgMeetingUpdated     = "Meeting status updated"
	MsgMeetingDuplicate   = "A meeting is already scheduled for this date"
	MsgMeetingOwnEstate   = "You cannot request a meeting for your own estate"
	MsgMeetingPastDate    = "Meeting date cannot be in the past"
	MsgMeetingBadStatus   = "Invalid meeting status"
	MsgMeetingNotAllowed  = "You are not allowed to update this meeting"
	MsgSellerCreated      = "Seller created"
	MsgSellerExists       = "A seller profile already exists for this user"
	MsgInvalidPayload     = "Invalid request payload"
	MsgInternalError      = "Internal server error"
	MsgEstatesFetched     = "Estates fetched"
	MsgEstateFetched      = "Estate fetched"
	MsgSellerFetched      = "Seller fetched"
	MsgMeetingsFetched    = "Meetings fetched"
	MsgForbiddenResource  = "You do not have access to this resource"
)
