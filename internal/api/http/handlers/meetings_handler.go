package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/estate-service/internal/api/dto"
	"github.com/spec-kit/estate-service/internal/auth"
	"github.com/spec-kit/estate-service/internal/domain"
	"github.com/spec-kit/estate-service/internal/locale"
	"github.com/spec-kit/estate-service/internal/service"
	apperrors "github.com/spec-kit/estate-service/pkg/util"
)

// MeetingsHandler manages viewing-request endpoints.
type MeetingsHandler struct {
	meetings *service.MeetingService
	sellers  *service.SellerService
}

// NewMeetingsHandler constructs handler.
func NewMeetingsHandler(meetingService *service.MeetingService, sellerService *service.SellerService) *MeetingsHandler {
	return &MeetingsHandler{meetings: meetingService, sellers: sellerService}
}

// CreateMeeting POST /meeting/createMeeting.
func (h *MeetingsHandler) CreateMeeting(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError(locale.MsgInvalidPayload, nil)
	}

	meeting, err := h.meetings.CreateMeeting(c.Context(), principal.User.ID, service.MeetingCreateInput{
		EstateID: req.EstateID,
		Date:     req.Date,
		Message:  req.Message,
		SellerID: req.SellerID,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": locale.MsgMeetingCreated,
		"meeting": meetingResponse(meeting),
	})
}

// ListMyMeetings GET /meeting/getAllMeetingsFromUser.
func (h *MeetingsHandler) ListMyMeetings(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	meetings, err := h.meetings.ListMeetingsForUser(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"message":  locale.MsgMeetingsFetched,
		"meetings": meetingResponses(meetings),
	})
}

// ListMyMeetingsDetailed GET /meeting/getMyMeetingInfo/:id. The path id names
// the user whose meetings are expanded; callers may only read their own
// unless they are admin.
func (h *MeetingsHandler) ListMyMeetingsDetailed(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	userID := c.Params("id")
	if userID != principal.User.ID && !principal.IsAdmin() {
		return apperrors.NewForbidden(locale.MsgForbiddenResource)
	}

	details, err := h.meetings.ListMeetingsForUserDetailed(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"message":  locale.MsgMeetingsFetched,
		"meetings": meetingDetailResponses(details),
	})
}

// ListMeetingsWhereImSeller GET /meeting/getMeetingsWhereImSeller/:id. The
// path id names a seller profile; it must belong to the caller unless admin.
func (h *MeetingsHandler) ListMeetingsWhereImSeller(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	sellerID := c.Params("id")

	seller, err := h.sellers.GetSeller(c.Context(), sellerID)
	if err != nil {
		return err
	}
	if seller.UserID != principal.User.ID && !principal.IsAdmin() {
		return apperrors.NewForbidden(locale.MsgForbiddenResource)
	}

	meetings, err := h.meetings.ListMeetingsForSeller(c.Context(), sellerID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"message":  locale.MsgMeetingsFetched,
		"meetings": meetingResponses(meetings),
	})
}

// UpdateMeetingStatus PUT /meeting/updateMeetingStatus/:id.
func (h *MeetingsHandler) UpdateMeetingStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.UpdateMeetingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError(locale.MsgInvalidPayload, nil)
	}

	meeting, err := h.meetings.UpdateMeetingStatus(c.Context(), principal.User.ID, principal.IsAdmin(), c.Params("id"), domain.MeetingStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": locale.MsgMeetingUpdated,
		"meeting": meetingResponse(meeting),
	})
}

func meetingResponse(meeting *domain.Meeting) dto.MeetingResponse {
	return dto.MeetingResponse{
		ID:            meeting.ID,
		UserID:        meeting.UserID,
		EstateID:      meeting.EstateID,
		SellerID:      meeting.SellerID,
		Date:          meeting.Date,
		Message:       meeting.Message,
		Status:        meeting.Status,
		WaitingSeller: meeting.WaitingSeller,
		CreatedAt:     meeting.CreatedAt,
		UpdatedAt:     meeting.UpdatedAt,
	}
}

func meetingResponses(meetings []domain.Meeting) []dto.MeetingResponse {
	items := make([]dto.MeetingResponse, 0, len(meetings))
	for i := range meetings {
		items = append(items, meetingResponse(&meetings[i]))
	}
	return items
}

func meetingDetailResponses(details []domain.MeetingDetail) []dto.MeetingDetailResponse {
	items := make([]dto.MeetingDetailResponse, 0, len(details))
	for i := range details {
		detail := details[i]
		item := dto.MeetingDetailResponse{Meeting: meetingResponse(&detail.Meeting)}
		if detail.Estate != nil {
			estate := estateResponse(detail.Estate)
			item.Estate = &estate
		}
		if detail.Seller != nil {
			seller := sellerResponse(detail.Seller)
			item.Seller = &seller
		}
		if detail.SellerUser != nil {
			item.SellerUser = userSummary(detail.SellerUser)
		}
		if detail.Requester != nil {
			item.Requester = userSummary(detail.Requester)
		}
		items = append(items, item)
	}
	return items
}

func userSummary(user *domain.User) *dto.UserSummary {
	return &dto.UserSummary{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}
