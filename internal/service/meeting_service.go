package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/spec-kit/estate-service/internal/domain"
	"github.com/spec-kit/estate-service/internal/events"
	"github.com/spec-kit/estate-service/internal/locale"
	"github.com/spec-kit/estate-service/internal/repository"
	apperrors "github.com/spec-kit/estate-service/pkg/util"
)

// meetingDateLayouts are the accepted wire formats for meeting dates.
var meetingDateLayouts = []string{time.RFC3339, "2006-01-02"}

// MeetingService coordinates viewing-request workflows.
type MeetingService struct {
	meetings   repository.MeetingRepository
	estates    repository.EstateRepository
	sellers    repository.SellerRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// MeetingDependencies bundles collaborators for the meeting service.
type MeetingDependencies struct {
	MeetingRepo repository.MeetingRepository
	EstateRepo  repository.EstateRepository
	SellerRepo  repository.SellerRepository
	UserRepo    repository.UserRepository
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
	Now         func() time.Time
}

// MeetingCreateInput describes a viewing request submission.
type MeetingCreateInput struct {
	EstateID string
	Date     string
	Message  string
	SellerID *string
}

// NewMeetingService constructs the service.
func NewMeetingService(deps MeetingDependencies) *MeetingService {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &MeetingService{
		meetings:   deps.MeetingRepo,
		estates:    deps.EstateRepo,
		sellers:    deps.SellerRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		now:        now,
	}
}

// CreateMeeting validates and persists a viewing request. The estate's
// want-seller flag is advisory only and never blocks creation.
func (s *MeetingService) CreateMeeting(ctx context.Context, requesterID string, input MeetingCreateInput) (*domain.Meeting, error) {
	if input.EstateID == "" || input.Date == "" || input.Message == "" {
		return nil, apperrors.NewMissingField(locale.MsgFillAllFields)
	}

	estate, err := s.estates.GetByID(ctx, input.EstateID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("estate", locale.MsgEstateNotFound)
		}
		return nil, err
	}

	seller, err := s.resolveSeller(ctx, estate, input.SellerID)
	if err != nil {
		return nil, err
	}

	if seller != nil && seller.UserID == requesterID {
		return nil, apperrors.NewSelfMeetingForbidden(locale.MsgMeetingOwnEstate)
	}

	date, err := parseMeetingDate(input.Date)
	if err != nil {
		return nil, apperrors.NewInvalidDate(locale.MsgMeetingPastDate)
	}
	if date.Before(s.now()) {
		return nil, apperrors.NewInvalidDate(locale.MsgMeetingPastDate)
	}

	exists, err := s.meetings.ExistsByEstateAndDate(ctx, estate.ID, date)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewDuplicateMeeting(locale.MsgMeetingDuplicate)
	}

	meeting := &domain.Meeting{
		UserID:        requesterID,
		EstateID:      estate.ID,
		Date:          date,
		Message:       input.Message,
		Status:        domain.MeetingStatusPending,
		WaitingSeller: seller == nil,
	}
	if seller != nil {
		meeting.SellerID = &seller.ID
	}

	if err := s.meetings.Create(ctx, meeting); err != nil {
		// The unique (estate, date) index catches the race two concurrent
		// requests can win against the existence check above.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apperrors.NewDuplicateMeeting(locale.MsgMeetingDuplicate)
		}
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:      events.EventMeetingRequested,
		SubjectID: meeting.ID,
		Actor:     events.Actor{UserID: requesterID},
		Payload: events.MeetingRequestedPayload{
			EstateID:      meeting.EstateID,
			SellerID:      meeting.SellerID,
			Date:          date.Format(time.RFC3339),
			WaitingSeller: meeting.WaitingSeller,
		},
	})
	return meeting, nil
}

// resolveSeller picks the responsible seller: an explicit payload seller must
// exist; an estate-derived one that has gone dangling degrades to nil.
func (s *MeetingService) resolveSeller(ctx context.Context, estate *domain.Estate, explicitID *string) (*domain.Seller, error) {
	if explicitID != nil && *explicitID != "" {
		seller, err := s.sellers.GetByID(ctx, *explicitID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, apperrors.NewNotFound("seller", locale.MsgSellerNotFound)
			}
			return nil, err
		}
		return seller, nil
	}

	if estate.SellerID == nil {
		return nil, nil
	}
	seller, err := s.sellers.GetByID(ctx, *estate.SellerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			s.logger.Warn("estate references missing seller",
				zap.String("estate_id", estate.ID),
				zap.String("seller_id", *estate.SellerID))
			return nil, nil
		}
		return nil, err
	}
	return seller, nil
}

// ListMeetingsForUser returns the requester's meetings; zero results is an
// empty list, not an error.
func (s *MeetingService) ListMeetingsForUser(ctx context.Context, userID string) ([]domain.Meeting, error) {
	return s.meetings.ListByUser(ctx, userID)
}

// ListMeetingsForSeller returns the meetings routed to a seller profile.
func (s *MeetingService) ListMeetingsForSeller(ctx context.Context, sellerID string) ([]domain.Meeting, error) {
	return s.meetings.ListBySeller(ctx, sellerID)
}

// ListMeetingsForUserDetailed expands each of the requester's meetings with
// its estate, seller, the seller's user and the requester. Absent links stay
// nil; the meeting itself is always returned.
func (s *MeetingService) ListMeetingsForUserDetailed(ctx context.Context, userID string) ([]domain.MeetingDetail, error) {
	meetings, err := s.meetings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	requester, err := s.users.GetByID(ctx, userID)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	details := make([]domain.MeetingDetail, 0, len(meetings))
	for _, meeting := range meetings {
		detail := domain.MeetingDetail{Meeting: meeting, Requester: requester}

		if estate, err := s.estates.GetByID(ctx, meeting.EstateID); err == nil {
			detail.Estate = estate
		} else if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}

		if meeting.SellerID != nil {
			if seller, err := s.sellers.GetByID(ctx, *meeting.SellerID); err == nil {
				detail.Seller = seller
				if sellerUser, err := s.users.GetByID(ctx, seller.UserID); err == nil {
					detail.SellerUser = sellerUser
				} else if !errors.Is(err, mongo.ErrNoDocuments) {
					return nil, err
				}
			} else if !errors.Is(err, mongo.ErrNoDocuments) {
				return nil, err
			}
		}

		details = append(details, detail)
	}
	return details, nil
}

// UpdateMeetingStatus applies a status transition. The requester may cancel
// their own meeting; the resolved seller's user may accept or reject; an
// admin may do any of the three.
func (s *MeetingService) UpdateMeetingStatus(ctx context.Context, actorID string, actorIsAdmin bool, meetingID string, status domain.MeetingStatus) (*domain.Meeting, error) {
	switch status {
	case domain.MeetingStatusAccepted, domain.MeetingStatusRejected, domain.MeetingStatusCancelled:
	default:
		return nil, apperrors.NewValidationError(locale.MsgMeetingBadStatus, nil)
	}

	meeting, err := s.meetings.GetByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("meeting", locale.MsgMeetingNotFound)
		}
		return nil, err
	}

	if !actorIsAdmin {
		allowed := false
		if status == domain.MeetingStatusCancelled && meeting.UserID == actorID {
			allowed = true
		}
		if !allowed && meeting.SellerID != nil && status != domain.MeetingStatusCancelled {
			seller, err := s.sellers.GetByID(ctx, *meeting.SellerID)
			if err == nil && seller.UserID == actorID {
				allowed = true
			} else if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
				return nil, err
			}
		}
		if !allowed {
			return nil, apperrors.NewForbidden(locale.MsgMeetingNotAllowed)
		}
	}

	oldStatus := meeting.Status
	if err := s.meetings.UpdateStatus(ctx, meetingID, status); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("meeting", locale.MsgMeetingNotFound)
		}
		return nil, err
	}
	meeting.Status = status

	s.publish(ctx, events.Event{
		Type:      events.EventMeetingStatusChanged,
		SubjectID: meetingID,
		Actor:     events.Actor{UserID: actorID},
		Payload:   events.MeetingStatusChangedPayload{OldStatus: oldStatus, NewStatus: status},
	})
	return meeting, nil
}

func (s *MeetingService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func parseMeetingDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range meetingDateLayouts {
		date, err := time.Parse(layout, raw)
		if err == nil {
			return date, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
