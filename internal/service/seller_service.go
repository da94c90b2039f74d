package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/spec-kit/estate-service/internal/domain"
	"github.com/spec-kit/estate-service/internal/events"
	"github.com/spec-kit/estate-service/internal/locale"
	"github.com/spec-kit/estate-service/internal/repository"
	apperrors "github.com/spec-kit/estate-service/pkg/util"
)

// SellerService coordinates seller-profile workflows. Self-service and
// privileged registration stay separate operations with separate guards.
type SellerService struct {
	sellers    repository.SellerRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// SellerDependencies bundles collaborators for the seller service.
type SellerDependencies struct {
	SellerRepo repository.SellerRepository
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// SellerCreateInput describes a seller registration.
type SellerCreateInput struct {
	City     string
	Location string
}

// NewSellerService constructs the service.
func NewSellerService(deps SellerDependencies) *SellerService {
	return &SellerService{
		sellers:    deps.SellerRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// RegisterSeller creates an unverified profile for the requester. The role is
// left untouched; verification is a privileged operation.
func (s *SellerService) RegisterSeller(ctx context.Context, requesterID string, input SellerCreateInput) (*domain.Seller, error) {
	return s.register(ctx, requesterID, input, false)
}

// RegisterVerifiedSeller creates a verified profile for the given user and
// promotes their role. Admin-only; the guard lives at the route layer.
func (s *SellerService) RegisterVerifiedSeller(ctx context.Context, userID string, input SellerCreateInput) (*domain.Seller, error) {
	seller, err := s.register(ctx, userID, input, true)
	if err != nil {
		return nil, err
	}

	if err := s.users.PromoteToSeller(ctx, userID); err != nil {
		s.logger.Warn("seller role promotion failed", zap.String("user_id", userID), zap.Error(err))
	}
	return seller, nil
}

func (s *SellerService) register(ctx context.Context, userID string, input SellerCreateInput, verified bool) (*domain.Seller, error) {
	if input.City == "" {
		return nil, apperrors.NewMissingField(locale.MsgFillAllFields)
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("user", locale.MsgUserNotFound)
		}
		return nil, err
	}

	seller := &domain.Seller{
		UserID:   userID,
		City:     input.City,
		Location: input.Location,
		Verified: verified,
	}
	if err := s.sellers.Create(ctx, seller); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apperrors.NewConflict(locale.MsgSellerExists, map[string]any{"user_id": userID})
		}
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:      events.EventSellerCreated,
		SubjectID: seller.ID,
		Actor:     events.Actor{UserID: userID},
		Payload:   events.SellerCreatedPayload{UserID: userID, Verified: verified},
	})
	return seller, nil
}

// GetSeller fetches a seller profile by id.
func (s *SellerService) GetSeller(ctx context.Context, id string) (*domain.Seller, error) {
	seller, err := s.sellers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("seller", locale.MsgSellerNotFound)
		}
		return nil, err
	}
	return seller, nil
}

func (s *SellerService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
