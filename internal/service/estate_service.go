package service

import (
	"context"
	"errors"
	"mime/multipart"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/spec-kit/estate-service/internal/domain"
	"github.com/spec-kit/estate-service/internal/events"
	"github.com/spec-kit/estate-service/internal/locale"
	"github.com/spec-kit/estate-service/internal/repository"
	"github.com/spec-kit/estate-service/internal/storage"
	apperrors "github.com/spec-kit/estate-service/pkg/util"
)

// EstateService coordinates listing workflows.
type EstateService struct {
	estates    repository.EstateRepository
	sellers    repository.SellerRepository
	users      repository.UserRepository
	images     storage.ImageStore
	cache      *repository.EstateCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// EstateDependencies bundles collaborators for the estate service.
type EstateDependencies struct {
	EstateRepo repository.EstateRepository
	SellerRepo repository.SellerRepository
	UserRepo   repository.UserRepository
	ImageStore storage.ImageStore
	Cache      *repository.EstateCache
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// EstateCreateInput describes a listing submission. Field values arrive as
// multipart form strings; parsing is part of validation.
type EstateCreateInput struct {
	Name            string
	PresentationImg string
	Description     string
	Price           string
	Type            string
	CategoryID      string
	City            string
	Address         string
	Status          string
	Characteristics string
	WantSeller      bool
}

// NewEstateService constructs the service.
func NewEstateService(deps EstateDependencies) *EstateService {
	return &EstateService{
		estates:    deps.EstateRepo,
		sellers:    deps.SellerRepo,
		users:      deps.UserRepo,
		images:     deps.ImageStore,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// CreateEstate validates the submission, ingests images, persists the listing
// and promotes the requester's role to seller.
func (s *EstateService) CreateEstate(ctx context.Context, requesterID string, input EstateCreateInput, files []*multipart.FileHeader) (*domain.Estate, error) {
	if input.Name == "" || input.PresentationImg == "" || input.Description == "" ||
		input.Price == "" || input.CategoryID == "" || input.City == "" ||
		input.Address == "" || input.Status == "" || input.Characteristics == "" {
		return nil, apperrors.NewMissingField(locale.MsgFillAllFields)
	}

	if len(files) == 0 {
		return nil, apperrors.NewNoFilesUploaded(locale.MsgNoFilesUploaded)
	}

	characteristics := splitCharacteristics(input.Characteristics)
	if len(characteristics) == 0 {
		return nil, apperrors.NewMissingField(locale.MsgFillAllFields)
	}

	if len(files) > 2*len(characteristics) {
		return nil, apperrors.NewImageRatioViolation(locale.MsgImageRatio)
	}

	price, err := strconv.ParseFloat(input.Price, 64)
	if err != nil || price <= 0 {
		return nil, apperrors.NewValidationError(locale.MsgInvalidPrice, nil)
	}

	estateType := domain.EstateType(input.Type)
	if estateType != domain.EstateTypeRent {
		estateType = domain.EstateTypeSale
	}

	paths, err := s.images.Store(ctx, files, requesterID)
	if err != nil {
		s.logger.Error("image ingestion failed", zap.String("user_id", requesterID), zap.Error(err))
		return nil, apperrors.NewIngestionError(locale.MsgInternalError, err)
	}

	estate := &domain.Estate{
		Name:            input.Name,
		PresentationImg: input.PresentationImg,
		Description:     input.Description,
		Price:           price,
		Type:            estateType,
		CategoryID:      input.CategoryID,
		UserID:          requesterID,
		City:            input.City,
		Address:         input.Address,
		// Submissions always enter the moderation queue; only the admin
		// approval path moves a listing out of waiting.
		Status:          domain.EstateStatusWaiting,
		Characteristics: characteristics,
		Images:          paths,
		WantSeller:      input.WantSeller,
	}

	if err := s.estates.Create(ctx, estate); err != nil {
		return nil, err
	}

	if err := s.users.PromoteToSeller(ctx, requesterID); err != nil {
		// The listing is already persisted; a failed promotion is not fatal.
		s.logger.Warn("seller role promotion failed", zap.String("user_id", requesterID), zap.Error(err))
	}

	s.invalidateCache(ctx, "")
	s.publish(ctx, events.Event{
		Type:      events.EventEstateCreated,
		SubjectID: estate.ID,
		Actor:     events.Actor{UserID: requesterID},
		Payload: events.EstateCreatedPayload{
			Name:       estate.Name,
			City:       estate.City,
			Price:      estate.Price,
			ImageCount: len(estate.Images),
			WantSeller: estate.WantSeller,
		},
	})

	return estate, nil
}

// GetEstate fetches a single listing, serving repeated reads from cache.
func (s *EstateService) GetEstate(ctx context.Context, id string) (*domain.Estate, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetEstate(ctx, id); err == nil && cached != nil {
			return cached, nil
		}
	}

	estate, err := s.estates.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("estate", locale.MsgEstateNotFound)
		}
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetEstate(ctx, estate); err != nil {
			s.logger.Debug("estate cache set failed", zap.Error(err))
		}
	}
	return estate, nil
}

// ListEstates returns every listing; an empty marketplace is not an error.
func (s *EstateService) ListEstates(ctx context.Context) ([]domain.Estate, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetEstateList(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	estates, err := s.estates.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetEstateList(ctx, estates); err != nil {
			s.logger.Debug("estate list cache set failed", zap.Error(err))
		}
	}
	return estates, nil
}

// ListEstatesByOwner returns the listings owned by a user. Zero results is a
// plain empty list, never a not-found.
func (s *EstateService) ListEstatesByOwner(ctx context.Context, userID string) ([]domain.Estate, error) {
	return s.estates.ListByUser(ctx, userID)
}

// ListPendingEstates returns the moderation queue.
func (s *EstateService) ListPendingEstates(ctx context.Context) ([]domain.Estate, error) {
	return s.estates.ListByStatus(ctx, domain.EstateStatusWaiting)
}

// ApproveEstate moves a listing to approved. Approving an already-approved
// listing succeeds without change.
func (s *EstateService) ApproveEstate(ctx context.Context, actorID, id string) (*domain.Estate, error) {
	if err := s.estates.UpdateStatus(ctx, id, domain.EstateStatusApproved); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("estate", locale.MsgEstateNotFound)
		}
		return nil, err
	}

	estate, err := s.estates.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx, id)
	s.publish(ctx, events.Event{
		Type:      events.EventEstateApproved,
		SubjectID: id,
		Actor:     events.Actor{UserID: actorID, Role: string(domain.UserRoleAdmin)},
		Payload:   events.EstateApprovedPayload{Status: domain.EstateStatusApproved},
	})
	return estate, nil
}

// AssignSeller links a seller profile to a listing and clears the want-seller
// flag. Both references must exist; on a missing seller the estate is left
// untouched.
func (s *EstateService) AssignSeller(ctx context.Context, actorID, estateID, sellerID string) (*domain.Estate, error) {
	if estateID == "" || sellerID == "" {
		return nil, apperrors.NewMissingField(locale.MsgFillAllFields)
	}

	if _, err := s.estates.GetByID(ctx, estateID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("estate", locale.MsgEstateNotFound)
		}
		return nil, err
	}

	if _, err := s.sellers.GetByID(ctx, sellerID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("seller", locale.MsgSellerNotFound)
		}
		return nil, err
	}

	if err := s.estates.AssignSeller(ctx, estateID, sellerID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("estate", locale.MsgEstateNotFound)
		}
		return nil, err
	}

	estate, err := s.estates.GetByID(ctx, estateID)
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx, estateID)
	s.publish(ctx, events.Event{
		Type:      events.EventSellerAssigned,
		SubjectID: estateID,
		Actor:     events.Actor{UserID: actorID, Role: string(domain.UserRoleAdmin)},
		Payload:   events.SellerAssignedPayload{SellerID: sellerID},
	})
	return estate, nil
}

func (s *EstateService) invalidateCache(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Debug("estate cache invalidation failed", zap.Error(err))
	}
}

func (s *EstateService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func splitCharacteristics(raw string) []string {
	parts := strings.Split(raw, ",")
	characteristics := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			characteristics = append(characteristics, trimmed)
		}
	}
	return characteristics
}
