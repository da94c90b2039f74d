package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/estate-service/internal/domain"
	"github.com/spec-kit/estate-service/internal/repository"
)

type fakeEstateRepo struct {
	estates map[string]*domain.Estate
	seq     int
}

func newFakeEstateRepo() *fakeEstateRepo {
	return &fakeEstateRepo{estates: make(map[string]*domain.Estate)}
}

func (r *fakeEstateRepo) Create(_ context.Context, estate *domain.Estate) error {
	r.seq++
	estate.ID = fmt.Sprintf("estate-%d", r.seq)
	estate.CreatedAt = time.Now()
	estate.UpdatedAt = estate.CreatedAt
	stored := *estate
	r.estates[estate.ID] = &stored
	return nil
}

func (r *fakeEstateRepo) GetByID(_ context.Context, id string) (*domain.Estate, error) {
	estate, ok := r.estates[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	found := *estate
	return &found, nil
}

func (r *fakeEstateRepo) ListAll(_ context.Context) ([]domain.Estate, error) {
	estates := make([]domain.Estate, 0, len(r.estates))
	for _, estate := range r.estates {
		estates = append(estates, *estate)
	}
	return estates, nil
}

func (r *fakeEstateRepo) ListByUser(_ context.Context, userID string) ([]domain.Estate, error) {
	estates := make([]domain.Estate, 0)
	for _, estate := range r.estates {
		if estate.UserID == userID {
			estates = append(estates, *estate)
		}
	}
	return estates, nil
}

func (r *fakeEstateRepo) ListByStatus(_ context.Context, status domain.EstateStatus) ([]domain.Estate, error) {
	estates := make([]domain.Estate, 0)
	for _, estate := range r.estates {
		if estate.Status == status {
			estates = append(estates, *estate)
		}
	}
	return estates, nil
}

func (r *fakeEstateRepo) UpdateStatus(_ context.Context, id string, status domain.EstateStatus) error {
	estate, ok := r.estates[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	estate.Status = status
	estate.UpdatedAt = time.Now()
	return nil
}

func (r *fakeEstateRepo) AssignSeller(_ context.Context, id, sellerID string) error {
	estate, ok := r.estates[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	estate.SellerID = &sellerID
	estate.WantSeller = false
	estate.UpdatedAt = time.Now()
	return nil
}

type fakeSellerRepo struct {
	sellers map[string]*domain.Seller
	seq     int
}

func newFakeSellerRepo() *fakeSellerRepo {
	return &fakeSellerRepo{sellers: make(map[string]*domain.Seller)}
}

func (r *fakeSellerRepo) Create(_ context.Context, seller *domain.Seller) error {
	for _, existing := range r.sellers {
		if existing.UserID == seller.UserID {
			return repository.ErrDuplicateKey
		}
	}
	r.seq++
	seller.ID = fmt.Sprintf("seller-%d", r.seq)
	seller.CreatedAt = time.Now()
	seller.UpdatedAt = seller.CreatedAt
	stored := *seller
	r.sellers[seller.ID] = &stored
	return nil
}

func (r *fakeSellerRepo) GetByID(_ context.Context, id string) (*domain.Seller, error) {
	seller, ok := r.sellers[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	found := *seller
	return &found, nil
}

func (r *fakeSellerRepo) GetByUserID(_ context.Context, userID string) (*domain.Seller, error) {
	for _, seller := range r.sellers {
		if seller.UserID == userID {
			found := *seller
			return &found, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*domain.User)}
	for _, user := range users {
		stored := *user
		repo.users[user.ID] = &stored
	}
	return repo
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	found := *user
	return &found, nil
}

func (r *fakeUserRepo) PromoteToSeller(_ context.Context, id string) error {
	user, ok := r.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	user.Role = domain.UserRoleSeller
	return nil
}

type fakeMeetingRepo struct {
	meetings  map[string]*domain.Meeting
	seq       int
	createErr error
}

func newFakeMeetingRepo() *fakeMeetingRepo {
	return &fakeMeetingRepo{meetings: make(map[string]*domain.Meeting)}
}

func (r *fakeMeetingRepo) Create(_ context.Context, meeting *domain.Meeting) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.meetings {
		if existing.EstateID == meeting.EstateID && existing.Date.Equal(meeting.Date) {
			return repository.ErrDuplicateKey
		}
	}
	r.seq++
	meeting.ID = fmt.Sprintf("meeting-%d", r.seq)
	meeting.CreatedAt = time.Now()
	meeting.UpdatedAt = meeting.CreatedAt
	stored := *meeting
	r.meetings[meeting.ID] = &stored
	return nil
}

func (r *fakeMeetingRepo) GetByID(_ context.Context, id string) (*domain.Meeting, error) {
	meeting, ok := r.meetings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	found := *meeting
	return &found, nil
}

func (r *fakeMeetingRepo) ListByUser(_ context.Context, userID string) ([]domain.Meeting, error) {
	meetings := make([]domain.Meeting, 0)
	for _, meeting := range r.meetings {
		if meeting.UserID == userID {
			meetings = append(meetings, *meeting)
		}
	}
	return meetings, nil
}

func (r *fakeMeetingRepo) ListBySeller(_ context.Context, sellerID string) ([]domain.Meeting, error) {
	meetings := make([]domain.Meeting, 0)
	for _, meeting := range r.meetings {
		if meeting.SellerID != nil && *meeting.SellerID == sellerID {
			meetings = append(meetings, *meeting)
		}
	}
	return meetings, nil
}

func (r *fakeMeetingRepo) ExistsByEstateAndDate(_ context.Context, estateID string, date time.Time) (bool, error) {
	for _, meeting := range r.meetings {
		if meeting.EstateID == estateID && meeting.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeMeetingRepo) UpdateStatus(_ context.Context, id string, status domain.MeetingStatus) error {
	meeting, ok := r.meetings[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	meeting.Status = status
	meeting.UpdatedAt = time.Now()
	return nil
}

type fakeImageStore struct {
	calls int
	err   error
}

func (s *fakeImageStore) Store(_ context.Context, files []*multipart.FileHeader, ownerID string) ([]string, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	paths := make([]string, 0, len(files))
	for i, file := range files {
		paths = append(paths, fmt.Sprintf("stored/%s/%d_%s", ownerID, i, file.Filename))
	}
	return paths, nil
}
