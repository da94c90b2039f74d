package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spec-kit/estate-service/internal/domain"
)

// ErrDuplicateKey is returned when a write violates a unique index.
var ErrDuplicateKey = errors.New("duplicate key")

// MeetingRepository encapsulates viewing-request persistence.
type MeetingRepository interface {
	Create(ctx context.Context, meeting *domain.Meeting) error
	GetByID(ctx context.Context, id string) (*domain.Meeting, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Meeting, error)
	ListBySeller(ctx context.Context, sellerID string) ([]domain.Meeting, error)
	ExistsByEstateAndDate(ctx context.Context, estateID string, date time.Time) (bool, error)
	UpdateStatus(ctx context.Context, id string, status domain.MeetingStatus) error
}

type meetingRepository struct {
	collection *mongo.Collection
}

// NewMeetingRepository returns a MongoDB-backed implementation.
func NewMeetingRepository(db *mongo.Database) MeetingRepository {
	return &meetingRepository{collection: db.Collection("meetings")}
}

// Create inserts the meeting. The unique (estate_id, date) index turns a
// concurrent double-booking into ErrDuplicateKey.
func (r *meetingRepository) Create(ctx context.Context, meeting *domain.Meeting) error {
	meeting.ID = primitive.NewObjectID().Hex()
	meeting.CreatedAt = time.Now()
	meeting.UpdatedAt = meeting.CreatedAt
	if _, err := r.collection.InsertOne(ctx, meeting); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r *meetingRepository) GetByID(ctx context.Context, id string) (*domain.Meeting, error) {
	var meeting domain.Meeting
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&meeting); err != nil {
		return nil, err
	}
	return &meeting, nil
}

func (r *meetingRepository) ListByUser(ctx context.Context, userID string) ([]domain.Meeting, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *meetingRepository) ListBySeller(ctx context.Context, sellerID string) ([]domain.Meeting, error) {
	return r.list(ctx, bson.M{"seller_id": sellerID})
}

func (r *meetingRepository) list(ctx context.Context, filter bson.M) ([]domain.Meeting, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	meetings := make([]domain.Meeting, 0)
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, err
	}
	return meetings, nil
}

func (r *meetingRepository) ExistsByEstateAndDate(ctx context.Context, estateID string, date time.Time) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"estate_id": estateID, "date": date})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *meetingRepository) UpdateStatus(ctx context.Context, id string, status domain.MeetingStatus) error {
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
