package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spec-kit/estate-service/internal/domain"
)

// EstateRepository encapsulates listing persistence.
type EstateRepository interface {
	Create(ctx context.Context, estate *domain.Estate) error
	GetByID(ctx context.Context, id string) (*domain.Estate, error)
	ListAll(ctx context.Context) ([]domain.Estate, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Estate, error)
	ListByStatus(ctx context.Context, status domain.EstateStatus) ([]domain.Estate, error)
	UpdateStatus(ctx context.Context, id string, status domain.EstateStatus) error
	AssignSeller(ctx context.Context, id, sellerID string) error
}

type estateRepository struct {
	collection *mongo.Collection
}

// NewEstateRepository returns a MongoDB-backed implementation.
func NewEstateRepository(db *mongo.Database) EstateRepository {
	return &estateRepository{collection: db.Collection("estates")}
}

func (r *estateRepository) Create(ctx context.Context, estate *domain.Estate) error {
	estate.ID = primitive.NewObjectID().Hex()
	estate.CreatedAt = time.Now()
	estate.UpdatedAt = estate.CreatedAt
	_, err := r.collection.InsertOne(ctx, estate)
	return err
}

func (r *estateRepository) GetByID(ctx context.Context, id string) (*domain.Estate, error) {
	var estate domain.Estate
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&estate); err != nil {
		return nil, err
	}
	return &estate, nil
}

func (r *estateRepository) ListAll(ctx context.Context) ([]domain.Estate, error) {
	return r.list(ctx, bson.M{})
}

func (r *estateRepository) ListByUser(ctx context.Context, userID string) ([]domain.Estate, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *estateRepository) ListByStatus(ctx context.Context, status domain.EstateStatus) ([]domain.Estate, error) {
	return r.list(ctx, bson.M{"status": status})
}

func (r *estateRepository) list(ctx context.Context, filter bson.M) ([]domain.Estate, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	estates := make([]domain.Estate, 0)
	if err := cursor.All(ctx, &estates); err != nil {
		return nil, err
	}
	return estates, nil
}

func (r *estateRepository) UpdateStatus(ctx context.Context, id string, status domain.EstateStatus) error {
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

func (r *estateRepository) AssignSeller(ctx context.Context, id, sellerID string) error {
	update := bson.M{"$set": bson.M{
		"seller_id":   sellerID,
		"want_seller": false,
		"updated_at":  time.Now(),
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
