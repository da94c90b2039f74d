package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/estate-service/internal/domain"
)

// SellerRepository encapsulates seller-profile persistence.
type SellerRepository interface {
	Create(ctx context.Context, seller *domain.Seller) error
	GetByID(ctx context.Context, id string) (*domain.Seller, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Seller, error)
}

type sellerRepository struct {
	collection *mongo.Collection
}

// NewSellerRepository returns a MongoDB-backed implementation.
func NewSellerRepository(db *mongo.Database) SellerRepository {
	return &sellerRepository{collection: db.Collection("sellers")}
}

// Create inserts the profile. The unique user_id index keeps one canonical
// profile per user; a second insert returns ErrDuplicateKey.
func (r *sellerRepository) Create(ctx context.Context, seller *domain.Seller) error {
	seller.ID = primitive.NewObjectID().Hex()
	seller.CreatedAt = time.Now()
	seller.UpdatedAt = seller.CreatedAt
	if _, err := r.collection.InsertOne(ctx, seller); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r *sellerRepository) GetByID(ctx context.Context, id string) (*domain.Seller, error) {
	var seller domain.Seller
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&seller); err != nil {
		return nil, err
	}
	return &seller, nil
}

func (r *sellerRepository) GetByUserID(ctx context.Context, userID string) (*domain.Seller, error) {
	var seller domain.Seller
	if err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&seller); err != nil {
		return nil, err
	}
	return &seller, nil
}
