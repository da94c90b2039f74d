package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/estate-service/internal/domain"
)

// UserRepository exposes the slice of the account store this service needs:
// lookups plus the explicit seller role promotion.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	PromoteToSeller(ctx context.Context, id string) error
}

type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository returns a MongoDB-backed implementation.
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{collection: db.Collection("users")}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// PromoteToSeller flips the role to seller. Idempotent: promoting an existing
// seller matches the document and changes nothing.
func (r *userRepository) PromoteToSeller(ctx context.Context, id string) error {
	update := bson.M{"$set": bson.M{"role": domain.UserRoleSeller, "updated_at": time.Now()}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
