package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/estate-service/internal/domain"
)

func newSellerFixture(users ...*domain.User) (*SellerService, *fakeSellerRepo, *fakeUserRepo) {
	sellerRepo := newFakeSellerRepo()
	userRepo := newFakeUserRepo(users...)
	svc := NewSellerService(SellerDependencies{
		SellerRepo: sellerRepo,
		UserRepo:   userRepo,
		Logger:     zap.NewNop(),
	})
	return svc, sellerRepo, userRepo
}

func TestRegisterSeller(t *testing.T) {
	user := &domain.User{ID: "user-1", Name: "Ana", Role: domain.UserRoleUser}

	t.Run("creates unverified profile without touching role", func(t *testing.T) {
		svc, _, userRepo := newSellerFixture(user)

		seller, err := svc.RegisterSeller(context.Background(), user.ID, SellerCreateInput{City: "Valencia", Location: "Calle Mayor 12"})
		require.NoError(t, err)
		assert.False(t, seller.Verified)
		assert.Equal(t, user.ID, seller.UserID)

		unchanged, err := userRepo.GetByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.UserRoleUser, unchanged.Role)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, _, _ := newSellerFixture()
		_, err := svc.RegisterSeller(context.Background(), "ghost", SellerCreateInput{City: "Valencia"})
		requireCode(t, err, "NOT_FOUND")
	})

	t.Run("missing city", func(t *testing.T) {
		svc, _, _ := newSellerFixture(user)
		_, err := svc.RegisterSeller(context.Background(), user.ID, SellerCreateInput{})
		requireCode(t, err, "MISSING_FIELD")
	})

	t.Run("second profile for same user conflicts", func(t *testing.T) {
		svc, _, _ := newSellerFixture(user)
		_, err := svc.RegisterSeller(context.Background(), user.ID, SellerCreateInput{City: "Valencia"})
		require.NoError(t, err)

		_, err = svc.RegisterSeller(context.Background(), user.ID, SellerCreateInput{City: "Madrid"})
		requireCode(t, err, "CONFLICT")
	})
}

func TestRegisterVerifiedSeller(t *testing.T) {
	user := &domain.User{ID: "user-1", Name: "Ana", Role: domain.UserRoleUser}

	t.Run("creates verified profile and promotes role", func(t *testing.T) {
		svc, _, userRepo := newSellerFixture(user)

		seller, err := svc.RegisterVerifiedSeller(context.Background(), user.ID, SellerCreateInput{City: "Valencia"})
		require.NoError(t, err)
		assert.True(t, seller.Verified)

		promoted, err := userRepo.GetByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.UserRoleSeller, promoted.Role)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, _, _ := newSellerFixture()
		_, err := svc.RegisterVerifiedSeller(context.Background(), "ghost", SellerCreateInput{City: "Valencia"})
		requireCode(t, err, "NOT_FOUND")
	})
}

func TestGetSeller(t *testing.T) {
	user := &domain.User{ID: "user-1", Role: domain.UserRoleUser}
	svc, sellerRepo, _ := newSellerFixture(user)

	seller := &domain.Seller{UserID: user.ID, City: "Valencia"}
	require.NoError(t, sellerRepo.Create(context.Background(), seller))

	found, err := svc.GetSeller(context.Background(), seller.ID)
	require.NoError(t, err)
	assert.Equal(t, seller.ID, found.ID)

	_, err = svc.GetSeller(context.Background(), "missing")
	requireCode(t, err, "NOT_FOUND")
}
