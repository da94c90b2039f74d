package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/estate-service/internal/domain"
	"github.com/spec-kit/estate-service/internal/repository"
)

type meetingFixture struct {
	svc      *MeetingService
	meetings *fakeMeetingRepo
	estates  *fakeEstateRepo
	sellers  *fakeSellerRepo
	users    *fakeUserRepo
}

func newMeetingFixture(now time.Time, users ...*domain.User) *meetingFixture {
	f := &meetingFixture{
		meetings: newFakeMeetingRepo(),
		estates:  newFakeEstateRepo(),
		sellers:  newFakeSellerRepo(),
		users:    newFakeUserRepo(users...),
	}
	f.svc = NewMeetingService(MeetingDependencies{
		MeetingRepo: f.meetings,
		EstateRepo:  f.estates,
		SellerRepo:  f.sellers,
		UserRepo:    f.users,
		Logger:      zap.NewNop(),
		Now:         func() time.Time { return now },
	})
	return f
}

func (f *meetingFixture) addEstate(t *testing.T, ownerID string, sellerID *string) *domain.Estate {
	t.Helper()
	estate := &domain.Estate{
		Name:            "Loft",
		UserID:          ownerID,
		SellerID:        sellerID,
		Status:          domain.EstateStatusApproved,
		Characteristics: []string{"terrace"},
		Images:          []string{"a.jpg", "b.jpg"},
	}
	require.NoError(t, f.estates.Create(context.Background(), estate))
	return estate
}

func (f *meetingFixture) addSeller(t *testing.T, userID string) *domain.Seller {
	t.Helper()
	seller := &domain.Seller{UserID: userID, City: "Valencia"}
	require.NoError(t, f.sellers.Create(context.Background(), seller))
	return seller
}

func TestCreateMeeting(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	requester := &domain.User{ID: "user-1", Name: "Ana", Role: domain.UserRoleUser}
	sellerUser := &domain.User{ID: "user-2", Name: "Bo", Role: domain.UserRoleSeller}

	validInput := func(estateID string) MeetingCreateInput {
		return MeetingCreateInput{
			EstateID: estateID,
			Date:     "2030-01-01",
			Message:  "I would like a viewing",
		}
	}

	t.Run("waiting for seller when none resolvable", func(t *testing.T) {
		f := newMeetingFixture(now, requester)
		estate := f.addEstate(t, "owner-1", nil)

		meeting, err := f.svc.CreateMeeting(context.Background(), requester.ID, validInput(estate.ID))
		require.NoError(t, err)
		assert.True(t, meeting.WaitingSeller)
		assert.Nil(t, meeting.SellerID)
		assert.Equal(t, domain.MeetingStatusPending, meeting.Status)
	})

	t.Run("resolves estate seller", func(t *testing.T) {
		f := newMeetingFixture(now, requester, sellerUser)
		seller := f.addSeller(t, sellerUser.ID)
		estate := f.addEstate(t, "owner-1", &seller.ID)

		meeting, err := f.svc.CreateMeeting(context.Background(), requester.ID, validInput(estate.ID))
		require.NoError(t, err)
		assert.False(t, meeting.WaitingSeller)
		require.NotNil(t, meeting.SellerID)
		assert.Equal(t, seller.ID, *meeting.SellerID)
	})

	t.Run("missing fields", func(t *testing.T) {
		f := newMeetingFixture(now, requester)
		_, err := f.svc.CreateMeeting(context.Background(), requester.ID, MeetingCreateInput{EstateID: "e", Date: "2030-01-01"})
		requireCode(t, err, "MISSING_FIELD")
	})

	t.Run("estate not found", func(t *testing.T) {
		f := newMeetingFixture(now, requester)
		_, err := f.svc.CreateMeeting(context.Background(), requester.ID, validInput("missing"))
		requireCode(t, err, "NOT_FOUND")
	})

	t.Run("explicit seller not found", func(t *testing.T) {
		f := newMeetingFixture(now, requester)
		estate := f.addEstate(t, "owner-1", nil)
		input := validInput(estate.ID)
		missing := "missing-seller"
		input.SellerID = &missing

		_, err := f.svc.CreateMeeting(context.Background(), requester.ID, input)
		requireCode(t, err, "NOT_FOUND")
	})

	t.Run("requester cannot meet own estate", func(t *testing.T) {
		f := newMeetingFixture(now, requester, sellerUser)
		seller := f.addSeller(t, sellerUser.ID)
		estate := f.addEstate(t, sellerUser.ID, &seller.ID)

		_, err := f.svc.CreateMeeting(context.Background(), sellerUser.ID, validInput(estate.ID))
		requireCode(t, err, "SELF_MEETING_FORBIDDEN")
	})

	t.Run("past date", func(t *testing.T) {
		f := newMeetingFixture(now, requester)
		estate := f.addEstate(t, "owner-1", nil)
		input := validInput(estate.ID)
		input.Date = "2020-05-05"

		_, err := f.svc.CreateMeeting(context.Background(), requester.ID, input)
		requireCode(t, err, "INVALID_DATE")
	})

	t.Run("unparseable date", func(t *testing.T) {
		f := newMeetingFixture(now, requester)
		estate := f.addEstate(t, "owner-1", nil)
		input := validInput(estate.ID)
		input.Date = "next tuesday"

		_, err := f.svc.CreateMeeting(context.Background(), requester.ID, input)
		requireCode(t, err, "INVALID_DATE")
	})

	t.Run("duplicate estate and date", func(t *testing.T) {
		f := newMeetingFixture(now, requester, sellerUser)
		estate := f.addEstate(t, "owner-1", nil)

		_, err := f.svc.CreateMeeting(context.Background(), requester.ID, validInput(estate.ID))
		require.NoError(t, err)

		// Same slot, different requester: still a conflict.
		_, err = f.svc.CreateMeeting(context.Background(), sellerUser.ID, validInput(estate.ID))
		requireCode(t, err, "DUPLICATE_MEETING")
	})

	t.Run("storage-level duplicate maps to conflict", func(t *testing.T) {
		f := newMeetingFixture(now, requester)
		estate := f.addEstate(t, "owner-1", nil)
		f.meetings.createErr = repository.ErrDuplicateKey

		_, err := f.svc.CreateMeeting(context.Background(), requester.ID, validInput(estate.ID))
		requireCode(t, err, "DUPLICATE_MEETING")
	})
}

func TestListMeetingsForUserDetailed(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	requester := &domain.User{ID: "user-1", Name: "Ana", Role: domain.UserRoleUser}
	sellerUser := &domain.User{ID: "user-2", Name: "Bo", Role: domain.UserRoleSeller}

	t.Run("expands linked records", func(t *testing.T) {
		f := newMeetingFixture(now, requester, sellerUser)
		seller := f.addSeller(t, sellerUser.ID)
		estate := f.addEstate(t, "owner-1", &seller.ID)

		_, err := f.svc.CreateMeeting(context.Background(), requester.ID, MeetingCreateInput{
			EstateID: estate.ID,
			Date:     "2030-01-01",
			Message:  "viewing please",
		})
		require.NoError(t, err)

		details, err := f.svc.ListMeetingsForUserDetailed(context.Background(), requester.ID)
		require.NoError(t, err)
		require.Len(t, details, 1)

		detail := details[0]
		require.NotNil(t, detail.Estate)
		assert.Equal(t, estate.ID, detail.Estate.ID)
		require.NotNil(t, detail.Seller)
		assert.Equal(t, seller.ID, detail.Seller.ID)
		require.NotNil(t, detail.SellerUser)
		assert.Equal(t, sellerUser.ID, detail.SellerUser.ID)
		require.NotNil(t, detail.Requester)
		assert.Equal(t, requester.ID, detail.Requester.ID)
	})

	t.Run("keeps meeting when links are absent", func(t *testing.T) {
		f := newMeetingFixture(now, requester)
		estate := f.addEstate(t, "owner-1", nil)

		_, err := f.svc.CreateMeeting(context.Background(), requester.ID, MeetingCreateInput{
			EstateID: estate.ID,
			Date:     "2030-01-01",
			Message:  "viewing please",
		})
		require.NoError(t, err)
		delete(f.estates.estates, estate.ID)

		details, err := f.svc.ListMeetingsForUserDetailed(context.Background(), requester.ID)
		require.NoError(t, err)
		require.Len(t, details, 1)
		assert.Nil(t, details[0].Estate)
		assert.Nil(t, details[0].Seller)
		assert.Nil(t, details[0].SellerUser)
	})

	t.Run("no meetings is empty list", func(t *testing.T) {
		f := newMeetingFixture(now, requester)
		meetings, err := f.svc.ListMeetingsForUser(context.Background(), requester.ID)
		require.NoError(t, err)
		assert.Empty(t, meetings)
	})
}

func TestUpdateMeetingStatus(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	requester := &domain.User{ID: "user-1", Role: domain.UserRoleUser}
	sellerUser := &domain.User{ID: "user-2", Role: domain.UserRoleSeller}
	stranger := &domain.User{ID: "user-3", Role: domain.UserRoleUser}

	setup := func(t *testing.T) (*meetingFixture, *domain.Meeting) {
		f := newMeetingFixture(now, requester, sellerUser, stranger)
		seller := f.addSeller(t, sellerUser.ID)
		estate := f.addEstate(t, "owner-1", &seller.ID)
		meeting, err := f.svc.CreateMeeting(context.Background(), requester.ID, MeetingCreateInput{
			EstateID: estate.ID,
			Date:     "2030-01-01",
			Message:  "viewing please",
		})
		require.NoError(t, err)
		return f, meeting
	}

	t.Run("seller accepts", func(t *testing.T) {
		f, meeting := setup(t)
		updated, err := f.svc.UpdateMeetingStatus(context.Background(), sellerUser.ID, false, meeting.ID, domain.MeetingStatusAccepted)
		require.NoError(t, err)
		assert.Equal(t, domain.MeetingStatusAccepted, updated.Status)
	})

	t.Run("requester cancels", func(t *testing.T) {
		f, meeting := setup(t)
		updated, err := f.svc.UpdateMeetingStatus(context.Background(), requester.ID, false, meeting.ID, domain.MeetingStatusCancelled)
		require.NoError(t, err)
		assert.Equal(t, domain.MeetingStatusCancelled, updated.Status)
	})

	t.Run("stranger forbidden", func(t *testing.T) {
		f, meeting := setup(t)
		_, err := f.svc.UpdateMeetingStatus(context.Background(), stranger.ID, false, meeting.ID, domain.MeetingStatusAccepted)
		requireCode(t, err, "FORBIDDEN")
	})

	t.Run("requester cannot accept", func(t *testing.T) {
		f, meeting := setup(t)
		_, err := f.svc.UpdateMeetingStatus(context.Background(), requester.ID, false, meeting.ID, domain.MeetingStatusAccepted)
		requireCode(t, err, "FORBIDDEN")
	})

	t.Run("admin overrides", func(t *testing.T) {
		f, meeting := setup(t)
		updated, err := f.svc.UpdateMeetingStatus(context.Background(), "admin-1", true, meeting.ID, domain.MeetingStatusRejected)
		require.NoError(t, err)
		assert.Equal(t, domain.MeetingStatusRejected, updated.Status)
	})

	t.Run("invalid status", func(t *testing.T) {
		f, meeting := setup(t)
		_, err := f.svc.UpdateMeetingStatus(context.Background(), requester.ID, false, meeting.ID, domain.MeetingStatus("archived"))
		requireCode(t, err, "VALIDATION_FAILED")
	})

	t.Run("missing meeting", func(t *testing.T) {
		f := newMeetingFixture(now, requester)
		_, err := f.svc.UpdateMeetingStatus(context.Background(), requester.ID, true, "missing", domain.MeetingStatusAccepted)
		requireCode(t, err, "NOT_FOUND")
	})
}
