package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"ripple/internal/dbmysql"
	"ripple/internal/notif"
	apperrors "ripple/pkg/errors"
)

// capturePublisher records published events for assertion.
type capturePublisher struct {
	events []notif.Event
}

func (p *capturePublisher) Publish(event notif.Event) {
	p.events = append(p.events, event)
}

func newFriendServiceForTest(t *testing.T) (FriendService, *MockFriendRepository, *MockUserRepository, *capturePublisher) {
	ctrl := gomock.NewController(t)
	mockFriendRepo := NewMockFriendRepository(ctrl)
	mockUserRepo := NewMockUserRepository(ctrl)
	pub := &capturePublisher{}
	return NewFriendService(mockFriendRepo, mockUserRepo, pub), mockFriendRepo, mockUserRepo, pub
}

func TestFriendService_SendRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending record and notifies the recipient", func(t *testing.T) {
		svc, mockFriendRepo, _, pub := newFriendServiceForTest(t)

		mockFriendRepo.EXPECT().FriendshipExists(ctx, "u-1", "u-2").Return(false, nil)
		mockFriendRepo.EXPECT().CreateFriendship(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, f *dbmysql.Friendship) error {
				f.FriendshipID = 7
				return nil
			})

		friendship, err := svc.SendRequest(ctx, "u-1", "u-2")
		require.NoError(t, err)
		assert.Equal(t, dbmysql.FriendshipPending, friendship.Status)
		assert.Equal(t, "u-1", friendship.RequestedBy)

		require.Len(t, pub.events, 1)
		assert.Equal(t, notif.FriendRequestReceived, pub.events[0].Type)
		assert.Equal(t, "u-2", pub.events[0].UserID)
		assert.Equal(t, "u-1", pub.events[0].ActorID)
		assert.Equal(t, uint64(7), pub.events[0].FriendshipID)
	})

	t.Run("rejects self requests", func(t *testing.T) {
		svc, _, _, pub := newFriendServiceForTest(t)

		_, err := svc.SendRequest(ctx, "u-1", "u-1")
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeInvalidArgument, apperrors.CodeOf(err))
		assert.Empty(t, pub.events)
	})

	t.Run("any existing record in either direction blocks a new request", func(t *testing.T) {
		svc, mockFriendRepo, _, pub := newFriendServiceForTest(t)

		// FriendshipExists checks both orderings, so the reverse-direction
		// record surfaces through the same call.
		mockFriendRepo.EXPECT().FriendshipExists(ctx, "u-2", "u-1").Return(true, nil)

		_, err := svc.SendRequest(ctx, "u-2", "u-1")
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeDuplicateRelationship, apperrors.CodeOf(err))
		assert.Empty(t, pub.events)
	})
}

func TestFriendService_AcceptRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("moves pending to accepted and notifies the requester", func(t *testing.T) {
		svc, mockFriendRepo, _, pub := newFriendServiceForTest(t)

		mockFriendRepo.EXPECT().GetFriendship(ctx, uint64(7)).Return(&dbmysql.Friendship{
			FriendshipID: 7,
			UserID:       "u-1",
			FriendUserID: "u-2",
			Status:       dbmysql.FriendshipPending,
			RequestedBy:  "u-1",
		}, nil)
		mockFriendRepo.EXPECT().UpdateFriendship(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, f *dbmysql.Friendship) error {
				assert.Equal(t, dbmysql.FriendshipAccepted, f.Status)
				return nil
			})

		friendship, err := svc.AcceptRequest(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, dbmysql.FriendshipAccepted, friendship.Status)

		require.Len(t, pub.events, 1)
		assert.Equal(t, notif.FriendRequestAccepted, pub.events[0].Type)
		assert.Equal(t, "u-1", pub.events[0].UserID)
		assert.Equal(t, "u-2", pub.events[0].ActorID)
	})

	t.Run("unknown friendship", func(t *testing.T) {
		svc, mockFriendRepo, _, _ := newFriendServiceForTest(t)

		mockFriendRepo.EXPECT().GetFriendship(ctx, uint64(99)).Return(nil, gorm.ErrRecordNotFound)
		_, err := svc.AcceptRequest(ctx, 99)
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
	})

	t.Run("accepted and rejected records cannot be accepted", func(t *testing.T) {
		svc, mockFriendRepo, _, pub := newFriendServiceForTest(t)

		for _, status := range []string{dbmysql.FriendshipAccepted, dbmysql.FriendshipRejected} {
			mockFriendRepo.EXPECT().GetFriendship(ctx, uint64(7)).Return(&dbmysql.Friendship{
				FriendshipID: 7,
				Status:       status,
			}, nil)
			_, err := svc.AcceptRequest(ctx, 7)
			require.Error(t, err)
			assert.Equal(t, apperrors.CodeInvalidState, apperrors.CodeOf(err))
		}
		assert.Empty(t, pub.events)
	})
}

func TestFriendService_RejectRequest(t *testing.T) {
	ctx := context.Background()
	svc, mockFriendRepo, _, _ := newFriendServiceForTest(t)

	// Rejecting an already-rejected record succeeds; the write is idempotent.
	mockFriendRepo.EXPECT().GetFriendship(ctx, uint64(7)).Return(&dbmysql.Friendship{
		FriendshipID: 7,
		Status:       dbmysql.FriendshipRejected,
	}, nil)
	mockFriendRepo.EXPECT().UpdateFriendship(ctx, gomock.Any()).Return(nil)

	friendship, err := svc.RejectRequest(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, dbmysql.FriendshipRejected, friendship.Status)
}

func TestFriendService_ListFriends(t *testing.T) {
	ctx := context.Background()
	svc, mockFriendRepo, mockUserRepo, _ := newFriendServiceForTest(t)

	// u-1 appears on both sides across the two records; the far side is
	// resolved per record.
	mockFriendRepo.EXPECT().ListAccepted(ctx, "u-1").Return([]*dbmysql.Friendship{
		{FriendshipID: 1, UserID: "u-1", FriendUserID: "u-2", Status: dbmysql.FriendshipAccepted},
		{FriendshipID: 2, UserID: "u-3", FriendUserID: "u-1", Status: dbmysql.FriendshipAccepted},
	}, nil)
	mockUserRepo.EXPECT().ListUsersByIDs(ctx, []string{"u-2", "u-3"}).Return([]*dbmysql.User{
		{UserID: "u-2", DisplayName: "Bob"},
		{UserID: "u-3", DisplayName: "Carol"},
	}, nil)

	friends, err := svc.ListFriends(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, friends, 2)
	assert.Equal(t, "Bob", friends[0].DisplayName)
	assert.Equal(t, "Carol", friends[1].DisplayName)
}

func TestFriendService_ListPendingRequests_DropsMissingUsers(t *testing.T) {
	ctx := context.Background()
	svc, mockFriendRepo, mockUserRepo, _ := newFriendServiceForTest(t)

	mockFriendRepo.EXPECT().ListIncomingPending(ctx, "u-1").Return([]*dbmysql.Friendship{
		{FriendshipID: 1, UserID: "u-2", FriendUserID: "u-1", Status: dbmysql.FriendshipPending},
		{FriendshipID: 2, UserID: "u-gone", FriendUserID: "u-1", Status: dbmysql.FriendshipPending},
	}, nil)
	mockUserRepo.EXPECT().ListUsersByIDs(ctx, []string{"u-2", "u-gone"}).Return([]*dbmysql.User{
		{UserID: "u-2", DisplayName: "Bob"},
	}, nil)

	views, err := svc.ListPendingRequests(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, uint64(1), views[0].Friendship.FriendshipID)
	require.NotNil(t, views[0].Requester)
	assert.Equal(t, "Bob", views[0].Requester.DisplayName)
	assert.Nil(t, views[0].Recipient)
}

func TestFriendService_ListSentRequests(t *testing.T) {
	ctx := context.Background()
	svc, mockFriendRepo, mockUserRepo, _ := newFriendServiceForTest(t)

	mockFriendRepo.EXPECT().ListOutgoingPending(ctx, "u-1").Return([]*dbmysql.Friendship{
		{FriendshipID: 3, UserID: "u-1", FriendUserID: "u-4", Status: dbmysql.FriendshipPending},
	}, nil)
	mockUserRepo.EXPECT().ListUsersByIDs(ctx, []string{"u-4"}).Return([]*dbmysql.User{
		{UserID: "u-4", DisplayName: "Dave"},
	}, nil)

	views, err := svc.ListSentRequests(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.NotNil(t, views[0].Recipient)
	assert.Equal(t, "Dave", views[0].Recipient.DisplayName)
	assert.Nil(t, views[0].Requester)
}
