package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"ripple/internal/chat/repository/mocks"
	"ripple/internal/dbmysql"
	"ripple/internal/notif"
	"ripple/internal/user"
	apperrors "ripple/pkg/errors"
)

func newMessageServiceForTest(t *testing.T) (MessageService, *mocks.MockMessageRepository, *user.MockUserRepository, *capturePublisher) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMessageRepository(ctrl)
	userRepo := user.NewMockUserRepository(ctrl)
	pub := &capturePublisher{}
	return NewMessageService(repo, userRepo, pub), repo, userRepo, pub
}

func TestMessageService_SendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("appends and fans out to every member", func(t *testing.T) {
		svc, repo, _, pub := newMessageServiceForTest(t)

		repo.EXPECT().MembershipExists(ctx, "c-1", "u-1").Return(true, nil)
		repo.EXPECT().CreateAndTouchConversation(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, m *dbmysql.Message) error {
				require.Equal(t, "c-1", m.ConversationID)
				require.Equal(t, "u-1", m.SenderID)
				require.False(t, m.CreatedAt.IsZero())
				m.MessageID = 42
				return nil
			})
		repo.EXPECT().ListMemberUserIDs(ctx, "c-1").Return([]string{"u-1", "u-2"}, nil)

		message, err := svc.SendMessage(ctx, "c-1", "u-1", "hello")
		require.NoError(t, err)
		assert.Equal(t, uint64(42), message.MessageID)

		// The sender receives the event too.
		require.Len(t, pub.events, 2)
		for i, userID := range []string{"u-1", "u-2"} {
			assert.Equal(t, notif.MessageSent, pub.events[i].Type)
			assert.Equal(t, userID, pub.events[i].UserID)
			assert.Equal(t, uint64(42), pub.events[i].MessageID)
		}
	})

	t.Run("non-members cannot write", func(t *testing.T) {
		svc, repo, _, pub := newMessageServiceForTest(t)

		repo.EXPECT().MembershipExists(ctx, "c-1", "u-9").Return(false, nil)

		_, err := svc.SendMessage(ctx, "c-1", "u-9", "hello")
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeNotAMember, apperrors.CodeOf(err))
		assert.Empty(t, pub.events)
	})

	t.Run("blank content", func(t *testing.T) {
		svc, _, _, _ := newMessageServiceForTest(t)

		_, err := svc.SendMessage(ctx, "c-1", "u-1", "   ")
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeInvalidArgument, apperrors.CodeOf(err))
	})
}

func TestMessageService_GetMessages(t *testing.T) {
	ctx := context.Background()
	svc, repo, userRepo, _ := newMessageServiceForTest(t)

	now := time.Now().UTC()
	// The store hands back newest first.
	repo.EXPECT().ListRecent(ctx, "c-1", 2).Return([]*dbmysql.Message{
		{MessageID: 3, ConversationID: "c-1", SenderID: "u-2", Content: "third", CreatedAt: now},
		{MessageID: 2, ConversationID: "c-1", SenderID: "u-1", Content: "second", CreatedAt: now.Add(-time.Minute)},
	}, nil)
	userRepo.EXPECT().ListUsersByIDs(ctx, []string{"u-2", "u-1"}).Return([]*dbmysql.User{
		{UserID: "u-1", DisplayName: "Alice"},
		{UserID: "u-2", DisplayName: "Bob"},
	}, nil)

	views, err := svc.GetMessages(ctx, "c-1", 2)
	require.NoError(t, err)
	require.Len(t, views, 2)

	// Chronological ascending for display.
	assert.Equal(t, "second", views[0].Message.Content)
	assert.Equal(t, "Alice", views[0].Sender.DisplayName)
	assert.Equal(t, "third", views[1].Message.Content)
	assert.Equal(t, "Bob", views[1].Sender.DisplayName)
}

func TestMessageService_GetMessages_DefaultLimit(t *testing.T) {
	ctx := context.Background()
	svc, repo, userRepo, _ := newMessageServiceForTest(t)

	repo.EXPECT().ListRecent(ctx, "c-1", defaultMessageLimit).Return(nil, nil)
	userRepo.EXPECT().ListUsersByIDs(ctx, []string{}).Return(nil, nil)

	views, err := svc.GetMessages(ctx, "c-1", 0)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestMessageService_GetMessages_DeletedSender(t *testing.T) {
	ctx := context.Background()
	svc, repo, userRepo, _ := newMessageServiceForTest(t)

	repo.EXPECT().ListRecent(ctx, "c-1", 10).Return([]*dbmysql.Message{
		{MessageID: 1, ConversationID: "c-1", SenderID: "u-gone", Content: "orphaned"},
	}, nil)
	userRepo.EXPECT().ListUsersByIDs(ctx, []string{"u-gone"}).Return([]*dbmysql.User{}, nil)

	views, err := svc.GetMessages(ctx, "c-1", 10)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Nil(t, views[0].Sender)
	assert.Equal(t, "orphaned", views[0].Message.Content)
}

func TestMessageService_GetRecentMessages(t *testing.T) {
	ctx := context.Background()
	svc, repo, userRepo, _ := newMessageServiceForTest(t)

	now := time.Now().UTC()
	repo.EXPECT().ListConversationIDsForUser(ctx, "u-1").Return([]string{"c-1", "c-2", "c-empty"}, nil)
	repo.EXPECT().LatestInConversation(ctx, "c-1").Return(&dbmysql.Message{
		MessageID: 5, ConversationID: "c-1", SenderID: "u-2", CreatedAt: now.Add(-time.Hour),
	}, nil)
	repo.EXPECT().LatestInConversation(ctx, "c-2").Return(&dbmysql.Message{
		MessageID: 9, ConversationID: "c-2", SenderID: "u-3", CreatedAt: now,
	}, nil)
	// A conversation with no messages is skipped, not an error.
	repo.EXPECT().LatestInConversation(ctx, "c-empty").Return(nil, gorm.ErrRecordNotFound)

	userRepo.EXPECT().ListUsersByIDs(ctx, []string{"u-3", "u-2"}).Return([]*dbmysql.User{
		{UserID: "u-2", DisplayName: "Bob"},
		{UserID: "u-3", DisplayName: "Carol"},
	}, nil)
	repo.EXPECT().GetConversationsByIDs(ctx, []string{"c-2", "c-1"}).Return([]*dbmysql.Conversation{
		{ConversationID: "c-1"},
		{ConversationID: "c-2"},
	}, nil)

	views, err := svc.GetRecentMessages(ctx, "u-1", 10)
	require.NoError(t, err)
	require.Len(t, views, 2)

	// Newest first across conversations.
	assert.Equal(t, uint64(9), views[0].Message.MessageID)
	assert.Equal(t, "Carol", views[0].Sender.DisplayName)
	assert.Equal(t, "c-2", views[0].Conversation.ConversationID)
	assert.Equal(t, uint64(5), views[1].Message.MessageID)
}

func TestMessageService_DeleteMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("sender deletes own message", func(t *testing.T) {
		svc, repo, _, pub := newMessageServiceForTest(t)

		repo.EXPECT().GetMessage(ctx, uint64(42)).Return(&dbmysql.Message{
			MessageID: 42, ConversationID: "c-1", SenderID: "u-1",
		}, nil)
		repo.EXPECT().DeleteMessage(ctx, uint64(42)).Return(nil)

		require.NoError(t, svc.DeleteMessage(ctx, 42, "u-1"))
		require.Len(t, pub.events, 1)
		assert.Equal(t, notif.MessageDeleted, pub.events[0].Type)
		assert.Equal(t, uint64(42), pub.events[0].MessageID)
	})

	t.Run("only the sender may delete", func(t *testing.T) {
		svc, repo, _, pub := newMessageServiceForTest(t)

		repo.EXPECT().GetMessage(ctx, uint64(42)).Return(&dbmysql.Message{
			MessageID: 42, ConversationID: "c-1", SenderID: "u-1",
		}, nil)

		err := svc.DeleteMessage(ctx, 42, "u-2")
		require.Error(t, err)
		assert.Equal(t, apperrors.CodePermissionDenied, apperrors.CodeOf(err))
		assert.Empty(t, pub.events)
	})

	t.Run("unknown message", func(t *testing.T) {
		svc, repo, _, _ := newMessageServiceForTest(t)

		repo.EXPECT().GetMessage(ctx, uint64(99)).Return(nil, gorm.ErrRecordNotFound)
		err := svc.DeleteMessage(ctx, 99, "u-1")
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
	})
}
