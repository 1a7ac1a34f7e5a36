package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	"ripple/internal/chat/repository"
	"ripple/internal/common"
	"ripple/internal/dbmysql"
	"ripple/internal/notif"
	"ripple/internal/user"
	apperrors "ripple/pkg/errors"
)

const (
	defaultMessageLimit = 100
	defaultRecentLimit  = 50
)

// MessageView is a message resolved with its sender. Sender is nil when the
// sender's user record no longer exists.
type MessageView struct {
	Message *dbmysql.Message `json:"message"`
	Sender  *dbmysql.User    `json:"sender,omitempty"`
}

// RecentMessageView additionally carries the conversation, for the
// cross-conversation recency feed.
type RecentMessageView struct {
	Message      *dbmysql.Message      `json:"message"`
	Sender       *dbmysql.User         `json:"sender,omitempty"`
	Conversation *dbmysql.Conversation `json:"conversation"`
}

// MessageService is the message log: it appends messages, keeps the
// conversation's last-activity marker current and serves bounded,
// chronologically ordered windows.
type MessageService interface {
	SendMessage(ctx context.Context, conversationID, senderID, content string) (*dbmysql.Message, error)
	GetMessages(ctx context.Context, conversationID string, limit int) ([]*MessageView, error)
	GetRecentMessages(ctx context.Context, userID string, limit int) ([]*RecentMessageView, error)
	DeleteMessage(ctx context.Context, messageID uint64, requesterID string) error
}

type messageService struct {
	repo     repository.MessageRepository
	userRepo user.UserRepository
	events   notif.Publisher
}

func NewMessageService(repo repository.MessageRepository, userRepo user.UserRepository, events notif.Publisher) MessageService {
	return &messageService{repo: repo, userRepo: userRepo, events: events}
}

// SendMessage appends to the conversation after verifying the sender holds a
// current membership; this check is the write access-control boundary. The
// insert and the last-activity update share one transaction so both effects
// are observed together or not at all.
func (s *messageService) SendMessage(ctx context.Context, conversationID, senderID, content string) (*dbmysql.Message, error) {
	if err := common.ValidateMessageBody(content); err != nil {
		return nil, err
	}

	isMember, err := s.repo.MembershipExists(ctx, conversationID, senderID)
	if err != nil {
		return nil, apperrors.Internal("checking membership", err)
	}
	if !isMember {
		return nil, apperrors.ErrNotAMember(conversationID, senderID)
	}

	message := &dbmysql.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.repo.CreateAndTouchConversation(ctx, message); err != nil {
		return nil, apperrors.Internal("storing message", err)
	}

	s.fanOut(ctx, message)
	return message, nil
}

// GetMessages returns at most limit messages, the most recent ones, in
// chronological ascending order with senders resolved.
func (s *messageService) GetMessages(ctx context.Context, conversationID string, limit int) ([]*MessageView, error) {
	if limit <= 0 {
		limit = defaultMessageLimit
	}

	messages, err := s.repo.ListRecent(ctx, conversationID, limit)
	if err != nil {
		return nil, apperrors.Internal("listing messages", err)
	}

	senders, err := s.resolveSenders(ctx, messages)
	if err != nil {
		return nil, err
	}

	// ListRecent is newest-first; reverse for display.
	views := make([]*MessageView, len(messages))
	for i, message := range messages {
		views[len(messages)-1-i] = &MessageView{
			Message: message,
			Sender:  senders[message.SenderID],
		}
	}
	return views, nil
}

// GetRecentMessages merges the newest message of each conversation the user
// belongs to, newest first, capped at limit.
func (s *messageService) GetRecentMessages(ctx context.Context, userID string, limit int) ([]*RecentMessageView, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	conversationIDs, err := s.repo.ListConversationIDsForUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("listing memberships", err)
	}

	var messages []*dbmysql.Message
	for _, conversationID := range conversationIDs {
		message, err := s.repo.LatestInConversation(ctx, conversationID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue // conversation has no messages yet
		}
		if err != nil {
			return nil, apperrors.Internal("reading latest message", err)
		}
		messages = append(messages, message)
	}

	sort.SliceStable(messages, func(i, j int) bool {
		if messages[i].CreatedAt.Equal(messages[j].CreatedAt) {
			return messages[i].MessageID > messages[j].MessageID
		}
		return messages[i].CreatedAt.After(messages[j].CreatedAt)
	})
	if len(messages) > limit {
		messages = messages[:limit]
	}

	senders, err := s.resolveSenders(ctx, messages)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(messages))
	for _, message := range messages {
		ids = append(ids, message.ConversationID)
	}
	conversations, err := s.repo.GetConversationsByIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.Internal("resolving conversations", err)
	}
	conversationByID := make(map[string]*dbmysql.Conversation, len(conversations))
	for _, conversation := range conversations {
		conversationByID[conversation.ConversationID] = conversation
	}

	views := make([]*RecentMessageView, 0, len(messages))
	for _, message := range messages {
		conversation, ok := conversationByID[message.ConversationID]
		if !ok {
			continue
		}
		views = append(views, &RecentMessageView{
			Message:      message,
			Sender:       senders[message.SenderID],
			Conversation: conversation,
		})
	}
	return views, nil
}

// DeleteMessage removes a message; only the original sender may do so.
func (s *messageService) DeleteMessage(ctx context.Context, messageID uint64, requesterID string) error {
	message, err := s.repo.GetMessage(ctx, messageID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrMessageNotFound(messageID)
	}
	if err != nil {
		return apperrors.Internal("looking up message", err)
	}

	if message.SenderID != requesterID {
		return apperrors.ErrNotMessageSender(messageID, requesterID)
	}

	if err := s.repo.DeleteMessage(ctx, messageID); err != nil {
		return apperrors.Internal("deleting message", err)
	}

	s.events.Publish(notif.Event{
		Type:           notif.MessageDeleted,
		UserID:         requesterID,
		ConversationID: message.ConversationID,
		MessageID:      messageID,
	})
	return nil
}

func (s *messageService) resolveSenders(ctx context.Context, messages []*dbmysql.Message) (map[string]*dbmysql.User, error) {
	ids := make([]string, 0, len(messages))
	for _, message := range messages {
		ids = append(ids, message.SenderID)
	}

	users, err := s.userRepo.ListUsersByIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.Internal("resolving senders", err)
	}
	byID := make(map[string]*dbmysql.User, len(users))
	for _, u := range users {
		byID[u.UserID] = u
	}
	return byID, nil
}

// fanOut notifies every member of the conversation, the sender included, so
// each client's conversation list and open thread refresh.
func (s *messageService) fanOut(ctx context.Context, message *dbmysql.Message) {
	memberIDs, err := s.repo.ListMemberUserIDs(ctx, message.ConversationID)
	if err != nil {
		return // delivery is best effort; the write already committed
	}
	for _, memberID := range memberIDs {
		s.events.Publish(notif.Event{
			Type:           notif.MessageSent,
			UserID:         memberID,
			ActorID:        message.SenderID,
			ConversationID: message.ConversationID,
			MessageID:      message.MessageID,
		})
	}
}
