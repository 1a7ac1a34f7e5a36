package repository

import (
	"context"

	"gorm.io/gorm"

	"ripple/internal/dbmysql"
)

type MessageRepository interface {
	CreateAndTouchConversation(ctx context.Context, message *dbmysql.Message) error
	GetMessage(ctx context.Context, messageID uint64) (*dbmysql.Message, error)
	ListRecent(ctx context.Context, conversationID string, limit int) ([]*dbmysql.Message, error)
	LatestInConversation(ctx context.Context, conversationID string) (*dbmysql.Message, error)
	DeleteMessage(ctx context.Context, messageID uint64) error

	// The message log validates membership against the store itself instead
	// of calling into the conversation registry.
	MembershipExists(ctx context.Context, conversationID, userID string) (bool, error)
	ListMemberUserIDs(ctx context.Context, conversationID string) ([]string, error)
	ListConversationIDsForUser(ctx context.Context, userID string) ([]string, error)
	GetConversationsByIDs(ctx context.Context, conversationIDs []string) ([]*dbmysql.Conversation, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// CreateAndTouchConversation appends the message and advances the
// conversation's last_message_at to the message's timestamp in one
// transaction: both effects land or neither does.
func (r *messageRepository) CreateAndTouchConversation(ctx context.Context, message *dbmysql.Message) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return err
		}
		return tx.Model(&dbmysql.Conversation{}).
			Where("conversation_id = ?", message.ConversationID).
			Update("last_message_at", message.CreatedAt).Error
	})
}

func (r *messageRepository) GetMessage(ctx context.Context, messageID uint64) (*dbmysql.Message, error) {
	var message dbmysql.Message
	err := r.db.WithContext(ctx).Where("message_id = ?", messageID).First(&message).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// ListRecent returns the newest messages first. The auto-increment key breaks
// creation-time ties in insertion order.
func (r *messageRepository) ListRecent(ctx context.Context, conversationID string, limit int) ([]*dbmysql.Message, error) {
	var messages []*dbmysql.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC").
		Order("message_id DESC").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}

func (r *messageRepository) LatestInConversation(ctx context.Context, conversationID string) (*dbmysql.Message, error) {
	var message dbmysql.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC").
		Order("message_id DESC").
		First(&message).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *messageRepository) DeleteMessage(ctx context.Context, messageID uint64) error {
	return r.db.WithContext(ctx).
		Where("message_id = ?", messageID).
		Delete(&dbmysql.Message{}).Error
}

func (r *messageRepository) MembershipExists(ctx context.Context, conversationID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Membership{}).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *messageRepository) ListMemberUserIDs(ctx context.Context, conversationID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Membership{}).
		Where("conversation_id = ?", conversationID).
		Pluck("user_id", &ids).Error
	return ids, err
}

func (r *messageRepository) ListConversationIDsForUser(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Membership{}).
		Where("user_id = ?", userID).
		Pluck("conversation_id", &ids).Error
	return ids, err
}

func (r *messageRepository) GetConversationsByIDs(ctx context.Context, conversationIDs []string) ([]*dbmysql.Conversation, error) {
	if len(conversationIDs) == 0 {
		return []*dbmysql.Conversation{}, nil
	}
	var conversations []*dbmysql.Conversation
	err := r.db.WithContext(ctx).Where("conversation_id IN ?", conversationIDs).Find(&conversations).Error
	return conversations, err
}
