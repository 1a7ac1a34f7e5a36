package repository

import (
	"context"

	"gorm.io/gorm"

	"ripple/internal/dbmysql"
)

type ConversationRepository interface {
	CreateWithMembers(ctx context.Context, conversation *dbmysql.Conversation, memberIDs []string) error
	GetConversation(ctx context.Context, conversationID string) (*dbmysql.Conversation, error)
	FindDirectConversation(ctx context.Context, userA, userB string) (*dbmysql.Conversation, error)
	ListConversationsForUser(ctx context.Context, userID string) ([]*dbmysql.Conversation, error)
	ListMembers(ctx context.Context, conversationID string) ([]*dbmysql.Membership, error)
	GetMembership(ctx context.Context, conversationID, userID string) (*dbmysql.Membership, error)
	AddMembership(ctx context.Context, membership *dbmysql.Membership) error
	DeleteMembership(ctx context.Context, conversationID, userID string) error
	CountMembers(ctx context.Context, conversationID string) (int64, error)
}

type conversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

// CreateWithMembers inserts the conversation and one membership row per
// member in a single transaction so a conversation never exists without its
// initial member set.
func (r *conversationRepository) CreateWithMembers(ctx context.Context, conversation *dbmysql.Conversation, memberIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(conversation).Error; err != nil {
			return err
		}
		for _, memberID := range memberIDs {
			membership := &dbmysql.Membership{
				ConversationID: conversation.ConversationID,
				UserID:         memberID,
			}
			if err := tx.Create(membership).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *conversationRepository) GetConversation(ctx context.Context, conversationID string) (*dbmysql.Conversation, error) {
	var conversation dbmysql.Conversation
	err := r.db.WithContext(ctx).Where("conversation_id = ?", conversationID).First(&conversation).Error
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

// FindDirectConversation scans every direct conversation and compares its
// two-member set against {userA, userB}. Linear in the number of DMs
// system-wide; a derived sorted-pair key column would make this a point
// lookup, but that changes the store's index shape, so the scan stays.
// Returns nil, nil when no match exists.
func (r *conversationRepository) FindDirectConversation(ctx context.Context, userA, userB string) (*dbmysql.Conversation, error) {
	var directs []*dbmysql.Conversation
	err := r.db.WithContext(ctx).Where("is_direct_message = ?", true).Find(&directs).Error
	if err != nil {
		return nil, err
	}

	for _, conversation := range directs {
		members, err := r.ListMembers(ctx, conversation.ConversationID)
		if err != nil {
			return nil, err
		}
		if len(members) != 2 {
			continue
		}
		ids := map[string]bool{members[0].UserID: true, members[1].UserID: true}
		if ids[userA] && ids[userB] {
			return conversation, nil
		}
	}
	return nil, nil
}

func (r *conversationRepository) ListConversationsForUser(ctx context.Context, userID string) ([]*dbmysql.Conversation, error) {
	var memberships []*dbmysql.Membership
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	if len(memberships) == 0 {
		return []*dbmysql.Conversation{}, nil
	}

	ids := make([]string, 0, len(memberships))
	for _, m := range memberships {
		ids = append(ids, m.ConversationID)
	}

	// Memberships pointing at deleted conversations drop out here.
	var conversations []*dbmysql.Conversation
	err = r.db.WithContext(ctx).Where("conversation_id IN ?", ids).Find(&conversations).Error
	return conversations, err
}

func (r *conversationRepository) ListMembers(ctx context.Context, conversationID string) ([]*dbmysql.Membership, error) {
	var memberships []*dbmysql.Membership
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("joined_at ASC").
		Find(&memberships).Error
	return memberships, err
}

func (r *conversationRepository) GetMembership(ctx context.Context, conversationID, userID string) (*dbmysql.Membership, error) {
	var membership dbmysql.Membership
	err := r.db.WithContext(ctx).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		First(&membership).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

func (r *conversationRepository) AddMembership(ctx context.Context, membership *dbmysql.Membership) error {
	return r.db.WithContext(ctx).Create(membership).Error
}

func (r *conversationRepository) DeleteMembership(ctx context.Context, conversationID, userID string) error {
	return r.db.WithContext(ctx).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Delete(&dbmysql.Membership{}).Error
}

func (r *conversationRepository) CountMembers(ctx context.Context, conversationID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Membership{}).
		Where("conversation_id = ?", conversationID).
		Count(&count).Error
	return count, err
}
