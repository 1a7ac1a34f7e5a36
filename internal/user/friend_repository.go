package user

import (
	"context"

	"gorm.io/gorm"

	"ripple/internal/dbmysql"
)

type FriendRepository interface {
	CreateFriendship(ctx context.Context, friendship *dbmysql.Friendship) error
	UpdateFriendship(ctx context.Context, friendship *dbmysql.Friendship) error
	GetFriendship(ctx context.Context, friendshipID uint64) (*dbmysql.Friendship, error)
	FriendshipExists(ctx context.Context, userID, friendUserID string) (bool, error)
	ListAccepted(ctx context.Context, userID string) ([]*dbmysql.Friendship, error)
	ListIncomingPending(ctx context.Context, userID string) ([]*dbmysql.Friendship, error)
	ListOutgoingPending(ctx context.Context, userID string) ([]*dbmysql.Friendship, error)
}

type friendRepository struct {
	db *gorm.DB
}

func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) CreateFriendship(ctx context.Context, friendship *dbmysql.Friendship) error {
	return r.db.WithContext(ctx).Create(friendship).Error
}

func (r *friendRepository) UpdateFriendship(ctx context.Context, friendship *dbmysql.Friendship) error {
	return r.db.WithContext(ctx).Save(friendship).Error
}

func (r *friendRepository) GetFriendship(ctx context.Context, friendshipID uint64) (*dbmysql.Friendship, error) {
	var friendship dbmysql.Friendship
	err := r.db.WithContext(ctx).Where("friendship_id = ?", friendshipID).First(&friendship).Error
	if err != nil {
		return nil, err
	}
	return &friendship, nil
}

// FriendshipExists reports whether any record exists between the pair, in
// either direction and in any status. Both orderings must be covered or the
// one-record-per-pair invariant breaks.
func (r *friendRepository) FriendshipExists(ctx context.Context, userID, friendUserID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Friendship{}).
		Where("(user_id = ? AND friend_user_id = ?) OR (user_id = ? AND friend_user_id = ?)",
			userID, friendUserID, friendUserID, userID).
		Count(&count).Error
	return count > 0, err
}

// ListAccepted returns accepted records with userID on either side.
func (r *friendRepository) ListAccepted(ctx context.Context, userID string) ([]*dbmysql.Friendship, error) {
	var friendships []*dbmysql.Friendship
	err := r.db.WithContext(ctx).
		Where("(user_id = ? OR friend_user_id = ?) AND status = ?", userID, userID, dbmysql.FriendshipAccepted).
		Find(&friendships).Error
	return friendships, err
}

func (r *friendRepository) ListIncomingPending(ctx context.Context, userID string) ([]*dbmysql.Friendship, error) {
	var friendships []*dbmysql.Friendship
	err := r.db.WithContext(ctx).
		Where("friend_user_id = ? AND status = ?", userID, dbmysql.FriendshipPending).
		Order("created_at DESC").
		Find(&friendships).Error
	return friendships, err
}

func (r *friendRepository) ListOutgoingPending(ctx context.Context, userID string) ([]*dbmysql.Friendship, error) {
	var friendships []*dbmysql.Friendship
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, dbmysql.FriendshipPending).
		Order("created_at DESC").
		Find(&friendships).Error
	return friendships, err
}
