package user

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"ripple/internal/dbmysql"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *dbmysql.User) error
	UpdateUser(ctx context.Context, user *dbmysql.User) error
	GetUserByID(ctx context.Context, userID string) (*dbmysql.User, error)
	GetUserByExternalID(ctx context.Context, externalID string) (*dbmysql.User, error)
	ListUsersByIDs(ctx context.Context, userIDs []string) ([]*dbmysql.User, error)
	SearchUsers(ctx context.Context, term, excludeUserID string, limit int) ([]*dbmysql.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *dbmysql.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) UpdateUser(ctx context.Context, user *dbmysql.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByExternalID(ctx context.Context, externalID string) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Where("external_id = ?", externalID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsersByIDs returns only the subset of ids that still resolve, so callers
// tolerate references to users deleted elsewhere.
func (r *userRepository) ListUsersByIDs(ctx context.Context, userIDs []string) ([]*dbmysql.User, error) {
	if len(userIDs) == 0 {
		return []*dbmysql.User{}, nil
	}
	var users []*dbmysql.User
	err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&users).Error
	return users, err
}

func (r *userRepository) SearchUsers(ctx context.Context, term, excludeUserID string, limit int) ([]*dbmysql.User, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	var users []*dbmysql.User
	err := r.db.WithContext(ctx).
		Where("user_id <> ?", excludeUserID).
		Where("LOWER(display_name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern).
		Limit(limit).
		Find(&users).Error
	return users, err
}
