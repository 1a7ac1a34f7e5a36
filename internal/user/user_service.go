package user

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"ripple/internal/common"
	"ripple/internal/dbmysql"
	apperrors "ripple/pkg/errors"
)

const searchResultLimit = 20

// UserService is the user directory: it resolves and stores the canonical
// user record keyed by the identity provider's external id.
type UserService interface {
	SyncUser(ctx context.Context, externalID, displayName, email string, avatarFileID *string) (*dbmysql.User, error)
	GetUserByExternalID(ctx context.Context, externalID string) (*dbmysql.User, error)
	GetUsersByIDs(ctx context.Context, userIDs []string) ([]*dbmysql.User, error)
	SearchUsers(ctx context.Context, term, excludingUserID string) ([]*dbmysql.User, error)
	SetAvatar(ctx context.Context, userID, avatarFileID string) error
}

type userService struct {
	userRepo UserRepository
}

func NewUserService(userRepo UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// SyncUser is an idempotent upsert keyed by external id, safe to call on every
// session start. The external id and creation timestamp are immutable; the
// profile fields are overwritten each time.
func (s *userService) SyncUser(ctx context.Context, externalID, displayName, email string, avatarFileID *string) (*dbmysql.User, error) {
	if strings.TrimSpace(externalID) == "" {
		return nil, apperrors.InvalidArg("external id is required")
	}
	if err := common.ValidateDisplayName(displayName); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetUserByExternalID(ctx, externalID)
	switch {
	case err == nil:
		existing.DisplayName = displayName
		existing.Email = email
		existing.AvatarFileID = avatarFileID
		if err := s.userRepo.UpdateUser(ctx, existing); err != nil {
			return nil, apperrors.Internal("updating user on sync", err)
		}
		return existing, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		user := &dbmysql.User{
			ExternalID:   externalID,
			DisplayName:  displayName,
			Email:        email,
			AvatarFileID: avatarFileID,
		}
		if err := s.userRepo.CreateUser(ctx, user); err != nil {
			return nil, apperrors.Internal("creating user on sync", err)
		}
		return user, nil

	default:
		return nil, apperrors.Internal("looking up user by external id", err)
	}
}

func (s *userService) GetUserByExternalID(ctx context.Context, externalID string) (*dbmysql.User, error) {
	user, err := s.userRepo.GetUserByExternalID(ctx, externalID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrUserNotFound(externalID)
	}
	if err != nil {
		return nil, apperrors.Internal("looking up user by external id", err)
	}
	return user, nil
}

// GetUsersByIDs drops ids that no longer resolve rather than failing.
func (s *userService) GetUsersByIDs(ctx context.Context, userIDs []string) ([]*dbmysql.User, error) {
	return s.userRepo.ListUsersByIDs(ctx, userIDs)
}

// SearchUsers matches a case-insensitive substring over display name and
// email. Terms shorter than two characters yield an empty list, never a
// match-all.
func (s *userService) SearchUsers(ctx context.Context, term, excludingUserID string) ([]*dbmysql.User, error) {
	term = strings.TrimSpace(term)
	if len(term) < 2 {
		return []*dbmysql.User{}, nil
	}
	return s.userRepo.SearchUsers(ctx, term, excludingUserID, searchResultLimit)
}

func (s *userService) SetAvatar(ctx context.Context, userID, avatarFileID string) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.Newf(apperrors.CodeNotFound, "user %s not found", userID)
	}
	if err != nil {
		return apperrors.Internal("looking up user", err)
	}

	user.AvatarFileID = &avatarFileID
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return apperrors.Internal("updating avatar", err)
	}
	return nil
}
