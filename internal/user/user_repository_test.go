package user

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
	}

	return gormDB, mock, cleanup
}

func TestUserRepository_GetUserByExternalID(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"user_id", "external_id", "display_name", "email"}).
		AddRow("u-1", "clerk|abc", "Alice", "alice@example.com")
	mock.ExpectQuery("SELECT (.+) FROM `users` WHERE external_id = (.+)").
		WithArgs("clerk|abc", 1).
		WillReturnRows(rows)

	repo := NewUserRepository(db)
	user, err := repo.GetUserByExternalID(context.Background(), "clerk|abc")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.UserID)
	assert.Equal(t, "Alice", user.DisplayName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetUserByExternalID_NotFound(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	repo := NewUserRepository(db)
	_, err := repo.GetUserByExternalID(context.Background(), "clerk|missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_ListUsersByIDs_EmptyInput(t *testing.T) {
	db, _, cleanup := setupTestDB(t)
	defer cleanup()

	// No query may reach the store for an empty id list.
	repo := NewUserRepository(db)
	users, err := repo.ListUsersByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserRepository_SearchUsers(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"user_id", "display_name"}).
		AddRow("u-2", "Alice")
	mock.ExpectQuery("SELECT (.+) FROM `users` WHERE user_id <> (.+)LOWER\\(display_name\\) LIKE (.+) OR LOWER\\(email\\) LIKE (.+)").
		WithArgs("u-1", "%ali%", "%ali%", 20).
		WillReturnRows(rows)

	repo := NewUserRepository(db)
	users, err := repo.SearchUsers(context.Background(), "Ali", "u-1", 20)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "u-2", users[0].UserID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFriendRepository_FriendshipExists(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	// Both orderings of the pair travel in one query.
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `friendships`").
		WithArgs("u-1", "u-2", "u-2", "u-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	repo := NewFriendRepository(db)
	exists, err := repo.FriendshipExists(context.Background(), "u-1", "u-2")
	require.NoError(t, err)
	assert.True(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFriendRepository_ListIncomingPending(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"friendship_id", "user_id", "friend_user_id", "status"}).
		AddRow(2, "u-3", "u-1", "pending").
		AddRow(1, "u-2", "u-1", "pending")
	mock.ExpectQuery("SELECT (.+) FROM `friendships` WHERE friend_user_id = (.+) AND status = (.+) ORDER BY created_at DESC").
		WithArgs("u-1", "pending").
		WillReturnRows(rows)

	repo := NewFriendRepository(db)
	friendships, err := repo.ListIncomingPending(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, friendships, 2)
	assert.Equal(t, uint64(2), friendships[0].FriendshipID)

	assert.NoError(t, mock.ExpectationsWereMet())
}
