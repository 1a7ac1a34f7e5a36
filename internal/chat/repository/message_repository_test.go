package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ripple/internal/dbmysql"
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

func TestMessageRepository_CreateAndTouchConversation(t *testing.T) {
	tests := []struct {
		name        string
		mockSetup   func(sqlmock.Sqlmock)
		expectError bool
	}{
		{
			name: "insert and touch commit together",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `messages`").
					WithArgs("c-1", "u-1", "hello", sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectExec("UPDATE `conversations` SET `last_message_at`").
					WithArgs(sqlmock.AnyArg(), "c-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "failed touch rolls the insert back",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `messages`").
					WithArgs("c-1", "u-1", "hello", sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectExec("UPDATE `conversations` SET `last_message_at`").
					WillReturnError(assert.AnError)
				mock.ExpectRollback()
			},
			expectError: true,
		},
		{
			name: "failed insert never reaches the touch",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `messages`").
					WillReturnError(assert.AnError)
				mock.ExpectRollback()
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()

			tt.mockSetup(mock)

			repo := NewMessageRepository(db)
			err := repo.CreateAndTouchConversation(context.Background(), &dbmysql.Message{
				ConversationID: "c-1",
				SenderID:       "u-1",
				Content:        "hello",
				CreatedAt:      time.Now().UTC(),
			})

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMessageRepository_ListRecent(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"message_id", "conversation_id", "sender_id", "content", "created_at"}).
		AddRow(3, "c-1", "u-2", "third", now).
		AddRow(2, "c-1", "u-1", "second", now.Add(-time.Minute))
	mock.ExpectQuery("SELECT (.+) FROM `messages` WHERE conversation_id = (.+) ORDER BY created_at DESC,\\s*message_id DESC").
		WithArgs("c-1", 2).
		WillReturnRows(rows)

	repo := NewMessageRepository(db)
	messages, err := repo.ListRecent(context.Background(), "c-1", 2)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, uint64(3), messages[0].MessageID)

	assert.NoError(t, mock.ExpectationsWereMet())
}
