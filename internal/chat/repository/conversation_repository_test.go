package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ripple/internal/dbmysql"
)

func TestConversationRepository_CreateWithMembers(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `conversations`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `memberships`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `memberships`").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	now := time.Now().UTC()
	repo := NewConversationRepository(db)
	err := repo.CreateWithMembers(context.Background(), &dbmysql.Conversation{
		Name:          "Weekend Plans",
		CreatedBy:     "u-1",
		CreatedAt:     now,
		LastMessageAt: now,
	}, []string{"u-1", "u-2"})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationRepository_CreateWithMembers_MembershipFailureRollsBack(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `conversations`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `memberships`").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	repo := NewConversationRepository(db)
	err := repo.CreateWithMembers(context.Background(), &dbmysql.Conversation{
		Name:      "Weekend Plans",
		CreatedBy: "u-1",
	}, []string{"u-1"})
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationRepository_FindDirectConversation(t *testing.T) {
	tests := []struct {
		name      string
		userA     string
		userB     string
		mockSetup func(sqlmock.Sqlmock)
		wantID    string
	}{
		{
			name:  "matches the two-member set whatever the argument order",
			userA: "u-2",
			userB: "u-1",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM `conversations` WHERE is_direct_message = (.+)").
					WithArgs(true).
					WillReturnRows(sqlmock.NewRows([]string{"conversation_id", "is_direct_message"}).
						AddRow("c-other", true).
						AddRow("c-match", true))

				// c-other pairs u-1 with someone else; no match.
				mock.ExpectQuery("SELECT (.+) FROM `memberships` WHERE conversation_id = (.+) ORDER BY joined_at ASC").
					WithArgs("c-other").
					WillReturnRows(sqlmock.NewRows([]string{"membership_id", "conversation_id", "user_id"}).
						AddRow(1, "c-other", "u-1").
						AddRow(2, "c-other", "u-3"))

				mock.ExpectQuery("SELECT (.+) FROM `memberships` WHERE conversation_id = (.+) ORDER BY joined_at ASC").
					WithArgs("c-match").
					WillReturnRows(sqlmock.NewRows([]string{"membership_id", "conversation_id", "user_id"}).
						AddRow(3, "c-match", "u-1").
						AddRow(4, "c-match", "u-2"))
			},
			wantID: "c-match",
		},
		{
			name:  "no conversation holds the pair",
			userA: "u-1",
			userB: "u-9",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM `conversations` WHERE is_direct_message = (.+)").
					WithArgs(true).
					WillReturnRows(sqlmock.NewRows([]string{"conversation_id", "is_direct_message"}).
						AddRow("c-other", true))

				mock.ExpectQuery("SELECT (.+) FROM `memberships` WHERE conversation_id = (.+) ORDER BY joined_at ASC").
					WithArgs("c-other").
					WillReturnRows(sqlmock.NewRows([]string{"membership_id", "conversation_id", "user_id"}).
						AddRow(1, "c-other", "u-1").
						AddRow(2, "c-other", "u-3"))
			},
			wantID: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()

			tt.mockSetup(mock)

			repo := NewConversationRepository(db)
			conversation, err := repo.FindDirectConversation(context.Background(), tt.userA, tt.userB)
			require.NoError(t, err)

			if tt.wantID == "" {
				assert.Nil(t, conversation)
			} else {
				require.NotNil(t, conversation)
				assert.Equal(t, tt.wantID, conversation.ConversationID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
