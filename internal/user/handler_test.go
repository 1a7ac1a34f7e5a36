package user

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"ripple/internal/common"
	"ripple/internal/dbmysql"
	apperrors "ripple/pkg/errors"
)

func setupUserHandler(t *testing.T) (*mux.Router, *MockUserService, *MockFriendService) {
	ctrl := gomock.NewController(t)
	userService := NewMockUserService(ctrl)
	friendService := NewMockFriendService(ctrl)

	router := mux.NewRouter()
	// Stand-in for the auth middleware: every request carries u-1's identity.
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(common.ContextWithIdentity(r.Context(), "u-1", "clerk|abc")))
		})
	})
	NewHandler(userService, friendService, nil).RegisterRoutes(router)
	return router, userService, friendService
}

func TestHandler_SyncUser(t *testing.T) {
	router, userService, _ := setupUserHandler(t)

	userService.EXPECT().SyncUser(gomock.Any(), "clerk|abc", "Alice", "alice@example.com", nil).
		Return(&dbmysql.User{UserID: "u-1", ExternalID: "clerk|abc", DisplayName: "Alice"}, nil)

	body, _ := json.Marshal(map[string]string{"display_name": "Alice", "email": "alice@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/users/sync", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got dbmysql.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "u-1", got.UserID)
}

func TestHandler_LookupUsers(t *testing.T) {
	t.Run("resolves listed ids and drops blanks", func(t *testing.T) {
		router, userService, _ := setupUserHandler(t)

		userService.EXPECT().GetUsersByIDs(gomock.Any(), []string{"u-2", "u-3"}).
			Return([]*dbmysql.User{
				{UserID: "u-2", DisplayName: "Bob"},
				{UserID: "u-3", DisplayName: "Carol"},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/users/lookup?ids=u-2,%20u-3,", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got []*dbmysql.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "Bob", got[0].DisplayName)
	})

	t.Run("no ids yields an empty list", func(t *testing.T) {
		router, userService, _ := setupUserHandler(t)

		userService.EXPECT().GetUsersByIDs(gomock.Any(), nil).
			Return([]*dbmysql.User{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/users/lookup", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}

func TestHandler_SendFriendRequest_Duplicate(t *testing.T) {
	router, _, friendService := setupUserHandler(t)

	friendService.EXPECT().SendRequest(gomock.Any(), "u-1", "u-2").
		Return(nil, apperrors.ErrDuplicateRelationship("u-1", "u-2"))

	body, _ := json.Marshal(map[string]string{"to_user_id": "u-2"})
	req := httptest.NewRequest(http.MethodPost, "/friends/requests", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_UploadAvatar_StorageDisabled(t *testing.T) {
	router, _, _ := setupUserHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/users/me/avatar", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
