package user

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"ripple/internal/common"
	"ripple/internal/dbmongo"
	apperrors "ripple/pkg/errors"
)

// Handler wires the directory and ledger services onto the HTTP surface the
// UI consumes.
type Handler struct {
	userService   UserService
	friendService FriendService
	avatars       *dbmongo.AvatarStorage
}

func NewHandler(userService UserService, friendService FriendService, avatars *dbmongo.AvatarStorage) *Handler {
	return &Handler{userService: userService, friendService: friendService, avatars: avatars}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/users/sync", h.SyncUser).Methods(http.MethodPost)
	r.HandleFunc("/users/me", h.GetCurrentUser).Methods(http.MethodGet)
	r.HandleFunc("/users/search", h.SearchUsers).Methods(http.MethodGet)
	r.HandleFunc("/users/lookup", h.LookupUsers).Methods(http.MethodGet)
	r.HandleFunc("/users/me/avatar", h.UploadAvatar).Methods(http.MethodPost)
	r.HandleFunc("/avatars/{id}", h.DownloadAvatar).Methods(http.MethodGet)

	r.HandleFunc("/friends", h.ListFriends).Methods(http.MethodGet)
	r.HandleFunc("/friends/requests", h.SendFriendRequest).Methods(http.MethodPost)
	r.HandleFunc("/friends/requests/pending", h.ListPendingRequests).Methods(http.MethodGet)
	r.HandleFunc("/friends/requests/sent", h.ListSentRequests).Methods(http.MethodGet)
	r.HandleFunc("/friends/requests/{id}/accept", h.AcceptFriendRequest).Methods(http.MethodPost)
	r.HandleFunc("/friends/requests/{id}/reject", h.RejectFriendRequest).Methods(http.MethodPost)
}

type syncUserRequest struct {
	DisplayName  string  `json:"display_name"`
	Email        string  `json:"email"`
	AvatarFileID *string `json:"avatar_file_id,omitempty"`
}

// SyncUser upserts the caller's directory record from the profile fields the
// identity provider supplied; called on every session start.
func (h *Handler) SyncUser(w http.ResponseWriter, r *http.Request) {
	var req syncUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	externalID := common.ExternalIDFromContext(r.Context())
	user, err := h.userService.SyncUser(r.Context(), externalID, req.DisplayName, req.Email, req.AvatarFileID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, user)
}

func (h *Handler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	externalID := common.ExternalIDFromContext(r.Context())
	user, err := h.userService.GetUserByExternalID(r.Context(), externalID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, user)
}

func (h *Handler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	users, err := h.userService.SearchUsers(r.Context(), term, common.UserIDFromContext(r.Context()))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, users)
}

// LookupUsers resolves a comma-separated list of directory ids; ids that no
// longer resolve are dropped from the response, mirroring the service.
func (h *Handler) LookupUsers(w http.ResponseWriter, r *http.Request) {
	var ids []string
	for _, id := range strings.Split(r.URL.Query().Get("ids"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	users, err := h.userService.GetUsersByIDs(r.Context(), ids)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, users)
}

type sendFriendRequestRequest struct {
	ToUserID string `json:"to_user_id"`
}

func (h *Handler) SendFriendRequest(w http.ResponseWriter, r *http.Request) {
	var req sendFriendRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	friendship, err := h.friendService.SendRequest(r.Context(), common.UserIDFromContext(r.Context()), req.ToUserID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, friendship)
}

func (h *Handler) AcceptFriendRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := friendshipIDFromPath(w, r)
	if !ok {
		return
	}
	friendship, err := h.friendService.AcceptRequest(r.Context(), id)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, friendship)
}

func (h *Handler) RejectFriendRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := friendshipIDFromPath(w, r)
	if !ok {
		return
	}
	friendship, err := h.friendService.RejectRequest(r.Context(), id)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, friendship)
}

func (h *Handler) ListFriends(w http.ResponseWriter, r *http.Request) {
	friends, err := h.friendService.ListFriends(r.Context(), common.UserIDFromContext(r.Context()))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, friends)
}

func (h *Handler) ListPendingRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.friendService.ListPendingRequests(r.Context(), common.UserIDFromContext(r.Context()))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, requests)
}

func (h *Handler) ListSentRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.friendService.ListSentRequests(r.Context(), common.UserIDFromContext(r.Context()))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, requests)
}

const maxAvatarSize = 5 << 20 // 5 MiB

func (h *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	if h.avatars == nil {
		common.WriteJSONError(w, http.StatusServiceUnavailable, "avatar storage is not configured")
		return
	}

	if err := r.ParseMultipartForm(maxAvatarSize); err != nil {
		common.WriteJSONError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}
	file, header, err := r.FormFile("avatar")
	if err != nil {
		common.WriteJSONError(w, http.StatusBadRequest, "avatar file is required")
		return
	}
	defer file.Close()

	userID := common.UserIDFromContext(r.Context())
	uploaded, err := h.avatars.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), userID, file)
	if err != nil {
		common.WriteError(w, apperrors.Internal("storing avatar", err))
		return
	}

	if err := h.userService.SetAvatar(r.Context(), userID, uploaded.ID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, uploaded)
}

func (h *Handler) DownloadAvatar(w http.ResponseWriter, r *http.Request) {
	if h.avatars == nil {
		common.WriteJSONError(w, http.StatusServiceUnavailable, "avatar storage is not configured")
		return
	}

	stream, info, err := h.avatars.Download(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		common.WriteJSONError(w, http.StatusNotFound, "avatar not found")
		return
	}
	defer stream.Close()

	if info.ContentType != "" {
		w.Header().Set("Content-Type", info.ContentType)
	}
	_, _ = io.Copy(w, stream)
}

func friendshipIDFromPath(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		common.WriteJSONError(w, http.StatusBadRequest, "invalid friendship id")
		return 0, false
	}
	return id, true
}
