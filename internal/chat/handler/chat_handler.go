package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"ripple/internal/chat/service"
	"ripple/internal/common"
)

// ChatHandler wires the conversation registry and message log onto the HTTP
// surface.
type ChatHandler struct {
	conversations service.ConversationService
	messages      service.MessageService
}

func NewChatHandler(conversations service.ConversationService, messages service.MessageService) *ChatHandler {
	return &ChatHandler{conversations: conversations, messages: messages}
}

func (h *ChatHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/conversations", h.ListConversations).Methods(http.MethodGet)
	r.HandleFunc("/conversations/group", h.CreateGroup).Methods(http.MethodPost)
	r.HandleFunc("/conversations/direct", h.CreateDirectMessage).Methods(http.MethodPost)
	r.HandleFunc("/conversations/{id}", h.GetConversation).Methods(http.MethodGet)
	r.HandleFunc("/conversations/{id}/members", h.AddMember).Methods(http.MethodPost)
	r.HandleFunc("/conversations/{id}/members/{userId}", h.RemoveMember).Methods(http.MethodDelete)
	r.HandleFunc("/conversations/{id}/messages", h.SendMessage).Methods(http.MethodPost)
	r.HandleFunc("/conversations/{id}/messages", h.GetMessages).Methods(http.MethodGet)
	r.HandleFunc("/messages/recent", h.GetRecentMessages).Methods(http.MethodGet)
	r.HandleFunc("/messages/{id}", h.DeleteMessage).Methods(http.MethodDelete)
}

type createGroupRequest struct {
	Name        string   `json:"name"`
	MemberIDs   []string `json:"member_ids"`
	ImageFileID *string  `json:"image_file_id,omitempty"`
}

func (h *ChatHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	creatorID := common.UserIDFromContext(r.Context())
	conversation, err := h.conversations.CreateGroup(r.Context(), req.Name, creatorID, req.MemberIDs, req.ImageFileID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, conversation)
}

type createDirectRequest struct {
	UserID string `json:"user_id"`
}

func (h *ChatHandler) CreateDirectMessage(w http.ResponseWriter, r *http.Request) {
	var req createDirectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	conversation, err := h.conversations.CreateOrGetDirectMessage(r.Context(), common.UserIDFromContext(r.Context()), req.UserID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, conversation)
}

func (h *ChatHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.conversations.ListUserConversations(r.Context(), common.UserIDFromContext(r.Context()))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, summaries)
}

func (h *ChatHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	detail, err := h.conversations.GetConversation(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, detail)
}

type memberRequest struct {
	UserID string `json:"user_id"`
}

func (h *ChatHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	var req memberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.conversations.AddMember(r.Context(), mux.Vars(r)["id"], req.UserID); err != nil {
		common.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ChatHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.conversations.RemoveMember(r.Context(), vars["id"], vars["userId"]); err != nil {
		common.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	senderID := common.UserIDFromContext(r.Context())
	message, err := h.messages.SendMessage(r.Context(), mux.Vars(r)["id"], senderID, req.Content)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, message)
}

func (h *ChatHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r)
	views, err := h.messages.GetMessages(r.Context(), mux.Vars(r)["id"], limit)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, views)
}

func (h *ChatHandler) GetRecentMessages(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r)
	views, err := h.messages.GetRecentMessages(r.Context(), common.UserIDFromContext(r.Context()), limit)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, views)
}

func (h *ChatHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		common.WriteJSONError(w, http.StatusBadRequest, "invalid message id")
		return
	}

	if err := h.messages.DeleteMessage(r.Context(), id, common.UserIDFromContext(r.Context())); err != nil {
		common.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseLimit(r *http.Request) int {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return limit
}
