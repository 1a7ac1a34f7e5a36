package notif

import (
	"time"
)

type EventType string

const (
	FriendRequestReceived EventType = "friend_request_received"
	FriendRequestAccepted EventType = "friend_request_accepted"
	ConversationCreated   EventType = "conversation_created"
	ConversationUpdated   EventType = "conversation_updated"
	MessageSent           EventType = "message_sent"
	MessageDeleted        EventType = "message_deleted"
)

// Event tells one user that data backing one of their queries changed, so the
// UI can re-run it. It carries identifiers only, never entity payloads.
type Event struct {
	Type           EventType `json:"type"`
	UserID         string    `json:"user_id"`
	ActorID        string    `json:"actor_id,omitempty"`
	ConversationID string    `json:"conversation_id,omitempty"`
	FriendshipID   uint64    `json:"friendship_id,omitempty"`
	MessageID      uint64    `json:"message_id,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
