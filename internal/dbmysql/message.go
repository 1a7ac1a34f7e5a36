package dbmysql

import (
	"time"
)

// Message is immutable once created; only the sender may delete it. The
// auto-increment key doubles as the tie-breaker when two messages share a
// creation timestamp.
type Message struct {
	MessageID      uint64    `gorm:"primaryKey;column:message_id;autoIncrement" json:"message_id"`
	ConversationID string    `gorm:"column:conversation_id;size:36;not null;index;index:idx_conv_created,priority:1" json:"conversation_id"`
	SenderID       string    `gorm:"column:sender_id;size:36;not null;index" json:"sender_id"`
	Content        string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt      time.Time `gorm:"column:created_at;index:idx_conv_created,priority:2" json:"created_at"`
}
