package dbmysql

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Conversation is either a named group or a direct message. A direct
// conversation keeps exactly two members for its entire lifetime and its Name
// is ignored at render time. LastMessageAt is written only by the message log.
type Conversation struct {
	ConversationID  string    `gorm:"primaryKey;column:conversation_id;size:36" json:"conversation_id"`
	Name            string    `gorm:"column:name;size:100" json:"name"`
	IsDirectMessage bool      `gorm:"column:is_direct_message;index" json:"is_direct_message"`
	CreatedBy       string    `gorm:"column:created_by;size:36;not null" json:"created_by"`
	ImageFileID     *string   `gorm:"column:image_file_id;size:64" json:"image_file_id,omitempty"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	LastMessageAt   time.Time `gorm:"column:last_message_at;index" json:"last_message_at"`
}

func (c *Conversation) BeforeCreate(tx *gorm.DB) error {
	if c.ConversationID == "" {
		c.ConversationID = uuid.NewString()
	}
	return nil
}

// LastActivityAt orders conversation lists. Creation time stands in until the
// first message lands.
func (c *Conversation) LastActivityAt() time.Time {
	if c.LastMessageAt.IsZero() {
		return c.CreatedAt
	}
	return c.LastMessageAt
}
