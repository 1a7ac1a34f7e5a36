package dbmysql

import (
	"time"
)

// Membership is the join record granting a user visibility and write access
// into a conversation. Unique per (conversation, user).
type Membership struct {
	MembershipID   uint64    `gorm:"primaryKey;column:membership_id;autoIncrement" json:"membership_id"`
	ConversationID string    `gorm:"column:conversation_id;size:36;not null;index;uniqueIndex:idx_conv_user" json:"conversation_id"`
	UserID         string    `gorm:"column:user_id;size:36;not null;index;uniqueIndex:idx_conv_user" json:"user_id"`
	JoinedAt       time.Time `gorm:"column:joined_at;autoCreateTime" json:"joined_at"`
}
