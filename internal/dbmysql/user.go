package dbmysql

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the canonical record for one person, keyed by the stable external
// identifier the identity provider hands us. ExternalID and CreatedAt never
// change after creation; the profile fields are overwritten on every sync.
type User struct {
	UserID       string    `gorm:"primaryKey;column:user_id;size:36" json:"user_id"`
	ExternalID   string    `gorm:"column:external_id;uniqueIndex;size:191;not null" json:"external_id"`
	DisplayName  string    `gorm:"column:display_name;size:100;not null" json:"display_name"`
	Email        string    `gorm:"column:email;size:255;index" json:"email"`
	AvatarFileID *string   `gorm:"column:avatar_file_id;size:64" json:"avatar_file_id,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == "" {
		u.UserID = uuid.NewString()
	}
	return nil
}
