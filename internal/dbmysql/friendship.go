package dbmysql

import (
	"time"
)

const (
	FriendshipPending  = "pending"
	FriendshipAccepted = "accepted"
	FriendshipRejected = "rejected"
)

// Friendship is the single record for one unordered pair of users. At most one
// row may exist per pair, in either direction, whatever the status; the
// unique index only covers one ordering, so the ledger checks both before
// inserting. Rejected rows persist as history and keep blocking re-requests.
type Friendship struct {
	FriendshipID uint64    `gorm:"primaryKey;column:friendship_id;autoIncrement" json:"friendship_id"`
	UserID       string    `gorm:"column:user_id;size:36;not null;index;uniqueIndex:idx_friend_pair" json:"user_id"`
	FriendUserID string    `gorm:"column:friend_user_id;size:36;not null;index;uniqueIndex:idx_friend_pair" json:"friend_user_id"`
	Status       string    `gorm:"column:status;type:enum('pending','accepted','rejected');default:'pending'" json:"status"`
	RequestedBy  string    `gorm:"column:requested_by;size:36;not null" json:"requested_by"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// OtherSide returns the far-side user of the record relative to userID.
func (f *Friendship) OtherSide(userID string) string {
	if f.UserID == userID {
		return f.FriendUserID
	}
	return f.UserID
}
