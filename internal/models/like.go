package models

import (
	"time"
)

// Like represents a user's like on a post.
// The combination of UserID and PostID must be unique: the unique index is
// what gives the likes set its set semantics (at most one like per user per
// post), and the repository inserts with ON CONFLICT DO NOTHING so two
// concurrent toggles cannot produce a duplicate.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_user" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_user" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"user"`
	Post Post `gorm:"foreignKey:PostID" json:"-"`
}
