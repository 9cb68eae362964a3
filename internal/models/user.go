// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account in the FitBuddy application.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"not null;size:20" json:"username"`
	Email     string    `gorm:"unique;not null" json:"email,omitempty"`
	Password  string    `gorm:"not null" json:"-"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships. Constraints let a Postgres deployment enforce the
	// cascades at the schema level; the repository still deletes explicitly
	// inside a transaction so the invariants hold on engines without
	// FK enforcement.
	Profile  *Profile  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
	Posts    []Post    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"posts,omitempty"`
	Comments []Comment `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Likes    []Like    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// UserSummary is the minimal user shape embedded in denormalized views.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	ImageURL string `json:"image_url,omitempty"`
}

// Summary returns the minimal shape used when the user is attached to
// posts, likes, comments, and profiles.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Username: u.Username,
		ImageURL: u.ImageURL,
	}
}
