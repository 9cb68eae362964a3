package models

import (
	"time"
)

// Favorite sport values accepted on a profile.
const (
	SportAerobic      = "aerobic"
	SportBodybuilding = "bodybuilding"
	SportPowerlifting = "powerlifting"
	SportCrossfit     = "crossfit"
	SportGeneral      = "general"
)

// FavoriteSports lists every accepted favorite-sport value.
var FavoriteSports = []string{
	SportAerobic,
	SportBodybuilding,
	SportPowerlifting,
	SportCrossfit,
	SportGeneral,
}

// IsValidSport reports whether s is one of the accepted favorite-sport values.
func IsValidSport(s string) bool {
	for _, v := range FavoriteSports {
		if v == s {
			return true
		}
	}
	return false
}

// Profile holds the optional free-form attributes of a user. Exactly one
// profile exists per user; it is created in the same transaction as the
// user and removed with it.
type Profile struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"not null;uniqueIndex" json:"user_id"`
	User          User       `gorm:"foreignKey:UserID" json:"-"`
	Bio           string     `json:"bio,omitempty"`
	Profession    string     `json:"profession,omitempty"`
	Education     string     `json:"education,omitempty"`
	BirthDate     *time.Time `json:"birth_date,omitempty"`
	Residence     string     `json:"residence,omitempty"`
	FavoriteSport string     `gorm:"default:general" json:"favorite_sport"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
