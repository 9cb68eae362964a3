package database

import "fitbuddy/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
// Order matters for migration: parents before children so foreign keys resolve.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Profile{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
	}
}
