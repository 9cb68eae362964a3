// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"fitbuddy/internal/cache"
	"fitbuddy/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	DeleteCascade(ctx context.Context, id uint) error
}

// userRepository implements UserRepository
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateWithProfile inserts the user and its profile in a single transaction
// so no user can exist without a profile.
func (r *userRepository) CreateWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		return tx.Create(profile).Error
	})
}

// userRecord is the cache shape of a user. The API model hides the password
// hash from JSON, so caching the model directly would return users with an
// empty hash on every cache hit.
type userRecord struct {
	models.User
	PasswordHash string `json:"password_hash"`
}

func newUserRecord(user *models.User) userRecord {
	return userRecord{User: *user, PasswordHash: user.Password}
}

func (rec *userRecord) user() *models.User {
	user := rec.User
	user.Password = rec.PasswordHash
	return &user
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var rec userRecord
	err := cache.Aside(ctx, cache.UserKey(id), &rec, cache.UserTTL, func() error {
		var user models.User
		if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
			return err
		}
		rec = newUserRecord(&user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec.user(), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return err
	}
	cache.InvalidateUser(ctx, user.ID)
	return nil
}

// DeleteCascade removes the user and every row that references it, in one
// transaction. Order: likes by the user anywhere, the user's comments, then
// each of the user's posts with their comments and likes, the profile, and
// finally the user row itself.
func (r *userRepository) DeleteCascade(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		postIDs := tx.Model(&models.Post{}).Select("id").Where("user_id = ?", id)
		if err := tx.Where("post_id IN (?)", postIDs).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id IN (?)", postIDs).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Post{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.Profile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
	if err != nil {
		return err
	}
	cache.InvalidateUser(ctx, id)
	cache.InvalidatePostPages(ctx)
	return nil
}
