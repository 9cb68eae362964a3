package repository

import (
	"context"

	"fitbuddy/internal/cache"
	"fitbuddy/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository defines the interface for profile data operations
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	ListAll(ctx context.Context) ([]*models.Profile, error)
	Search(ctx context.Context, username string) ([]*models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) error
	UnsetDetail(ctx context.Context, userID uint, column string) error
}

// profileRepository implements ProfileRepository
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// profileRecord is the cache shape of a profile. The User association is
// hidden from JSON on the model, so the owner summary is carried separately
// and restored on cache hits.
type profileRecord struct {
	models.Profile
	Owner models.UserSummary `json:"owner"`
}

func newProfileRecord(profile *models.Profile) profileRecord {
	return profileRecord{Profile: *profile, Owner: profile.User.Summary()}
}

func (rec *profileRecord) profile() *models.Profile {
	profile := rec.Profile
	profile.User = models.User{
		ID:       rec.Owner.ID,
		Username: rec.Owner.Username,
		ImageURL: rec.Owner.ImageURL,
	}
	return &profile
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var rec profileRecord
	err := cache.Aside(ctx, cache.ProfileKey(userID), &rec, cache.ProfileTTL, func() error {
		var profile models.Profile
		if err := r.db.WithContext(ctx).
			Preload("User").
			Where("user_id = ?", userID).
			First(&profile).Error; err != nil {
			return err
		}
		rec = newProfileRecord(&profile)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec.profile(), nil
}

func (r *profileRepository) ListAll(ctx context.Context) ([]*models.Profile, error) {
	var recs []profileRecord
	err := cache.Aside(ctx, cache.ProfileListKey, &recs, cache.ProfileListTTL, func() error {
		var profiles []*models.Profile
		if err := r.db.WithContext(ctx).
			Preload("User").
			Order("profiles.created_at DESC").
			Find(&profiles).Error; err != nil {
			return err
		}
		recs = make([]profileRecord, 0, len(profiles))
		for _, profile := range profiles {
			recs = append(recs, newProfileRecord(profile))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	profiles := make([]*models.Profile, 0, len(recs))
	for i := range recs {
		profiles = append(profiles, recs[i].profile())
	}
	return profiles, nil
}

func (r *profileRepository) Search(ctx context.Context, username string) ([]*models.Profile, error) {
	var profiles []*models.Profile
	like := "%" + username + "%"
	err := r.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN users ON users.id = profiles.user_id").
		Where("LOWER(users.username) LIKE LOWER(?)", like).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return err
	}
	cache.Invalidate(ctx, cache.ProfileKey(profile.UserID))
	cache.InvalidateProfiles(ctx)
	return nil
}

// UnsetDetail clears a single optional profile column. The column name must
// come from the service layer's allow-list, never from user input.
func (r *profileRepository) UnsetDetail(ctx context.Context, userID uint, column string) error {
	err := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Update(column, nil).Error
	if err != nil {
		return err
	}
	cache.Invalidate(ctx, cache.ProfileKey(userID))
	cache.InvalidateProfiles(ctx)
	return nil
}
