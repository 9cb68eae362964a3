package repository

import (
	"context"
	"testing"
	"time"

	"fitbuddy/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepository_GetByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "runner")
	require.NoError(t, db.Model(&models.Profile{}).
		Where("user_id = ?", user.ID).
		Updates(map[string]interface{}{"bio": "marathons", "favorite_sport": models.SportAerobic}).Error)

	profile, err := repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "marathons", profile.Bio)
	assert.Equal(t, models.SportAerobic, profile.FavoriteSport)
	assert.Equal(t, "runner", profile.User.Username)
}

func TestProfileRepository_Search(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	seedUser(t, db, "anna_lifts")
	seedUser(t, db, "annabelle")
	seedUser(t, db, "boris")

	found, err := repo.Search(ctx, "ANNA")
	require.NoError(t, err)
	require.Len(t, found, 2)

	found, err = repo.Search(ctx, "boris")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "boris", found[0].User.Username)

	found, err = repo.Search(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestProfileRepository_UnsetDetail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "minimalist")
	require.NoError(t, db.Model(&models.Profile{}).
		Where("user_id = ?", user.ID).
		Updates(map[string]interface{}{"profession": "coach", "residence": "Oslo"}).Error)

	require.NoError(t, repo.UnsetDetail(ctx, user.ID, "profession"))

	profile, err := repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, profile.Profession)
	assert.Equal(t, "Oslo", profile.Residence)
}

func TestProfileRepository_ListAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	first := seedUser(t, db, "earlybird")
	second := seedUser(t, db, "latecomer")
	require.NoError(t, db.Model(&models.Profile{}).
		Where("user_id = ?", first.ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error)
	require.NoError(t, db.Model(&models.Profile{}).
		Where("user_id = ?", second.ID).
		Update("created_at", time.Now()).Error)

	profiles, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "latecomer", profiles[0].User.Username)
	assert.Equal(t, "earlybird", profiles[1].User.Username)
}

func TestProfileRepository_CacheHitKeepsOwner(t *testing.T) {
	db := setupTestDB(t)
	setupTestRedis(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "casey")

	first, err := repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "casey", first.User.Username)

	cached, err := repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "casey", cached.User.Username)
	assert.Equal(t, user.ID, cached.User.ID)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	cachedAll, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, cachedAll, len(all))
	assert.Equal(t, "casey", cachedAll[0].User.Username)
}
