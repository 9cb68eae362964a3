package seed

import (
	"testing"

	"fitbuddy/internal/database"
	"fitbuddy/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every session on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))
	return db
}

func TestFactoryCreateUserWithProfile(t *testing.T) {
	db := setupTestDB(t)
	f := NewFactory(db)

	user, err := f.CreateUserWithProfile()
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.LessOrEqual(t, len(user.Username), 20)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(SeedPassword)))

	var profile models.Profile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.True(t, models.IsValidSport(profile.FavoriteSport))
}

func TestFactoryCreateLikeIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	f := NewFactory(db)

	user, err := f.CreateUserWithProfile()
	require.NoError(t, err)
	post, err := f.CreatePost(user)
	require.NoError(t, err)

	require.NoError(t, f.CreateLike(user, post))
	require.NoError(t, f.CreateLike(user, post))

	var count int64
	require.NoError(t, db.Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", user.ID, post.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRunPopulatesDatabase(t *testing.T) {
	db := setupTestDB(t)

	opts := Options{Users: 3, PostsPerUser: 2, CommentsPerPost: 1, LikeRatio: 1.0}
	require.NoError(t, Run(db, opts))

	var users, profiles, posts, comments, likes int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Profile{}).Count(&profiles)
	db.Model(&models.Post{}).Count(&posts)
	db.Model(&models.Comment{}).Count(&comments)
	db.Model(&models.Like{}).Count(&likes)

	assert.Equal(t, int64(3), users)
	assert.Equal(t, int64(3), profiles)
	assert.Equal(t, int64(6), posts)
	assert.Equal(t, int64(6), comments)
	assert.Equal(t, int64(18), likes)
}
