package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"fitbuddy/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_LikeIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "liker")
	post := seedPost(t, db, user.ID, "pr day", time.Now())

	require.NoError(t, repo.Like(ctx, user.ID, post.ID))
	require.NoError(t, repo.Like(ctx, user.ID, post.ID))
	require.NoError(t, repo.Like(ctx, user.ID, post.ID))

	assert.Equal(t, int64(1), countRows(t, db, &models.Like{}, "post_id = ? AND user_id = ?", post.ID, user.ID))
}

func TestPostRepository_LikeUnlikeRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "toggler")
	post := seedPost(t, db, user.ID, "cardio", time.Now())

	liked, err := repo.IsLiked(ctx, user.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	require.NoError(t, repo.Like(ctx, user.ID, post.ID))
	liked, err = repo.IsLiked(ctx, user.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	require.NoError(t, repo.Unlike(ctx, user.ID, post.ID))
	liked, err = repo.IsLiked(ctx, user.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestPostRepository_ListPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "poster")
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		seedPost(t, db, user.ID, fmt.Sprintf("post %d", i), base.Add(time.Duration(i)*time.Hour))
	}

	// Page 1 returns the three newest, page 2 the next three, page 3 the rest.
	page1, err := repo.List(ctx, 3, 0)
	require.NoError(t, err)
	require.Len(t, page1, 3)
	assert.Equal(t, "post 6", page1[0].Text)
	assert.Equal(t, "post 5", page1[1].Text)
	assert.Equal(t, "post 4", page1[2].Text)

	page2, err := repo.List(ctx, 3, 3)
	require.NoError(t, err)
	require.Len(t, page2, 3)
	assert.Equal(t, "post 3", page2[0].Text)

	page3, err := repo.List(ctx, 3, 6)
	require.NoError(t, err)
	require.Len(t, page3, 1)
	assert.Equal(t, "post 0", page3[0].Text)

	// Same inputs, same page.
	again, err := repo.List(ctx, 3, 3)
	require.NoError(t, err)
	require.Len(t, again, 3)
	for i := range page2 {
		assert.Equal(t, page2[i].ID, again[i].ID)
	}
}

func TestPostRepository_GetByIDLoadsAssociations(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	fan := seedUser(t, db, "fan")
	post := seedPost(t, db, author.ID, "deadlifts", time.Now())

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&models.Comment{
			Text:      fmt.Sprintf("comment %d", i),
			UserID:    fan.ID,
			PostID:    post.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}).Error)
	}
	require.NoError(t, repo.Like(ctx, fan.ID, post.ID))

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "author", got.User.Username)
	require.Len(t, got.Likes, 1)
	assert.Equal(t, "fan", got.Likes[0].User.Username)
	require.Len(t, got.Comments, 3)
	// Newest first.
	assert.Equal(t, "comment 2", got.Comments[0].Text)
	assert.Equal(t, "fan", got.Comments[0].User.Username)
}

func TestPostRepository_DeleteCascade(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	fan := seedUser(t, db, "fan")
	post := seedPost(t, db, author.ID, "squats", time.Now())
	keep := seedPost(t, db, author.ID, "bench", time.Now())

	require.NoError(t, db.Create(&models.Comment{Text: "depth!", UserID: fan.ID, PostID: post.ID}).Error)
	require.NoError(t, db.Create(&models.Comment{Text: "arch!", UserID: fan.ID, PostID: keep.ID}).Error)
	require.NoError(t, repo.Like(ctx, fan.ID, post.ID))
	require.NoError(t, repo.Like(ctx, fan.ID, keep.ID))

	require.NoError(t, repo.DeleteCascade(ctx, post.ID))

	assert.Zero(t, countRows(t, db, &models.Post{}, "id = ?", post.ID))
	assert.Zero(t, countRows(t, db, &models.Comment{}, "post_id = ?", post.ID))
	assert.Zero(t, countRows(t, db, &models.Like{}, "post_id = ?", post.ID))

	assert.Equal(t, int64(1), countRows(t, db, &models.Comment{}, "post_id = ?", keep.ID))
	assert.Equal(t, int64(1), countRows(t, db, &models.Like{}, "post_id = ?", keep.ID))
}

func TestPostRepository_GetByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	mine := seedUser(t, db, "mine")
	theirs := seedUser(t, db, "theirs")
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seedPost(t, db, mine.ID, "mine 0", base)
	seedPost(t, db, mine.ID, "mine 1", base.Add(time.Hour))
	seedPost(t, db, theirs.ID, "theirs 0", base.Add(2*time.Hour))

	got, err := repo.GetByUserID(ctx, mine.ID, 3, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "mine 1", got[0].Text)
	assert.Equal(t, "mine 0", got[1].Text)
}
