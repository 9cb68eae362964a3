package repository

import (
	"context"
	"testing"
	"time"

	"fitbuddy/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_CreateAndListByPost(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	fan := seedUser(t, db, "fan")
	post := seedPost(t, db, author.ID, "morning run", time.Now())

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	first := &models.Comment{Text: "first", UserID: fan.ID, PostID: post.ID, CreatedAt: base}
	second := &models.Comment{Text: "second", UserID: author.ID, PostID: post.ID, CreatedAt: base.Add(time.Minute)}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	comments, err := repo.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "second", comments[0].Text)
	assert.Equal(t, "author", comments[0].User.Username)
	assert.Equal(t, "first", comments[1].Text)
}

func TestCommentRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "editor")
	post := seedPost(t, db, user.ID, "stretching", time.Now())
	comment := &models.Comment{Text: "tyop", UserID: user.ID, PostID: post.ID}
	require.NoError(t, repo.Create(ctx, comment))

	comment.Text = "typo fixed"
	require.NoError(t, repo.Update(ctx, comment))

	got, err := repo.GetByID(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "typo fixed", got.Text)
}

func TestCommentRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "deleter")
	post := seedPost(t, db, user.ID, "yoga", time.Now())
	comment := &models.Comment{Text: "namaste", UserID: user.ID, PostID: post.ID}
	require.NoError(t, repo.Create(ctx, comment))

	require.NoError(t, repo.Delete(ctx, comment.ID))
	assert.Zero(t, countRows(t, db, &models.Comment{}, "id = ?", comment.ID))

	_, err := repo.GetByID(ctx, comment.ID)
	assert.Error(t, err)
}
