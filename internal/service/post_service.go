package service

import (
	"context"
	"errors"

	"fitbuddy/internal/models"
	"fitbuddy/internal/repository"
	"fitbuddy/internal/validation"

	"gorm.io/gorm"
)

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

type CreatePostInput struct {
	UserID uint
	Text   string
}

type UpdatePostInput struct {
	UserID uint
	PostID uint
	Text   string
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*PostView, error) {
	if err := validation.ValidatePostText(in.Text); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	post := &models.Post{
		Text:   in.Text,
		UserID: in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.GetPost(ctx, post.ID)
}

// ListPosts returns one feed page, newest first. Pages are 1-based and hold
// PageSize posts each.
func (s *PostService) ListPosts(ctx context.Context, page int) ([]*PostView, error) {
	posts, err := s.postRepo.List(ctx, PageSize, pageOffset(page))
	if err != nil {
		return nil, err
	}
	return NewPostViews(posts), nil
}

// ListUserPosts returns one page of a single user's posts, newest first.
func (s *PostService) ListUserPosts(ctx context.Context, userID uint, page int) ([]*PostView, error) {
	posts, err := s.postRepo.GetByUserID(ctx, userID, PageSize, pageOffset(page))
	if err != nil {
		return nil, err
	}
	return NewPostViews(posts), nil
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*PostView, error) {
	post, err := s.getPost(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewPostView(post), nil
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*PostView, error) {
	post, err := s.getPost(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if err := requireOwnership(post.UserID, in.UserID, "You can only edit your own posts"); err != nil {
		return nil, err
	}
	if err := validation.ValidatePostText(in.Text); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	post.Text = in.Text
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.GetPost(ctx, in.PostID)
}

// DeletePost removes the post with its comments and likes. Only the owner
// may delete it.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return err
	}
	if err := requireOwnership(post.UserID, userID, "You can only delete your own posts"); err != nil {
		return err
	}
	return s.postRepo.DeleteCascade(ctx, postID)
}

// ToggleLike flips the caller's like on a post and reports the new state.
// The repository insert is idempotent, so two concurrent likes by the same
// user still leave exactly one row.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID uint) (bool, error) {
	if _, err := s.getPost(ctx, postID); err != nil {
		return false, err
	}

	liked, err := s.postRepo.IsLiked(ctx, userID, postID)
	if err != nil {
		return false, err
	}
	if liked {
		if err := s.postRepo.Unlike(ctx, userID, postID); err != nil {
			return false, err
		}
		return false, nil
	}
	// A token can outlive its account, so the like must not insert a
	// user_id that no longer exists.
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, models.NewNotFoundError("User", userID)
		}
		return false, err
	}
	if err := s.postRepo.Like(ctx, userID, postID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *PostService) getPost(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, err
	}
	return post, nil
}

func pageOffset(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * PageSize
}
