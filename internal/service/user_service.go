package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fitbuddy/internal/models"
	"fitbuddy/internal/repository"
	"fitbuddy/internal/storage"
	"fitbuddy/internal/validation"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	userRepo repository.UserRepository
	blobs    storage.BlobStore
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type EditUserInput struct {
	UserID   uint
	Username string
	Email    string
	Password string
}

func NewUserService(userRepo repository.UserRepository, blobs storage.BlobStore) *UserService {
	return &UserService{userRepo: userRepo, blobs: blobs}
}

// Register creates the user together with its empty profile. The two inserts
// share a transaction so a failure leaves neither behind.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username: strings.TrimSpace(in.Username),
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Password: string(hashed),
	}
	profile := &models.Profile{FavoriteSport: models.SportGeneral}

	if err := s.userRepo.CreateWithProfile(ctx, user, profile); err != nil {
		if isDuplicateKey(err) {
			return nil, models.NewConflictError("Email already in used!")
		}
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and returns the user on success.
func (s *UserService) Login(ctx context.Context, in LoginInput) (*models.User, error) {
	if in.Email == "" || in.Password == "" {
		return nil, models.NewValidationError("Email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewUnauthorizedError("Invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid email or password")
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) EditUser(ctx context.Context, in EditUserInput) (*models.User, error) {
	user, err := s.GetUser(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Username != "" {
		if err := validation.ValidateUsername(in.Username); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Username = strings.TrimSpace(in.Username)
	}
	if in.Email != "" {
		if err := validation.ValidateEmail(in.Email); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Email = strings.ToLower(strings.TrimSpace(in.Email))
	}
	if in.Password != "" {
		if err := validation.ValidatePassword(in.Password); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		user.Password = string(hash)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if isDuplicateKey(err) {
			return nil, models.NewConflictError("Email already in used!")
		}
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the user and everything reachable from it: likes on any
// post, comments, owned posts with their interactions, the profile, and the
// avatar blob.
func (s *UserService) DeleteUser(ctx context.Context, userID uint) error {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.userRepo.DeleteCascade(ctx, userID); err != nil {
		return err
	}

	if user.ImageURL != "" && s.blobs != nil {
		// Blob cleanup is best-effort once the rows are gone.
		_ = s.blobs.Delete(ctx, avatarKey(userID))
	}
	return nil
}

// AddUserImage stores the avatar in the blob store first and only then
// persists the URL, so the database never points at bytes that do not exist.
func (s *UserService) AddUserImage(ctx context.Context, userID uint, data []byte, contentType string) (*models.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, models.NewValidationError("Image file is required")
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, models.NewValidationError("Only image uploads are allowed")
	}

	url, err := s.blobs.Put(ctx, avatarKey(userID), data, contentType)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user.ImageURL = url
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	_ = s.blobs.Invalidate(ctx, avatarKey(userID))
	return user, nil
}

// DeleteUserImage removes the blob and invalidates its CDN key before
// unsetting the URL, so a failed blob delete never leaves a URL pointing at
// bytes that are still served.
func (s *UserService) DeleteUserImage(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.ImageURL == "" {
		return user, nil
	}

	if err := s.blobs.Delete(ctx, avatarKey(userID)); err != nil {
		return nil, models.NewInternalError(err)
	}
	_ = s.blobs.Invalidate(ctx, avatarKey(userID))

	user.ImageURL = ""
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func avatarKey(userID uint) string {
	return fmt.Sprintf("avatars/%d", userID)
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
