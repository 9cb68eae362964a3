package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"fitbuddy/internal/models"
	"fitbuddy/internal/repository"

	"gorm.io/gorm"
)

type ProfileService struct {
	profileRepo repository.ProfileRepository
}

type EditProfileInput struct {
	UserID        uint
	Bio           *string
	Profession    *string
	Education     *string
	BirthDate     *string // ISO 8601 date, e.g. "1994-02-17"
	Residence     *string
	FavoriteSport *string
}

// detailColumns maps API detail names to profile columns for DeleteProfileDetail.
// Only optional free-form fields are clearable.
var detailColumns = map[string]string{
	"bio":        "bio",
	"profession": "profession",
	"education":  "education",
	"birthDate":  "birth_date",
	"residence":  "residence",
}

func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

func (s *ProfileService) GetAllProfiles(ctx context.Context) ([]*ProfileView, error) {
	profiles, err := s.profileRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return NewProfileViews(profiles), nil
}

// SearchProfiles finds profiles whose username contains the query,
// case-insensitively.
func (s *ProfileService) SearchProfiles(ctx context.Context, username string) ([]*ProfileView, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, models.NewValidationError("Search query is required!")
	}
	profiles, err := s.profileRepo.Search(ctx, username)
	if err != nil {
		return nil, err
	}
	return NewProfileViews(profiles), nil
}

func (s *ProfileService) GetProfile(ctx context.Context, userID uint) (*ProfileView, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Profile", userID)
		}
		return nil, err
	}
	return NewProfileView(profile), nil
}

// EditProfile applies the provided fields to the caller's own profile. Nil
// fields are left untouched.
func (s *ProfileService) EditProfile(ctx context.Context, in EditProfileInput) (*ProfileView, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Profile", in.UserID)
		}
		return nil, err
	}

	if in.Bio != nil {
		profile.Bio = *in.Bio
	}
	if in.Profession != nil {
		profile.Profession = *in.Profession
	}
	if in.Education != nil {
		profile.Education = *in.Education
	}
	if in.Residence != nil {
		profile.Residence = *in.Residence
	}
	if in.BirthDate != nil {
		if *in.BirthDate == "" {
			profile.BirthDate = nil
		} else {
			parsed, err := time.Parse("2006-01-02", *in.BirthDate)
			if err != nil {
				return nil, models.NewValidationError("Birth date must be a valid YYYY-MM-DD date")
			}
			profile.BirthDate = &parsed
		}
	}
	if in.FavoriteSport != nil {
		sport := *in.FavoriteSport
		if !models.IsValidSport(sport) {
			return nil, models.NewValidationError("Favorite sport must be one of: aerobic, bodybuilding, powerlifting, crossfit, general")
		}
		profile.FavoriteSport = sport
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, in.UserID)
}

func detailIsSet(view *ProfileView, detail string) bool {
	switch detail {
	case "bio":
		return view.Bio != ""
	case "profession":
		return view.Profession != ""
	case "education":
		return view.Education != ""
	case "birthDate":
		return view.BirthDate != ""
	case "residence":
		return view.Residence != ""
	}
	return false
}

// DeleteProfileDetail clears a single optional field on the caller's profile.
func (s *ProfileService) DeleteProfileDetail(ctx context.Context, userID uint, detail string) (*ProfileView, error) {
	column, ok := detailColumns[detail]
	if !ok {
		return nil, models.NewValidationError("Unknown profile detail: " + detail)
	}

	view, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !detailIsSet(view, detail) {
		return nil, models.NewNotFoundError("profile detail", detail)
	}

	if err := s.profileRepo.UnsetDetail(ctx, userID, column); err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}
