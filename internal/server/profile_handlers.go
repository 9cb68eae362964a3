package server

import (
	"fitbuddy/internal/models"
	"fitbuddy/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetAllProfiles handles GET /api/v1/profiles
func (s *Server) GetAllProfiles(c *fiber.Ctx) error {
	profiles, err := s.profileService.GetAllProfiles(c.Context())
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"profiles": profiles,
	})
}

// SearchProfiles handles GET /api/v1/profiles/search?q=
func (s *Server) SearchProfiles(c *fiber.Ctx) error {
	profiles, err := s.profileService.SearchProfiles(c.Context(), c.Query("q"))
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"profiles": profiles,
	})
}

// GetProfile handles GET /api/v1/profiles/:userId
func (s *Server) GetProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.GetProfile(c.Context(), userID)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"profile": profile,
	})
}

// EditProfile handles PATCH /api/v1/profiles (own profile only)
func (s *Server) EditProfile(c *fiber.Ctx) error {
	var req struct {
		Bio           *string `json:"bio"`
		Profession    *string `json:"profession"`
		Education     *string `json:"education"`
		BirthDate     *string `json:"birthDate"`
		Residence     *string `json:"residence"`
		FavoriteSport *string `json:"favoriteSport"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.EditProfile(c.Context(), service.EditProfileInput{
		UserID:        s.currentUserID(c),
		Bio:           req.Bio,
		Profession:    req.Profession,
		Education:     req.Education,
		BirthDate:     req.BirthDate,
		Residence:     req.Residence,
		FavoriteSport: req.FavoriteSport,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"profile": profile,
		"message": "Profile updated successfully!",
	})
}

// DeleteProfileDetail handles DELETE /api/v1/profiles/detail
func (s *Server) DeleteProfileDetail(c *fiber.Ctx) error {
	var req struct {
		Detail string `json:"detail"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.DeleteProfileDetail(c.Context(), s.currentUserID(c), req.Detail)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"profile": profile,
		"message": "Profile detail removed successfully!",
	})
}
