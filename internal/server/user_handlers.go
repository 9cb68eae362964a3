package server

import (
	"io"

	"fitbuddy/internal/middleware"
	"fitbuddy/internal/models"
	"fitbuddy/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetUser handles GET /api/v1/users/:userId
func (s *Server) GetUser(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUser(c.Context(), userID)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user": user.Summary(),
	})
}

// EditUser handles PATCH /api/v1/users
func (s *Server) EditUser(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.EditUser(c.Context(), service.EditUserInput{
		UserID:   s.currentUserID(c),
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	// The token carries the username, so changing it needs a fresh token.
	token, err := s.generateToken(user.ID, user.Username)
	if err != nil {
		return models.RespondError(c, models.NewInternalError(err))
	}
	s.attachTokenCookie(c, token)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":    user,
		"token":   token,
		"message": "User updated successfully!",
	})
}

// DeleteUser handles DELETE /api/v1/users. The account, its profile, posts,
// comments and likes all go away together.
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	if err := s.userService.DeleteUser(c.Context(), s.currentUserID(c)); err != nil {
		return models.RespondError(c, err)
	}

	middleware.ClearSessionCookie(c)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Account deleted successfully!",
	})
}

// AddUserImage handles POST /api/v1/users/image (multipart avatar upload)
func (s *Server) AddUserImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Image file is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Could not read uploaded file"))
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	user, err := s.userService.AddUserImage(c.Context(), s.currentUserID(c),
		data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":    user,
		"message": "Image uploaded successfully!",
	})
}

// DeleteUserImage handles DELETE /api/v1/users/image
func (s *Server) DeleteUserImage(c *fiber.Ctx) error {
	user, err := s.userService.DeleteUserImage(c.Context(), s.currentUserID(c))
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":    user,
		"message": "Image deleted successfully!",
	})
}
