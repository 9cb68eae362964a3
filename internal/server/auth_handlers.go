package server

import (
	"fitbuddy/internal/middleware"
	"fitbuddy/internal/models"
	"fitbuddy/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /api/v1/users
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.Register(c.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	token, err := s.generateToken(user.ID, user.Username)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	s.attachTokenCookie(c, token)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":    user,
		"token":   token,
		"message": "Account created successfully!",
	})
}

// Login handles POST /api/v1/users/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.Login(c.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	token, err := s.generateToken(user.ID, user.Username)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	s.attachTokenCookie(c, token)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":    user,
		"token":   token,
		"message": "Logged in successfully!",
	})
}

// Logout handles GET /api/v1/users/logout
func (s *Server) Logout(c *fiber.Ctx) error {
	middleware.ClearSessionCookie(c)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logged out successfully!",
	})
}
