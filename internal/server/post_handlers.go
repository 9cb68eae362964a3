package server

import (
	"fitbuddy/internal/models"
	"fitbuddy/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/v1/posts?page=N
func (s *Server) GetPosts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	posts, err := s.postService.ListPosts(c.Context(), page)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"posts": posts,
	})
}

// GetUserPosts handles GET /api/v1/posts/user/:userId?page=N
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	page := c.QueryInt("page", 1)

	posts, err := s.postService.ListUserPosts(c.Context(), userID, page)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"posts": posts,
	})
}

// GetPost handles GET /api/v1/posts/:postId
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), postID)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"post": post,
	})
}

// CreatePost handles POST /api/v1/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		UserID: s.currentUserID(c),
		Text:   req.Text,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"post":    post,
		"message": "Post created successfully!",
	})
}

// EditPost handles PATCH /api/v1/posts/:postId
func (s *Server) EditPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		UserID: s.currentUserID(c),
		PostID: postID,
		Text:   req.Text,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"post":    post,
		"message": "Post updated successfully!",
	})
}

// DeletePost handles DELETE /api/v1/posts/:postId
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), s.currentUserID(c), postID); err != nil {
		return models.RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Post deleted successfully!",
	})
}

// ToggleLike handles PATCH /api/v1/posts/:postId/like
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	liked, err := s.postService.ToggleLike(c.Context(), s.currentUserID(c), postID)
	if err != nil {
		return models.RespondError(c, err)
	}

	post, err := s.postService.GetPost(c.Context(), postID)
	if err != nil {
		return models.RespondError(c, err)
	}

	message := "Post unliked!"
	if liked {
		message = "Post liked!"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"post":    post,
		"liked":   liked,
		"message": message,
	})
}
