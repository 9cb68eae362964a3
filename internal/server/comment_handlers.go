package server

import (
	"fitbuddy/internal/models"
	"fitbuddy/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /api/v1/comments/:postId
func (s *Server) CreateComment(c *fiber.Ctx) error {
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

	comment, err := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		UserID: s.currentUserID(c),
		PostID: postID,
		Text:   req.Text,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"comment": comment,
		"message": "Comment created successfully!",
	})
}

// GetComments handles GET /api/v1/comments/:postId
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListComments(c.Context(), postID)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"comments": comments,
	})
}

// EditComment handles PATCH /api/v1/comments/:commentId
func (s *Server) EditComment(c *fiber.Ctx) error {
	commentID, err := s.parseID(c, "commentId")
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

	comment, err := s.commentService.UpdateComment(c.Context(), service.UpdateCommentInput{
		UserID:    s.currentUserID(c),
		CommentID: commentID,
		Text:      req.Text,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"comment": comment,
		"message": "Comment updated successfully!",
	})
}

// DeleteComment handles DELETE /api/v1/comments/:commentId
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(c.Context(), s.currentUserID(c), commentID); err != nil {
		return models.RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Comment deleted successfully!",
	})
}
