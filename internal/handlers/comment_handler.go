package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/chabeb/social-network/backend/internal/apperrors"
	"github.com/chabeb/social-network/backend/internal/middleware"
	"github.com/chabeb/social-network/backend/internal/models"
	"github.com/chabeb/social-network/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	postRepository    repositories.PostRepository // To verify posts and update comment counts
	profanity         ProfanityFilter
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository, filter ProfanityFilter) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		postRepository:    postRepo,
		profanity:         filter,
	}
}

// RegisterCommentRoutes registers comment-related routes. On POST the :id is
// the post being commented on; on PATCH/DELETE it is the comment itself.
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group, auth echo.MiddlewareFunc) {
	g.POST("/:id", h.CreateComment, auth)
	g.PATCH("/:id", h.UpdateComment, auth)
	g.DELETE("/:id", h.DeleteComment, auth)
	g.GET("/post/:id", h.GetPostComments)
	g.GET("/user/:id", h.GetUserComments)
}

// CreateComment creates a comment on a post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	currentUserID := middleware.CurrentUserID(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	postID := c.Param("id")

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return httpError(err)
	}

	// Commenting requires the post to exist
	if _, err := h.postRepository.GetPostByID(c.Request().Context(), postID); err != nil {
		return httpError(err)
	}

	comment := &models.Comment{
		PostID:  postID,
		UserID:  currentUserID,
		Content: h.profanity.Clean(req.Content),
	}

	if err := h.commentRepository.CreateComment(comment); err != nil {
		return httpError(err)
	}

	// Denormalized counter update is best-effort
	if err := h.postRepository.IncrementCommentsCount(c.Request().Context(), postID, 1); err != nil {
		log.Printf("failed to increment comments count for post %s: %v", postID, err)
	}

	return c.JSON(http.StatusCreated, comment)
}

// UpdateComment updates a comment. Only the owner may mutate it.
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	currentUserID := middleware.CurrentUserID(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	commentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return httpError(apperrors.Validation("invalid comment ID"))
	}

	// Ownership is decided before the payload is even looked at, so a
	// non-owner gets Forbidden no matter what they send.
	comment, err := h.commentRepository.GetCommentByID(uint(commentID))
	if err != nil {
		return httpError(err)
	}
	if comment.UserID != currentUserID {
		return httpError(apperrors.Forbidden("cannot modify another user's comment"))
	}

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return httpError(err)
	}

	comment.Content = h.profanity.Clean(req.Content)

	if err := h.commentRepository.UpdateComment(comment); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, comment)
}

// DeleteComment deletes a comment. Only the owner may delete it.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	currentUserID := middleware.CurrentUserID(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	commentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return httpError(apperrors.Validation("invalid comment ID"))
	}

	comment, err := h.commentRepository.GetCommentByID(uint(commentID))
	if err != nil {
		return httpError(err)
	}
	if comment.UserID != currentUserID {
		return httpError(apperrors.Forbidden("cannot delete another user's comment"))
	}

	if err := h.commentRepository.DeleteComment(uint(commentID)); err != nil {
		return httpError(err)
	}

	if err := h.postRepository.IncrementCommentsCount(c.Request().Context(), comment.PostID, -1); err != nil {
		log.Printf("failed to decrement comments count for post %s: %v", comment.PostID, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetPostComments lists the comments on a post, oldest first
func (h *CommentHandler) GetPostComments(c echo.Context) error {
	comments, err := h.commentRepository.GetCommentsByPostID(c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, comments)
}

// GetUserComments lists a user's comments, newest first
func (h *CommentHandler) GetUserComments(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return httpError(apperrors.Validation("invalid user ID"))
	}

	comments, err := h.commentRepository.GetCommentsByUserID(uint(userID))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, comments)
}
