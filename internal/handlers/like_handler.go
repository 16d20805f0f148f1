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

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeRepository repositories.LikeRepository
	postRepository repositories.PostRepository // To verify posts and update like counts
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, postRepo repositories.PostRepository) *LikeHandler {
	return &LikeHandler{
		likeRepository: likeRepo,
		postRepository: postRepo,
	}
}

// RegisterLikeRoutes registers like-related routes on the posts group
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group, auth echo.MiddlewareFunc) {
	g.POST("/like/:id", h.LikePost, auth)
	g.DELETE("/like/:id", h.UnlikePost, auth)
	g.GET("/liked/:id", h.GetUserLikedPosts)
	g.GET("/like/:postId/users", h.GetUsersWhoLiked)
}

// LikePost handles liking a post
func (h *LikeHandler) LikePost(c echo.Context) error {
	currentUserID := middleware.CurrentUserID(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	postID := c.Param("id")

	// Liking requires the post to exist
	if _, err := h.postRepository.GetPostByID(c.Request().Context(), postID); err != nil {
		return httpError(err)
	}

	// Pre-check gives the friendly error; the unique index catches races.
	hasLiked, err := h.likeRepository.HasUserLikedPost(postID, currentUserID)
	if err != nil {
		return httpError(err)
	}
	if hasLiked {
		return httpError(apperrors.Duplicate("post already liked by this user"))
	}

	like := &models.Like{
		PostID: postID,
		UserID: currentUserID,
	}

	if err := h.likeRepository.CreateLike(like); err != nil {
		return httpError(err)
	}

	// Denormalized counter update is best-effort
	if err := h.postRepository.IncrementLikesCount(c.Request().Context(), postID, 1); err != nil {
		log.Printf("failed to increment likes count for post %s: %v", postID, err)
	}

	return c.JSON(http.StatusCreated, like)
}

// UnlikePost handles unliking a post
func (h *LikeHandler) UnlikePost(c echo.Context) error {
	currentUserID := middleware.CurrentUserID(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	postID := c.Param("id")

	if _, err := h.postRepository.GetPostByID(c.Request().Context(), postID); err != nil {
		return httpError(err)
	}

	if err := h.likeRepository.DeleteLike(postID, currentUserID); err != nil {
		return httpError(err)
	}

	if err := h.postRepository.IncrementLikesCount(c.Request().Context(), postID, -1); err != nil {
		log.Printf("failed to decrement likes count for post %s: %v", postID, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetUserLikedPosts lists the posts a user has liked
func (h *LikeHandler) GetUserLikedPosts(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return httpError(apperrors.Validation("invalid user ID"))
	}

	postIDs, err := h.likeRepository.GetLikedPostIDs(uint(userID))
	if err != nil {
		return httpError(err)
	}

	posts, err := h.postRepository.GetPostsByIDs(c.Request().Context(), postIDs)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, posts)
}

// GetUsersWhoLiked lists the users who liked a post
func (h *LikeHandler) GetUsersWhoLiked(c echo.Context) error {
	postID := c.Param("postId")

	if _, err := h.postRepository.GetPostByID(c.Request().Context(), postID); err != nil {
		return httpError(err)
	}

	users, err := h.likeRepository.GetUsersWhoLiked(postID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, users)
}
