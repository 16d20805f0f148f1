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

const defaultPostPageSize = 20

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository    repositories.PostRepository
	followRepository  repositories.FollowRepository
	likeRepository    repositories.LikeRepository
	commentRepository repositories.CommentRepository
	profanity         ProfanityFilter
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(
	postRepo repositories.PostRepository,
	followRepo repositories.FollowRepository,
	likeRepo repositories.LikeRepository,
	commentRepo repositories.CommentRepository,
	filter ProfanityFilter,
) *PostHandler {
	return &PostHandler{
		postRepository:    postRepo,
		followRepository:  followRepo,
		likeRepository:    likeRepo,
		commentRepository: commentRepo,
		profanity:         filter,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group, auth, optionalAuth echo.MiddlewareFunc) {
	g.GET("", h.GetPosts, optionalAuth)
	g.POST("", h.CreatePost, auth)
	g.GET("/:id", h.GetPost, optionalAuth)
	g.PATCH("/:id", h.UpdatePost, auth)
	g.DELETE("/:id", h.DeletePost, auth)
}

// GetPosts lists posts, newest first. Anonymous callers get the global
// timeline; authenticated callers can scope to followed users with
// ?feed=followed and get the liked flag filled in either way.
func (h *PostHandler) GetPosts(c echo.Context) error {
	currentUserID := middleware.CurrentUserID(c)
	skip, limit := pagination(c)

	var posts []models.Post
	var err error
	if currentUserID != 0 && c.QueryParam("feed") == "followed" {
		followingIDs, ferr := h.followRepository.GetFollowingIDs(currentUserID)
		if ferr != nil {
			return httpError(ferr)
		}
		posts, err = h.postRepository.GetPostsByUserIDs(c.Request().Context(), followingIDs, skip, limit)
	} else {
		posts, err = h.postRepository.GetAllPosts(c.Request().Context(), skip, limit)
	}
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, h.enrich(currentUserID, posts))
}

// GetPost retrieves a single post
func (h *PostHandler) GetPost(c echo.Context) error {
	currentUserID := middleware.CurrentUserID(c)

	post, err := h.postRepository.GetPostByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	enriched := h.enrich(currentUserID, []models.Post{*post})
	return c.JSON(http.StatusOK, enriched[0])
}

// CreatePost creates a new post owned by the acting user
func (h *PostHandler) CreatePost(c echo.Context) error {
	currentUserID := middleware.CurrentUserID(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return httpError(err)
	}

	post := &models.Post{
		UserID:  currentUserID,
		Title:   req.Title,
		Content: h.profanity.Clean(req.Content),
	}

	if err := h.postRepository.CreatePost(c.Request().Context(), post); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, post)
}

// UpdatePost updates a post. Only the owner may mutate it.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	currentUserID := middleware.CurrentUserID(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	// Ownership is decided before the payload is even looked at, so a
	// non-owner gets Forbidden no matter what they send.
	postID := c.Param("id")
	post, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		return httpError(err)
	}
	if post.UserID != currentUserID {
		return httpError(apperrors.Forbidden("cannot modify another user's post"))
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return httpError(err)
	}

	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Content != "" {
		post.Content = h.profanity.Clean(req.Content)
	}

	if err := h.postRepository.UpdatePost(c.Request().Context(), postID, post); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, post)
}

// DeletePost deletes a post and cascades to its likes and comments. The two
// stores share no transaction, so the cascade runs as sequential best-effort
// steps: a failure is logged and the remaining steps still run.
func (h *PostHandler) DeletePost(c echo.Context) error {
	currentUserID := middleware.CurrentUserID(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID := c.Param("id")
	post, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		return httpError(err)
	}
	if post.UserID != currentUserID {
		return httpError(apperrors.Forbidden("cannot delete another user's post"))
	}

	if err := h.postRepository.DeletePost(c.Request().Context(), postID); err != nil {
		return httpError(err)
	}

	if err := h.likeRepository.DeleteLikesForPost(postID); err != nil {
		log.Printf("cascade: failed to delete likes for post %s: %v", postID, err)
	}
	if err := h.commentRepository.DeleteCommentsForPost(postID); err != nil {
		log.Printf("cascade: failed to delete comments for post %s: %v", postID, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// enrich attaches the liked flag for the acting user, when there is one.
func (h *PostHandler) enrich(currentUserID uint, posts []models.Post) []models.EnrichedPost {
	liked := make(map[string]bool)
	if currentUserID != 0 {
		likedIDs, err := h.likeRepository.GetLikedPostIDs(currentUserID)
		if err != nil {
			log.Printf("failed to load liked posts for user %d: %v", currentUserID, err)
		}
		for _, id := range likedIDs {
			liked[id] = true
		}
	}

	enriched := make([]models.EnrichedPost, 0, len(posts))
	for _, post := range posts {
		enriched = append(enriched, models.EnrichedPost{
			Post:    post,
			IsLiked: liked[post.ID.Hex()],
		})
	}
	return enriched
}

func pagination(c echo.Context) (skip, limit int64) {
	limit = defaultPostPageSize
	if l := c.QueryParam("limit"); l != "" {
		if parsed, err := strconv.ParseInt(l, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if p := c.QueryParam("page"); p != "" {
		if parsed, err := strconv.ParseInt(p, 10, 64); err == nil && parsed > 1 {
			skip = (parsed - 1) * limit
		}
	}
	return skip, limit
}
