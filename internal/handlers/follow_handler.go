package handlers

import (
	"net/http"
	"strconv"

	"github.com/chabeb/social-network/backend/internal/apperrors"
	"github.com/chabeb/social-network/backend/internal/middleware"
	"github.com/chabeb/social-network/backend/internal/models"
	"github.com/chabeb/social-network/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followRepository repositories.FollowRepository
	userRepository   repositories.UserRepository
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository, userRepo repositories.UserRepository) *FollowHandler {
	return &FollowHandler{
		followRepository: followRepo,
		userRepository:   userRepo,
	}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group, auth echo.MiddlewareFunc) {
	g.POST("/follow/:id", h.FollowUser, auth)
	g.DELETE("/unfollow/:id", h.UnfollowUser, auth)
	g.GET("/followers/:id", h.GetFollowers)
	g.GET("/following/:id", h.GetFollowing)
}

// FollowUser follows a user
func (h *FollowHandler) FollowUser(c echo.Context) error {
	currentUserID := middleware.CurrentUserID(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return httpError(apperrors.Validation("invalid user ID"))
	}

	// Self-follow is rejected before any store access
	if currentUserID == uint(targetID) {
		return httpError(apperrors.Validation("cannot follow yourself"))
	}

	if _, err := h.userRepository.GetUserByID(uint(targetID)); err != nil {
		return httpError(err)
	}

	// Pre-check gives the friendly error; the unique index catches races.
	isFollowing, err := h.followRepository.IsFollowing(currentUserID, uint(targetID))
	if err != nil {
		return httpError(err)
	}
	if isFollowing {
		return httpError(apperrors.Duplicate("already following this user"))
	}

	follow := &models.Follow{
		FollowerID:  currentUserID,
		FollowingID: uint(targetID),
	}

	if err := h.followRepository.CreateFollow(follow); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"following": true})
}

// UnfollowUser unfollows a user
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	currentUserID := middleware.CurrentUserID(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return httpError(apperrors.Validation("invalid user ID"))
	}

	if err := h.followRepository.DeleteFollow(currentUserID, uint(targetID)); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"following": false})
}

// GetFollowers lists the users following the given user
func (h *FollowHandler) GetFollowers(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return httpError(apperrors.Validation("invalid user ID"))
	}

	users, err := h.followRepository.GetFollowers(uint(userID))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// GetFollowing lists the users the given user follows
func (h *FollowHandler) GetFollowing(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return httpError(apperrors.Validation("invalid user ID"))
	}

	users, err := h.followRepository.GetFollowing(uint(userID))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}
