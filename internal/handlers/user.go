package handlers

import (
	"net/http"
	"strconv"

	"github.com/chabeb/social-network/backend/internal/apperrors"
	"github.com/chabeb/social-network/backend/internal/middleware"
	"github.com/chabeb/social-network/backend/internal/models"
	"github.com/chabeb/social-network/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

const defaultRandomUsersSize = 5

// UserHandler handles HTTP requests related to user profiles
type UserHandler struct {
	userRepository repositories.UserRepository
	profanity      ProfanityFilter
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, filter ProfanityFilter) *UserHandler {
	return &UserHandler{userRepository: userRepo, profanity: filter}
}

// RegisterUserRoutes registers user profile routes. Routes with static
// prefixes must coexist with /:username, which echo resolves by giving
// static segments priority.
func (h *UserHandler) RegisterUserRoutes(g *echo.Group, auth echo.MiddlewareFunc) {
	g.GET("/random", h.GetRandomUsers)
	g.GET("/:username", h.GetUserByUsername)
	g.PATCH("/:id", h.UpdateUser, auth)
}

// GetRandomUsers returns up to size randomly picked users
func (h *UserHandler) GetRandomUsers(c echo.Context) error {
	size := defaultRandomUsersSize
	if s := c.QueryParam("size"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil || parsed < 1 {
			return httpError(apperrors.Validation("size must be a positive integer"))
		}
		size = parsed
	}

	users, err := h.userRepository.GetRandomUsers(size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// GetUserByUsername retrieves a user's public profile by username
func (h *UserHandler) GetUserByUsername(c echo.Context) error {
	user, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateUser updates a user record. Only the acting user may update their
// own record. A changed username goes through the same pipeline as
// registration; a biography is cleaned rather than rejected.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	currentUserID := middleware.CurrentUserID(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return httpError(apperrors.Validation("invalid user ID"))
	}
	if uint(id) != currentUserID {
		return httpError(apperrors.Forbidden("cannot update another user's profile"))
	}

	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return httpError(err)
	}

	user, err := h.userRepository.GetUserByID(currentUserID)
	if err != nil {
		return httpError(err)
	}

	if req.Username != "" && req.Username != user.Username {
		if _, err := h.userRepository.GetUserByUsername(req.Username); err == nil {
			return httpError(apperrors.Duplicate("username already taken"))
		}
		if h.profanity.IsProfane(req.Username) {
			return httpError(apperrors.Validation("username cannot contain bad words"))
		}
		user.Username = req.Username
	}
	if req.Email != "" && req.Email != user.Email {
		if _, err := h.userRepository.GetUserByEmail(req.Email); err == nil {
			return httpError(apperrors.Duplicate("email already in use"))
		}
		user.Email = req.Email
	}
	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
		}
		user.Password = string(hashedPassword)
	}
	if req.Biography != "" {
		// Banned terms in a biography are replaced, not rejected
		user.Biography = h.profanity.Clean(req.Biography)
	}

	if err := h.userRepository.UpdateUser(user); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, user)
}
