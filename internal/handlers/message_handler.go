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

// MessageHandler handles direct messaging HTTP requests
type MessageHandler struct {
	messageRepository repositories.MessageRepository
	userRepository    repositories.UserRepository
	profanity         ProfanityFilter
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageRepo repositories.MessageRepository, userRepo repositories.UserRepository, filter ProfanityFilter) *MessageHandler {
	return &MessageHandler{
		messageRepository: messageRepo,
		userRepository:    userRepo,
		profanity:         filter,
	}
}

// RegisterMessageRoutes registers messaging routes. All of them require an
// authenticated identity.
func (h *MessageHandler) RegisterMessageRoutes(g *echo.Group) {
	g.GET("", h.GetConversations)
	g.POST("/:id", h.SendMessage)
	g.GET("/:id", h.GetMessages)
}

// GetConversations lists the acting user's conversations, most recent
// message first
func (h *MessageHandler) GetConversations(c echo.Context) error {
	currentUserID := middleware.CurrentUserID(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	summaries, err := h.messageRepository.GetConversations(c.Request().Context(), currentUserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, summaries)
}

// SendMessage sends a direct message to the peer identified by :id
func (h *MessageHandler) SendMessage(c echo.Context) error {
	currentUserID := middleware.CurrentUserID(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	peerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return httpError(apperrors.Validation("invalid user ID"))
	}

	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return httpError(err)
	}

	if _, err := h.userRepository.GetUserByID(uint(peerID)); err != nil {
		return httpError(err)
	}

	message := &models.Message{
		ConversationID: models.ConversationKey(currentUserID, uint(peerID)),
		SenderID:       currentUserID,
		RecipientID:    uint(peerID),
		Content:        h.profanity.Clean(req.Content),
	}

	if err := h.messageRepository.CreateMessage(c.Request().Context(), message); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, message)
}

// GetMessages lists the messages between the acting user and the peer
// identified by :id, chronologically. The conversation key always contains
// the acting user's own ID, so a caller can never read a conversation they
// are not a party to.
func (h *MessageHandler) GetMessages(c echo.Context) error {
	currentUserID := middleware.CurrentUserID(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	peerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return httpError(apperrors.Validation("invalid user ID"))
	}

	conversationID := models.ConversationKey(currentUserID, uint(peerID))
	messages, err := h.messageRepository.GetMessagesByConversation(c.Request().Context(), conversationID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, messages)
}
