package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message represents a direct message stored in MongoDB
type Message struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ConversationID string             `json:"conversation_id" bson:"conversation_id"`
	SenderID       uint               `json:"sender_id" bson:"sender_id"`
	RecipientID    uint               `json:"recipient_id" bson:"recipient_id"`
	Content        string             `json:"content" bson:"content"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
}

// ConversationKey builds the canonical key for the two-party conversation
// between a and b. The pair is unordered, so the lower ID always comes first.
func ConversationKey(a, b uint) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d:%d", a, b)
}

// SendMessageRequest defines the request body for sending a direct message
type SendMessageRequest struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}

// ConversationSummary is one entry of a user's conversation list,
// carrying the other party and the latest message exchanged.
type ConversationSummary struct {
	PeerID      uint    `json:"peer_id"`
	LastMessage Message `json:"last_message"`
}
