package repositories

import (
	"context"
	"time"

	"github.com/chabeb/social-network/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MessageRepository defines the interface for direct message data operations
type MessageRepository interface {
	CreateMessage(ctx context.Context, message *models.Message) error
	GetMessagesByConversation(ctx context.Context, conversationID string) ([]models.Message, error)
	GetConversations(ctx context.Context, userID uint) ([]models.ConversationSummary, error)
}

// MongoMessageRepository implements MessageRepository for MongoDB
type MongoMessageRepository struct {
	collection *mongo.Collection
}

// NewMongoMessageRepository creates a new MongoMessageRepository
func NewMongoMessageRepository(db *mongo.Database) *MongoMessageRepository {
	return &MongoMessageRepository{collection: db.Collection("messages")}
}

// CreateMessage stores a new direct message in MongoDB
func (r *MongoMessageRepository) CreateMessage(ctx context.Context, message *models.Message) error {
	message.ID = primitive.NewObjectID()
	message.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, message)
	return err
}

// GetMessagesByConversation retrieves every message of a conversation in
// chronological order.
func (r *MongoMessageRepository) GetMessagesByConversation(ctx context.Context, conversationID string) ([]models.Message, error) {
	var messages []models.Message
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"conversation_id": conversationID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// GetConversations lists the user's conversations, most recent message first.
// Messages come back newest first, so the first message seen per conversation
// key is its latest.
func (r *MongoMessageRepository) GetConversations(ctx context.Context, userID uint) ([]models.ConversationSummary, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"sender_id": userID},
		bson.M{"recipient_id": userID},
	}}
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	summaries := []models.ConversationSummary{}
	seen := make(map[string]bool)
	for cursor.Next(ctx) {
		var msg models.Message
		if err := cursor.Decode(&msg); err != nil {
			return nil, err
		}
		if seen[msg.ConversationID] {
			continue
		}
		seen[msg.ConversationID] = true

		peerID := msg.SenderID
		if peerID == userID {
			peerID = msg.RecipientID
		}
		summaries = append(summaries, models.ConversationSummary{PeerID: peerID, LastMessage: msg})
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return summaries, nil
}
