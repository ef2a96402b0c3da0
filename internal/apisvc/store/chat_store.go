package store

import (
	"context"
	"fmt"
	"time"

	"github.com/lifemon/lifemon-services/internal/apisvc/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const chatCollection = "chat_messages"

// ChatStore persists chat history in mongo; the relational tables never see
// chat traffic.
type ChatStore struct {
	col *mongo.Collection
}

func NewChatStore(db *mongo.Database) *ChatStore {
	return &ChatStore{col: db.Collection(chatCollection)}
}

func (s *ChatStore) Insert(ctx context.Context, msg *models.ChatMessage) error {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}

	_, err := s.col.InsertOne(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to insert chat message: %w", err)
	}
	return nil
}

// ListByRoom returns up to limit messages for a room, oldest first.
func (s *ChatStore) ListByRoom(ctx context.Context, room string, limit int64) ([]*models.ChatMessage, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cur, err := s.col.Find(ctx, bson.M{"room": room}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat messages: %w", err)
	}
	defer cur.Close(ctx)

	var msgs []*models.ChatMessage
	if err := cur.All(ctx, &msgs); err != nil {
		return nil, fmt.Errorf("failed to decode chat messages: %w", err)
	}

	// mongo gave us newest first, flip to chronological order
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}

	return msgs, nil
}
