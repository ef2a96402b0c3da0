package models

import (
	"time"
)

// ChatMessage is a document in the chat_messages mongo collection.
type ChatMessage struct {
	ID         string    `json:"id" bson:"_id"`
	Room       string    `json:"room" bson:"room"`
	SenderID   int64     `json:"sender_id" bson:"sender_id"`
	SenderName string    `json:"sender_name" bson:"sender_name"`
	Text       string    `json:"text" bson:"text"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
