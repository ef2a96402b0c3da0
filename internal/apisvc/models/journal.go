package models

import (
	"time"
)

// Journal represents the journals table.
type Journal struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Judul     string    `json:"judul"`
	Isi       string    `json:"isi"`
	Mood      *string   `json:"mood"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
