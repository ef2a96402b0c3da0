package models

import (
	"time"
)

// ExerciseLog represents the exercise_logs table.
type ExerciseLog struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	LogDate        string    `json:"log_date"`
	Jenis          string    `json:"jenis"`
	DurasiMenit    int       `json:"durasi_menit"`
	KaloriTerbakar int       `json:"kalori_terbakar"`
	Catatan        *string   `json:"catatan"`
	CreatedAt      time.Time `json:"created_at"`
}
