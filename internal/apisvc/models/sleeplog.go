package models

import (
	"time"
)

// SleepLog represents the sleep_logs table. One row per user per log_date.
type SleepLog struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	LogDate     string    `json:"log_date"`
	JamTidur    string    `json:"jam_tidur"`
	JamBangun   string    `json:"jam_bangun"`
	DurasiMenit int       `json:"durasi_menit"`
	Kualitas    int       `json:"kualitas"`
	Catatan     *string   `json:"catatan"`
	CreatedAt   time.Time `json:"created_at"`
}
