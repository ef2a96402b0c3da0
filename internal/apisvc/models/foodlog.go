package models

import (
	"time"
)

// Meal slots accepted for food_logs.waktu_makan.
const (
	MealSarapan    = "sarapan"
	MealMakanSiang = "makan_siang"
	MealMakanMalam = "makan_malam"
	MealCamilan    = "camilan"
)

// ValidMealTimes rejects unknown slots before the database enum does it with
// a cryptic error.
var ValidMealTimes = map[string]bool{
	MealSarapan:    true,
	MealMakanSiang: true,
	MealMakanMalam: true,
	MealCamilan:    true,
}

// FoodLog represents the food_logs table.
type FoodLog struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	LogDate     string    `json:"log_date"`
	NamaMakanan string    `json:"nama_makanan"`
	Kalori      int       `json:"kalori"`
	Porsi       *string   `json:"porsi"`
	WaktuMakan  string    `json:"waktu_makan"`
	Catatan     *string   `json:"catatan"`
	CreatedAt   time.Time `json:"created_at"`
}
