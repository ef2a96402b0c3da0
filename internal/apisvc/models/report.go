package models

// DailyReport aggregates one day of logs for a user.
type DailyReport struct {
	Date            string `json:"date"`
	KaloriMasuk     int    `json:"kalori_masuk"`
	KaloriTerbakar  int    `json:"kalori_terbakar"`
	KaloriBersih    int    `json:"kalori_bersih"`
	MenitTidur      int    `json:"menit_tidur"`
	MenitOlahraga   int    `json:"menit_olahraga"`
	JumlahMakanan   int    `json:"jumlah_makanan"`
	JumlahOlahraga  int    `json:"jumlah_olahraga"`
	SudahCatatTidur bool   `json:"sudah_catat_tidur"`
}

// WeeklyReport is a fixed Monday..Sunday window, zero filled for days with
// no data, plus the BMI computed from the caller's profile when height and
// weight are present.
type WeeklyReport struct {
	WeekStart string        `json:"week_start"`
	WeekEnd   string        `json:"week_end"`
	Days      []DailyReport `json:"days"`
	BMI       *string       `json:"bmi"`
}

// AdminStats is the admin dashboard counters block.
type AdminStats struct {
	TotalUsers        int64 `json:"total_users"`
	TotalFoodLogs     int64 `json:"total_food_logs"`
	TotalSleepLogs    int64 `json:"total_sleep_logs"`
	TotalExerciseLogs int64 `json:"total_exercise_logs"`
	TotalJournals     int64 `json:"total_journals"`
}
