package models

import (
	"time"
)

// Profile represents the user_profiles table, the lazily created extension of
// a user row. Absence of a row is a valid state.
type Profile struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Phone        *string   `json:"phone"`
	Alamat       *string   `json:"alamat"`
	Bio          *string   `json:"bio"`
	AvatarURL    *string   `json:"avatar_url"`
	TanggalLahir *string   `json:"tanggal_lahir"`
	JenisKelamin *string   `json:"jenis_kelamin"`
	TinggiBadan  *int      `json:"tinggi_badan"`
	BeratBadan   *int      `json:"berat_badan"`
	UpdatedAt    time.Time `json:"updated_at"`
}
