package models

import (
	"time"
)

// User represents the users table in the database. Column names follow the
// LifeMon schema (nama, npm, jurusan, ...).
type User struct {
	ID           int64     `json:"id"`
	Nama         string    `json:"nama"`
	Email        string    `json:"email"`
	Npm          string    `json:"npm"`
	Jurusan      string    `json:"jurusan"`
	Role         string    `json:"role"`
	Bio          *string   `json:"bio"`
	AvatarURL    *string   `json:"avatar_url"`
	TanggalLahir *string   `json:"tanggal_lahir"`
	JenisKelamin *string   `json:"jenis_kelamin"`
	TinggiBadan  *int      `json:"tinggi_badan"`
	BeratBadan   *int      `json:"berat_badan"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BaseView is the reduced shape returned when a user has no profile row yet.
// AvatarURL stays in the payload as an explicit null.
type BaseView struct {
	ID        int64   `json:"id"`
	Nama      string  `json:"nama"`
	Email     string  `json:"email"`
	Npm       string  `json:"npm"`
	Jurusan   string  `json:"jurusan"`
	Role      string  `json:"role"`
	AvatarURL *string `json:"avatar_url"`
}

// IdentityEcho is the minimal identity block echoed back after an avatar upload.
type IdentityEcho struct {
	AvatarURL string `json:"avatar_url"`
	ID        int64  `json:"id"`
	Nama      string `json:"nama"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}
