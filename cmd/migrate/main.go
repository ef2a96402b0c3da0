package main

import (
	"context"
	"time"

	config "github.com/lifemon/lifemon-services/configs"
	"github.com/lifemon/lifemon-services/internal/apisvc/db"
	log "github.com/sirupsen/logrus"
)

// statements run in order; everything is IF NOT EXISTS so re-running the
// migration is safe.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		nama TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		npm TEXT NOT NULL DEFAULT '',
		jurusan TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL DEFAULT 'user',
		bio TEXT,
		avatar_url TEXT,
		tanggal_lahir DATE,
		jenis_kelamin TEXT,
		tinggi_badan INTEGER,
		berat_badan INTEGER,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT users_email_key UNIQUE (email)
	)`,
	`CREATE TABLE IF NOT EXISTS user_profiles (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		phone TEXT,
		alamat TEXT,
		bio TEXT,
		avatar_url TEXT,
		tanggal_lahir DATE,
		jenis_kelamin TEXT,
		tinggi_badan INTEGER,
		berat_badan INTEGER,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT user_profiles_user_id_key UNIQUE (user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS food_logs (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		log_date DATE NOT NULL,
		nama_makanan TEXT NOT NULL,
		kalori INTEGER NOT NULL DEFAULT 0,
		porsi TEXT,
		waktu_makan TEXT NOT NULL,
		catatan TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS sleep_logs (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		log_date DATE NOT NULL,
		jam_tidur TEXT NOT NULL,
		jam_bangun TEXT NOT NULL,
		durasi_menit INTEGER NOT NULL,
		kualitas INTEGER NOT NULL,
		catatan TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT unique_user_sleep_date UNIQUE (user_id, log_date)
	)`,
	`CREATE TABLE IF NOT EXISTS exercise_logs (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		log_date DATE NOT NULL,
		jenis TEXT NOT NULL,
		durasi_menit INTEGER NOT NULL,
		kalori_terbakar INTEGER NOT NULL DEFAULT 0,
		catatan TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS journals (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		judul TEXT NOT NULL,
		isi TEXT NOT NULL,
		mood TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_food_logs_user_date ON food_logs (user_id, log_date)`,
	`CREATE INDEX IF NOT EXISTS idx_exercise_logs_user_date ON exercise_logs (user_id, log_date)`,
}

func main() {
	config.LoadEnv("migrate")

	dbpool, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer db.ClosePool()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	for i, stmt := range statements {
		if _, err := dbpool.Exec(ctx, stmt); err != nil {
			log.Fatalf("migration statement %d failed: %v", i+1, err)
		}
	}

	log.Info("migration completed")
}
