package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/lifemon/lifemon-services/internal/apisvc/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SleepLogStore struct {
	db *pgxpool.Pool
}

func NewSleepLogStore(db *pgxpool.Pool) *SleepLogStore {
	return &SleepLogStore{db: db}
}

const sleepLogColumns = `id, user_id, to_char(log_date, 'YYYY-MM-DD'), jam_tidur,
	jam_bangun, durasi_menit, kualitas, catatan, created_at`

func scanSleepLog(row pgx.Row) (*models.SleepLog, error) {
	sl := &models.SleepLog{}
	err := row.Scan(
		&sl.ID,
		&sl.UserID,
		&sl.LogDate,
		&sl.JamTidur,
		&sl.JamBangun,
		&sl.DurasiMenit,
		&sl.Kualitas,
		&sl.Catatan,
		&sl.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return sl, nil
}

func (s *SleepLogStore) GetByDate(ctx context.Context, userID int64, date string) (*models.SleepLog, error) {
	row := s.db.QueryRow(ctx, `
        SELECT `+sleepLogColumns+`
        FROM sleep_logs
        WHERE user_id = $1 AND log_date = $2
    `, userID, date)

	sl, err := scanSleepLog(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no entry for that night
		}
		return nil, fmt.Errorf("failed to get sleep log: %w", err)
	}

	return sl, nil
}

// Upsert keeps one row per user per night: posting the same log_date again
// replaces the entry (unique_user_sleep_date constraint).
func (s *SleepLogStore) Upsert(ctx context.Context, sl *models.SleepLog) (*models.SleepLog, error) {
	row := s.db.QueryRow(ctx, `
        INSERT INTO sleep_logs (user_id, log_date, jam_tidur, jam_bangun, durasi_menit, kualitas, catatan)
        VALUES ($1, $2::DATE, $3, $4, $5, $6, $7)
        ON CONFLICT (user_id, log_date) DO UPDATE SET
            jam_tidur = EXCLUDED.jam_tidur,
            jam_bangun = EXCLUDED.jam_bangun,
            durasi_menit = EXCLUDED.durasi_menit,
            kualitas = EXCLUDED.kualitas,
            catatan = EXCLUDED.catatan
        RETURNING `+sleepLogColumns+`
    `, sl.UserID, sl.LogDate, sl.JamTidur, sl.JamBangun, sl.DurasiMenit, sl.Kualitas, sl.Catatan)

	saved, err := scanSleepLog(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert sleep log: %w", err)
	}

	return saved, nil
}

func (s *SleepLogStore) Delete(ctx context.Context, userID, id int64) error {
	tag, err := s.db.Exec(ctx, `
        DELETE FROM sleep_logs WHERE id = $1 AND user_id = $2
    `, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete sleep log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
