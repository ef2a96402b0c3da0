package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/lifemon/lifemon-services/internal/apisvc/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ExerciseLogStore struct {
	db *pgxpool.Pool
}

func NewExerciseLogStore(db *pgxpool.Pool) *ExerciseLogStore {
	return &ExerciseLogStore{db: db}
}

const exerciseLogColumns = `id, user_id, to_char(log_date, 'YYYY-MM-DD'), jenis,
	durasi_menit, kalori_terbakar, catatan, created_at`

func scanExerciseLog(row pgx.Row) (*models.ExerciseLog, error) {
	e := &models.ExerciseLog{}
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.LogDate,
		&e.Jenis,
		&e.DurasiMenit,
		&e.KaloriTerbakar,
		&e.Catatan,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (s *ExerciseLogStore) ListByDate(ctx context.Context, userID int64, date string) ([]*models.ExerciseLog, error) {
	rows, err := s.db.Query(ctx, `
        SELECT `+exerciseLogColumns+`
        FROM exercise_logs
        WHERE user_id = $1 AND log_date = $2
        ORDER BY created_at
    `, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercise logs: %w", err)
	}
	defer rows.Close()

	var logs []*models.ExerciseLog
	for rows.Next() {
		e, err := scanExerciseLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, e)
	}

	return logs, rows.Err()
}

func (s *ExerciseLogStore) Create(ctx context.Context, e *models.ExerciseLog) (*models.ExerciseLog, error) {
	row := s.db.QueryRow(ctx, `
        INSERT INTO exercise_logs (user_id, log_date, jenis, durasi_menit, kalori_terbakar, catatan)
        VALUES ($1, $2::DATE, $3, $4, $5, $6)
        RETURNING `+exerciseLogColumns+`
    `, e.UserID, e.LogDate, e.Jenis, e.DurasiMenit, e.KaloriTerbakar, e.Catatan)

	created, err := scanExerciseLog(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create exercise log: %w", err)
	}

	return created, nil
}

func (s *ExerciseLogStore) Update(ctx context.Context, userID, id int64, jenis *string, durasiMenit, kaloriTerbakar *int, catatan *string) (*models.ExerciseLog, error) {
	row := s.db.QueryRow(ctx, `
        UPDATE exercise_logs
        SET jenis = COALESCE($1, jenis),
            durasi_menit = COALESCE($2, durasi_menit),
            kalori_terbakar = COALESCE($3, kalori_terbakar),
            catatan = COALESCE($4, catatan)
        WHERE id = $5 AND user_id = $6
        RETURNING `+exerciseLogColumns+`
    `, jenis, durasiMenit, kaloriTerbakar, catatan, id, userID)

	updated, err := scanExerciseLog(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update exercise log: %w", err)
	}

	return updated, nil
}

func (s *ExerciseLogStore) Delete(ctx context.Context, userID, id int64) error {
	tag, err := s.db.Exec(ctx, `
        DELETE FROM exercise_logs WHERE id = $1 AND user_id = $2
    `, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete exercise log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
