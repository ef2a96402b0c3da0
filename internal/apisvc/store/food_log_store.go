package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/lifemon/lifemon-services/internal/apisvc/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FoodLogStore struct {
	db *pgxpool.Pool
}

func NewFoodLogStore(db *pgxpool.Pool) *FoodLogStore {
	return &FoodLogStore{db: db}
}

const foodLogColumns = `id, user_id, to_char(log_date, 'YYYY-MM-DD'), nama_makanan,
	kalori, porsi, waktu_makan, catatan, created_at`

func scanFoodLog(row pgx.Row) (*models.FoodLog, error) {
	f := &models.FoodLog{}
	err := row.Scan(
		&f.ID,
		&f.UserID,
		&f.LogDate,
		&f.NamaMakanan,
		&f.Kalori,
		&f.Porsi,
		&f.WaktuMakan,
		&f.Catatan,
		&f.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FoodLogStore) ListByDate(ctx context.Context, userID int64, date string) ([]*models.FoodLog, error) {
	rows, err := s.db.Query(ctx, `
        SELECT `+foodLogColumns+`
        FROM food_logs
        WHERE user_id = $1 AND log_date = $2
        ORDER BY created_at
    `, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list food logs: %w", err)
	}
	defer rows.Close()

	var logs []*models.FoodLog
	for rows.Next() {
		f, err := scanFoodLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, f)
	}

	return logs, rows.Err()
}

func (s *FoodLogStore) Create(ctx context.Context, f *models.FoodLog) (*models.FoodLog, error) {
	row := s.db.QueryRow(ctx, `
        INSERT INTO food_logs (user_id, log_date, nama_makanan, kalori, porsi, waktu_makan, catatan)
        VALUES ($1, $2::DATE, $3, $4, $5, $6, $7)
        RETURNING `+foodLogColumns+`
    `, f.UserID, f.LogDate, f.NamaMakanan, f.Kalori, f.Porsi, f.WaktuMakan, f.Catatan)

	created, err := scanFoodLog(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create food log: %w", err)
	}

	return created, nil
}

// Update applies a partial update; nil fields keep their current value.
// Ownership is enforced by matching both id and user_id.
func (s *FoodLogStore) Update(ctx context.Context, userID, id int64, namaMakanan *string, kalori *int, porsi *string, waktuMakan *string, catatan *string) (*models.FoodLog, error) {
	row := s.db.QueryRow(ctx, `
        UPDATE food_logs
        SET nama_makanan = COALESCE($1, nama_makanan),
            kalori = COALESCE($2, kalori),
            porsi = COALESCE($3, porsi),
            waktu_makan = COALESCE($4, waktu_makan),
            catatan = COALESCE($5, catatan)
        WHERE id = $6 AND user_id = $7
        RETURNING `+foodLogColumns+`
    `, namaMakanan, kalori, porsi, waktuMakan, catatan, id, userID)

	updated, err := scanFoodLog(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update food log: %w", err)
	}

	return updated, nil
}

func (s *FoodLogStore) Delete(ctx context.Context, userID, id int64) error {
	tag, err := s.db.Exec(ctx, `
        DELETE FROM food_logs WHERE id = $1 AND user_id = $2
    `, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete food log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
