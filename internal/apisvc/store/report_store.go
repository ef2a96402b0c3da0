package store

import (
	"context"
	"fmt"

	"github.com/lifemon/lifemon-services/internal/apisvc/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportStore struct {
	db *pgxpool.Pool
}

func NewReportStore(db *pgxpool.Pool) *ReportStore {
	return &ReportStore{db: db}
}

// DayTotals is one day of aggregates as it comes back from SQL, before the
// service layer zero-fills missing days.
type DayTotals struct {
	Date           string
	KaloriMasuk    int
	KaloriTerbakar int
	MenitTidur     int
	MenitOlahraga  int
	JumlahMakanan  int
	JumlahOlahraga int
	AdaTidur       bool
}

// Totals aggregates food, exercise and sleep per day over [start, end].
// Days with no rows in any table are simply absent from the result.
func (s *ReportStore) Totals(ctx context.Context, userID int64, start, end string) ([]DayTotals, error) {
	rows, err := s.db.Query(ctx, `
        WITH food AS (
            SELECT log_date, SUM(kalori) AS kalori_masuk, COUNT(*) AS jumlah_makanan
            FROM food_logs
            WHERE user_id = $1 AND log_date >= $2 AND log_date <= $3
            GROUP BY log_date
        ), exercise AS (
            SELECT log_date, SUM(kalori_terbakar) AS kalori_terbakar,
                   SUM(durasi_menit) AS menit_olahraga, COUNT(*) AS jumlah_olahraga
            FROM exercise_logs
            WHERE user_id = $1 AND log_date >= $2 AND log_date <= $3
            GROUP BY log_date
        ), sleep AS (
            SELECT log_date, SUM(durasi_menit) AS menit_tidur
            FROM sleep_logs
            WHERE user_id = $1 AND log_date >= $2 AND log_date <= $3
            GROUP BY log_date
        )
        SELECT to_char(d.log_date, 'YYYY-MM-DD'),
               COALESCE(f.kalori_masuk, 0),
               COALESCE(e.kalori_terbakar, 0),
               COALESCE(sl.menit_tidur, 0),
               COALESCE(e.menit_olahraga, 0),
               COALESCE(f.jumlah_makanan, 0),
               COALESCE(e.jumlah_olahraga, 0),
               sl.log_date IS NOT NULL
        FROM (
            SELECT log_date FROM food
            UNION SELECT log_date FROM exercise
            UNION SELECT log_date FROM sleep
        ) d
        LEFT JOIN food f ON f.log_date = d.log_date
        LEFT JOIN exercise e ON e.log_date = d.log_date
        LEFT JOIN sleep sl ON sl.log_date = d.log_date
        ORDER BY d.log_date
    `, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate report totals: %w", err)
	}
	defer rows.Close()

	var totals []DayTotals
	for rows.Next() {
		var t DayTotals
		err := rows.Scan(
			&t.Date,
			&t.KaloriMasuk,
			&t.KaloriTerbakar,
			&t.MenitTidur,
			&t.MenitOlahraga,
			&t.JumlahMakanan,
			&t.JumlahOlahraga,
			&t.AdaTidur,
		)
		if err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}

	return totals, rows.Err()
}

// Stats counts rows per table for the admin dashboard.
func (s *ReportStore) Stats(ctx context.Context) (*models.AdminStats, error) {
	st := &models.AdminStats{}
	err := s.db.QueryRow(ctx, `
        SELECT
            (SELECT COUNT(*) FROM users),
            (SELECT COUNT(*) FROM food_logs),
            (SELECT COUNT(*) FROM sleep_logs),
            (SELECT COUNT(*) FROM exercise_logs),
            (SELECT COUNT(*) FROM journals)
    `).Scan(
		&st.TotalUsers,
		&st.TotalFoodLogs,
		&st.TotalSleepLogs,
		&st.TotalExerciseLogs,
		&st.TotalJournals,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count stats: %w", err)
	}

	return st, nil
}
