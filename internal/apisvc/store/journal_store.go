package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/lifemon/lifemon-services/internal/apisvc/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type JournalStore struct {
	db *pgxpool.Pool
}

func NewJournalStore(db *pgxpool.Pool) *JournalStore {
	return &JournalStore{db: db}
}

const journalColumns = `id, user_id, judul, isi, mood, created_at, updated_at`

func scanJournal(row pgx.Row) (*models.Journal, error) {
	j := &models.Journal{}
	err := row.Scan(
		&j.ID,
		&j.UserID,
		&j.Judul,
		&j.Isi,
		&j.Mood,
		&j.CreatedAt,
		&j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (s *JournalStore) List(ctx context.Context, userID int64) ([]*models.Journal, error) {
	rows, err := s.db.Query(ctx, `
        SELECT `+journalColumns+`
        FROM journals
        WHERE user_id = $1
        ORDER BY created_at DESC
    `, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list journals: %w", err)
	}
	defer rows.Close()

	var journals []*models.Journal
	for rows.Next() {
		j, err := scanJournal(rows)
		if err != nil {
			return nil, err
		}
		journals = append(journals, j)
	}

	return journals, rows.Err()
}

func (s *JournalStore) GetByID(ctx context.Context, userID, id int64) (*models.Journal, error) {
	row := s.db.QueryRow(ctx, `
        SELECT `+journalColumns+`
        FROM journals
        WHERE id = $1 AND user_id = $2
    `, id, userID)

	j, err := scanJournal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get journal: %w", err)
	}

	return j, nil
}

func (s *JournalStore) Create(ctx context.Context, j *models.Journal) (*models.Journal, error) {
	row := s.db.QueryRow(ctx, `
        INSERT INTO journals (user_id, judul, isi, mood)
        VALUES ($1, $2, $3, $4)
        RETURNING `+journalColumns+`
    `, j.UserID, j.Judul, j.Isi, j.Mood)

	created, err := scanJournal(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create journal: %w", err)
	}

	return created, nil
}

func (s *JournalStore) Update(ctx context.Context, userID, id int64, judul, isi, mood *string) (*models.Journal, error) {
	row := s.db.QueryRow(ctx, `
        UPDATE journals
        SET judul = COALESCE($1, judul),
            isi = COALESCE($2, isi),
            mood = COALESCE($3, mood),
            updated_at = now()
        WHERE id = $4 AND user_id = $5
        RETURNING `+journalColumns+`
    `, judul, isi, mood, id, userID)

	updated, err := scanJournal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update journal: %w", err)
	}

	return updated, nil
}

func (s *JournalStore) Delete(ctx context.Context, userID, id int64) error {
	tag, err := s.db.Exec(ctx, `
        DELETE FROM journals WHERE id = $1 AND user_id = $2
    `, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete journal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
