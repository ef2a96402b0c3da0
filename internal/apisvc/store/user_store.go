package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/lifemon/lifemon-services/internal/apisvc/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserStore struct {
	db *pgxpool.Pool
}

func NewUserStore(db *pgxpool.Pool) *UserStore {
	return &UserStore{db: db}
}

const userColumns = `id, nama, email, npm, jurusan, role, bio, avatar_url,
	to_char(tanggal_lahir, 'YYYY-MM-DD'), jenis_kelamin, tinggi_badan, berat_badan,
	created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(
		&u.ID,
		&u.Nama,
		&u.Email,
		&u.Npm,
		&u.Jurusan,
		&u.Role,
		&u.Bio,
		&u.AvatarURL,
		&u.TanggalLahir,
		&u.JenisKelamin,
		&u.TinggiBadan,
		&u.BeratBadan,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row := s.db.QueryRow(ctx, `
        SELECT `+userColumns+`
        FROM users
        WHERE id = $1
    `, id)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // user not found
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return u, nil
}

// List returns every user row, newest first. Admin only caller.
func (s *UserStore) List(ctx context.Context) ([]*models.User, error) {
	rows, err := s.db.Query(ctx, `
        SELECT `+userColumns+`
        FROM users
        ORDER BY created_at DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

func (s *UserStore) UpdateRole(ctx context.Context, id int64, role string) (*models.User, error) {
	row := s.db.QueryRow(ctx, `
        UPDATE users
        SET role = $1, updated_at = now()
        WHERE id = $2
        RETURNING `+userColumns+`
    `, role, id)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	return u, nil
}
