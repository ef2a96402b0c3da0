package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/lifemon/lifemon-services/internal/apisvc/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileStore struct {
	db *pgxpool.Pool
}

func NewProfileStore(db *pgxpool.Pool) *ProfileStore {
	return &ProfileStore{db: db}
}

// ProfileData carries normalized profile fields for the two-table write.
// Required text fields are plain strings (blank collapses to ""), optional
// fields are pointers (blank collapses to NULL).
type ProfileData struct {
	Nama         string
	Npm          string
	Jurusan      string
	Email        string
	Phone        *string
	Alamat       *string
	Bio          *string
	AvatarURL    *string
	TanggalLahir *string
	JenisKelamin *string
	TinggiBadan  *int
	BeratBadan   *int
}

func (s *ProfileStore) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, user_id, phone, alamat, bio, avatar_url,
               to_char(tanggal_lahir, 'YYYY-MM-DD'), jenis_kelamin,
               tinggi_badan, berat_badan, updated_at
        FROM user_profiles
        WHERE user_id = $1
    `, userID)

	p := &models.Profile{}
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Phone,
		&p.Alamat,
		&p.Bio,
		&p.AvatarURL,
		&p.TanggalLahir,
		&p.JenisKelamin,
		&p.TinggiBadan,
		&p.BeratBadan,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // profile row is optional, absence is not an error
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}

// UpdateUserAndProfile runs the users update and the user_profiles upsert in
// one transaction so a failure between the two cannot leave the tables
// inconsistent. The users update deliberately excludes avatar_url: avatar
// changes only ever happen through SetAvatar.
func (s *ProfileStore) UpdateUserAndProfile(ctx context.Context, userID int64, d ProfileData) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin profile update: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx, `
        UPDATE users
        SET nama = $1,
            npm = $2,
            jurusan = $3,
            email = $4,
            bio = $5,
            tanggal_lahir = $6::DATE,
            jenis_kelamin = $7,
            tinggi_badan = $8,
            berat_badan = $9,
            updated_at = now()
        WHERE id = $10
        RETURNING id
    `, d.Nama, d.Npm, d.Jurusan, d.Email, d.Bio,
		d.TanggalLahir, d.JenisKelamin, d.TinggiBadan, d.BeratBadan, userID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		if isUniqueViolation(err, "users_email_key") {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	_, err = tx.Exec(ctx, `
        INSERT INTO user_profiles
            (user_id, phone, alamat, bio, avatar_url, tanggal_lahir, jenis_kelamin, tinggi_badan, berat_badan)
        VALUES ($1, $2, $3, $4, $5, $6::DATE, $7, $8, $9)
        ON CONFLICT (user_id) DO UPDATE SET
            phone = EXCLUDED.phone,
            alamat = EXCLUDED.alamat,
            bio = EXCLUDED.bio,
            avatar_url = EXCLUDED.avatar_url,
            tanggal_lahir = EXCLUDED.tanggal_lahir,
            jenis_kelamin = EXCLUDED.jenis_kelamin,
            tinggi_badan = EXCLUDED.tinggi_badan,
            berat_badan = EXCLUDED.berat_badan,
            updated_at = now()
    `, userID, d.Phone, d.Alamat, d.Bio, d.AvatarURL,
		d.TanggalLahir, d.JenisKelamin, d.TinggiBadan, d.BeratBadan)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	return tx.Commit(ctx)
}

// SetAvatar writes the avatar path into both tables in one transaction and
// returns the identity fields the upload endpoint echoes back.
func (s *ProfileStore) SetAvatar(ctx context.Context, userID int64, avatarURL string) (*models.User, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin avatar update: %w", err)
	}
	defer tx.Rollback(ctx)

	u := &models.User{}
	err = tx.QueryRow(ctx, `
        UPDATE users
        SET avatar_url = $1, updated_at = now()
        WHERE id = $2
        RETURNING id, nama, email, role, avatar_url
    `, avatarURL, userID).Scan(&u.ID, &u.Nama, &u.Email, &u.Role, &u.AvatarURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user avatar: %w", err)
	}

	_, err = tx.Exec(ctx, `
        INSERT INTO user_profiles (user_id, avatar_url)
        VALUES ($1, $2)
        ON CONFLICT (user_id) DO UPDATE SET
            avatar_url = EXCLUDED.avatar_url,
            updated_at = now()
    `, userID, avatarURL)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile avatar: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
