package service

import (
	"context"

	"github.com/lifemon/lifemon-services/internal/apisvc/models"
	"github.com/lifemon/lifemon-services/internal/apisvc/store"
)

type profileStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Profile, error)
	UpdateUserAndProfile(ctx context.Context, userID int64, d store.ProfileData) error
	SetAvatar(ctx context.Context, userID int64, avatarURL string) (*models.User, error)
}

type userReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// ProfileService struct represents the profile service layer
type ProfileService struct {
	profiles profileStore
	users    userReader
}

// NewProfileService creates a new ProfileService instance
func NewProfileService(profiles profileStore, users userReader) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		users:    users,
	}
}

// GetProfile returns the profile row verbatim when it exists. A user without
// a profile row is presented as the reduced base view with an explicit null
// avatar_url, without forcing row creation on read.
func (s *ProfileService) GetProfile(ctx context.Context, userID int64) (interface{}, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, store.ErrUserNotFound
	}

	role := user.Role
	if role == "" {
		role = "user"
	}

	return &models.BaseView{
		ID:        user.ID,
		Nama:      user.Nama,
		Email:     user.Email,
		Npm:       user.Npm,
		Jurusan:   user.Jurusan,
		Role:      role,
		AvatarURL: nil,
	}, nil
}

// UpdateProfile writes both tables atomically and re-reads the merged profile
// so the response reflects authoritative post-write state.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID int64, d store.ProfileData) (interface{}, error) {
	if err := s.profiles.UpdateUserAndProfile(ctx, userID, d); err != nil {
		return nil, err
	}

	return s.GetProfile(ctx, userID)
}

// SetAvatar points both avatar_url columns at the stored path.
func (s *ProfileService) SetAvatar(ctx context.Context, userID int64, avatarURL string) (*models.User, error) {
	return s.profiles.SetAvatar(ctx, userID, avatarURL)
}
