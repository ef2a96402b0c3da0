package service

import (
	"context"

	"github.com/lifemon/lifemon-services/internal/apisvc/models"
)

type userAdminStore interface {
	List(ctx context.Context) ([]*models.User, error)
	UpdateRole(ctx context.Context, id int64, role string) (*models.User, error)
}

type statsStore interface {
	Stats(ctx context.Context) (*models.AdminStats, error)
}

// AdminService struct represents the admin service layer
type AdminService struct {
	users userAdminStore
	stats statsStore
}

func NewAdminService(users userAdminStore, stats statsStore) *AdminService {
	return &AdminService{
		users: users,
		stats: stats,
	}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.users.List(ctx)
}

func (s *AdminService) UpdateRole(ctx context.Context, id int64, role string) (*models.User, error) {
	if role != "user" && role != "admin" {
		return nil, invalidf("role harus 'user' atau 'admin'")
	}

	return s.users.UpdateRole(ctx, id, role)
}

func (s *AdminService) Stats(ctx context.Context) (*models.AdminStats, error) {
	return s.stats.Stats(ctx)
}
