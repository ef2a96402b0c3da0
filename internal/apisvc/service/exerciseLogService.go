package service

import (
	"context"
	"strings"

	"github.com/lifemon/lifemon-services/internal/apisvc/models"
)

type exerciseLogStore interface {
	ListByDate(ctx context.Context, userID int64, date string) ([]*models.ExerciseLog, error)
	Create(ctx context.Context, e *models.ExerciseLog) (*models.ExerciseLog, error)
	Update(ctx context.Context, userID, id int64, jenis *string, durasiMenit, kaloriTerbakar *int, catatan *string) (*models.ExerciseLog, error)
	Delete(ctx context.Context, userID, id int64) error
}

// ExerciseLogService struct represents the exercise log service layer
type ExerciseLogService struct {
	logs exerciseLogStore
}

func NewExerciseLogService(logs exerciseLogStore) *ExerciseLogService {
	return &ExerciseLogService{logs: logs}
}

func (s *ExerciseLogService) ListByDate(ctx context.Context, userID int64, date string) ([]*models.ExerciseLog, error) {
	return s.logs.ListByDate(ctx, userID, date)
}

func (s *ExerciseLogService) Create(ctx context.Context, e *models.ExerciseLog) (*models.ExerciseLog, error) {
	e.Jenis = strings.TrimSpace(e.Jenis)
	if e.Jenis == "" {
		return nil, invalidf("jenis olahraga wajib diisi")
	}
	if e.DurasiMenit <= 0 {
		return nil, invalidf("durasi_menit harus lebih dari 0")
	}
	if e.KaloriTerbakar < 0 {
		return nil, invalidf("kalori_terbakar tidak boleh negatif")
	}

	return s.logs.Create(ctx, e)
}

func (s *ExerciseLogService) Update(ctx context.Context, userID, id int64, jenis *string, durasiMenit, kaloriTerbakar *int, catatan *string) (*models.ExerciseLog, error) {
	if durasiMenit != nil && *durasiMenit <= 0 {
		return nil, invalidf("durasi_menit harus lebih dari 0")
	}
	if kaloriTerbakar != nil && *kaloriTerbakar < 0 {
		return nil, invalidf("kalori_terbakar tidak boleh negatif")
	}

	return s.logs.Update(ctx, userID, id, jenis, durasiMenit, kaloriTerbakar, catatan)
}

func (s *ExerciseLogService) Delete(ctx context.Context, userID, id int64) error {
	return s.logs.Delete(ctx, userID, id)
}
