package service

import (
	"context"
	"strings"

	"github.com/lifemon/lifemon-services/internal/apisvc/models"
)

type foodLogStore interface {
	ListByDate(ctx context.Context, userID int64, date string) ([]*models.FoodLog, error)
	Create(ctx context.Context, f *models.FoodLog) (*models.FoodLog, error)
	Update(ctx context.Context, userID, id int64, namaMakanan *string, kalori *int, porsi *string, waktuMakan *string, catatan *string) (*models.FoodLog, error)
	Delete(ctx context.Context, userID, id int64) error
}

// FoodLogService struct represents the food log service layer
type FoodLogService struct {
	logs foodLogStore
}

func NewFoodLogService(logs foodLogStore) *FoodLogService {
	return &FoodLogService{logs: logs}
}

func (s *FoodLogService) ListByDate(ctx context.Context, userID int64, date string) ([]*models.FoodLog, error) {
	return s.logs.ListByDate(ctx, userID, date)
}

func (s *FoodLogService) Create(ctx context.Context, f *models.FoodLog) (*models.FoodLog, error) {
	f.NamaMakanan = strings.TrimSpace(f.NamaMakanan)
	if f.NamaMakanan == "" {
		return nil, invalidf("nama_makanan wajib diisi")
	}
	if f.Kalori < 0 {
		return nil, invalidf("kalori tidak boleh negatif")
	}
	if !models.ValidMealTimes[f.WaktuMakan] {
		return nil, invalidf("waktu_makan harus salah satu dari: sarapan, makan_siang, makan_malam, camilan")
	}

	return s.logs.Create(ctx, f)
}

func (s *FoodLogService) Update(ctx context.Context, userID, id int64, namaMakanan *string, kalori *int, porsi *string, waktuMakan *string, catatan *string) (*models.FoodLog, error) {
	if kalori != nil && *kalori < 0 {
		return nil, invalidf("kalori tidak boleh negatif")
	}
	if waktuMakan != nil && !models.ValidMealTimes[*waktuMakan] {
		return nil, invalidf("waktu_makan harus salah satu dari: sarapan, makan_siang, makan_malam, camilan")
	}

	return s.logs.Update(ctx, userID, id, namaMakanan, kalori, porsi, waktuMakan, catatan)
}

func (s *FoodLogService) Delete(ctx context.Context, userID, id int64) error {
	return s.logs.Delete(ctx, userID, id)
}
