package service

import (
	"context"
	"time"

	"github.com/lifemon/lifemon-services/internal/apisvc/models"
)

type sleepLogStore interface {
	GetByDate(ctx context.Context, userID int64, date string) (*models.SleepLog, error)
	Upsert(ctx context.Context, sl *models.SleepLog) (*models.SleepLog, error)
	Delete(ctx context.Context, userID, id int64) error
}

// SleepLogService struct represents the sleep log service layer
type SleepLogService struct {
	logs sleepLogStore
}

func NewSleepLogService(logs sleepLogStore) *SleepLogService {
	return &SleepLogService{logs: logs}
}

func (s *SleepLogService) GetByDate(ctx context.Context, userID int64, date string) (*models.SleepLog, error) {
	return s.logs.GetByDate(ctx, userID, date)
}

// Upsert stores one entry per night. When durasi_menit is omitted it is
// derived from jam_tidur/jam_bangun, treating a wake time earlier than the
// bed time as crossing midnight.
func (s *SleepLogService) Upsert(ctx context.Context, sl *models.SleepLog) (*models.SleepLog, error) {
	if sl.JamTidur == "" || sl.JamBangun == "" {
		return nil, invalidf("jam_tidur dan jam_bangun wajib diisi")
	}

	tidur, err := time.Parse("15:04", sl.JamTidur)
	if err != nil {
		return nil, invalidf("jam_tidur tidak valid, format HH:MM")
	}
	bangun, err := time.Parse("15:04", sl.JamBangun)
	if err != nil {
		return nil, invalidf("jam_bangun tidak valid, format HH:MM")
	}

	if sl.DurasiMenit == 0 {
		d := bangun.Sub(tidur)
		if d <= 0 {
			d += 24 * time.Hour
		}
		sl.DurasiMenit = int(d.Minutes())
	}
	if sl.DurasiMenit <= 0 || sl.DurasiMenit > 24*60 {
		return nil, invalidf("durasi_menit harus antara 1 dan 1440")
	}

	if sl.Kualitas < 1 || sl.Kualitas > 5 {
		return nil, invalidf("kualitas harus antara 1 dan 5")
	}

	return s.logs.Upsert(ctx, sl)
}

func (s *SleepLogService) Delete(ctx context.Context, userID, id int64) error {
	return s.logs.Delete(ctx, userID, id)
}
