package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lifemon/lifemon-services/internal/apisvc/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSleepLogStore struct {
	saved *models.SleepLog
}

func (f *fakeSleepLogStore) GetByDate(ctx context.Context, userID int64, date string) (*models.SleepLog, error) {
	return f.saved, nil
}

func (f *fakeSleepLogStore) Upsert(ctx context.Context, sl *models.SleepLog) (*models.SleepLog, error) {
	f.saved = sl
	return sl, nil
}

func (f *fakeSleepLogStore) Delete(ctx context.Context, userID, id int64) error {
	return nil
}

func TestSleepUpsertDerivesDuration(t *testing.T) {
	cases := []struct {
		name      string
		jamTidur  string
		jamBangun string
		want      int
	}{
		{"same day", "22:00", "06:00", 480},
		{"crosses midnight", "23:30", "07:15", 465},
		{"short nap after midnight", "01:00", "05:30", 270},
		{"equal times read as full day", "22:00", "22:00", 1440},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fs := &fakeSleepLogStore{}
			svc := NewSleepLogService(fs)

			got, err := svc.Upsert(context.Background(), &models.SleepLog{
				UserID:    1,
				LogDate:   "2025-03-10",
				JamTidur:  tc.jamTidur,
				JamBangun: tc.jamBangun,
				Kualitas:  3,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.DurasiMenit)
		})
	}
}

func TestSleepUpsertExplicitDurationWins(t *testing.T) {
	fs := &fakeSleepLogStore{}
	svc := NewSleepLogService(fs)

	got, err := svc.Upsert(context.Background(), &models.SleepLog{
		UserID:      1,
		LogDate:     "2025-03-10",
		JamTidur:    "22:00",
		JamBangun:   "06:00",
		DurasiMenit: 450, // caller already subtracted time awake
		Kualitas:    4,
	})
	require.NoError(t, err)
	assert.Equal(t, 450, got.DurasiMenit)
}

func TestSleepUpsertValidation(t *testing.T) {
	cases := []struct {
		name string
		log  models.SleepLog
	}{
		{"missing times", models.SleepLog{Kualitas: 3}},
		{"bad time format", models.SleepLog{JamTidur: "25:99", JamBangun: "06:00", Kualitas: 3}},
		{"kualitas too low", models.SleepLog{JamTidur: "22:00", JamBangun: "06:00", Kualitas: 0}},
		{"kualitas too high", models.SleepLog{JamTidur: "22:00", JamBangun: "06:00", Kualitas: 6}},
		{"duration over a day", models.SleepLog{JamTidur: "22:00", JamBangun: "06:00", DurasiMenit: 2000, Kualitas: 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fs := &fakeSleepLogStore{}
			svc := NewSleepLogService(fs)

			_, err := svc.Upsert(context.Background(), &tc.log)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)
			assert.Nil(t, fs.saved, "invalid log must not reach the store")
		})
	}
}
