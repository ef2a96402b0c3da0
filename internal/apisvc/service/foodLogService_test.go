package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lifemon/lifemon-services/internal/apisvc/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFoodLogStore struct {
	created *models.FoodLog
	updated bool
}

func (f *fakeFoodLogStore) ListByDate(ctx context.Context, userID int64, date string) ([]*models.FoodLog, error) {
	return nil, nil
}

func (f *fakeFoodLogStore) Create(ctx context.Context, fl *models.FoodLog) (*models.FoodLog, error) {
	f.created = fl
	return fl, nil
}

func (f *fakeFoodLogStore) Update(ctx context.Context, userID, id int64, namaMakanan *string, kalori *int, porsi *string, waktuMakan *string, catatan *string) (*models.FoodLog, error) {
	f.updated = true
	return &models.FoodLog{ID: id, UserID: userID}, nil
}

func (f *fakeFoodLogStore) Delete(ctx context.Context, userID, id int64) error {
	return nil
}

func TestFoodCreateTrimsName(t *testing.T) {
	fs := &fakeFoodLogStore{}
	svc := NewFoodLogService(fs)

	got, err := svc.Create(context.Background(), &models.FoodLog{
		UserID:      1,
		LogDate:     "2025-03-10",
		NamaMakanan: "  nasi goreng ",
		Kalori:      650,
		WaktuMakan:  "makan_malam",
	})
	require.NoError(t, err)
	assert.Equal(t, "nasi goreng", got.NamaMakanan)
}

func TestFoodCreateValidation(t *testing.T) {
	cases := []struct {
		name string
		log  models.FoodLog
	}{
		{"empty name", models.FoodLog{NamaMakanan: "   ", WaktuMakan: "sarapan"}},
		{"negative calories", models.FoodLog{NamaMakanan: "roti", Kalori: -1, WaktuMakan: "sarapan"}},
		{"unknown meal time", models.FoodLog{NamaMakanan: "roti", WaktuMakan: "brunch"}},
		{"missing meal time", models.FoodLog{NamaMakanan: "roti"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fs := &fakeFoodLogStore{}
			svc := NewFoodLogService(fs)

			_, err := svc.Create(context.Background(), &tc.log)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)
			assert.Nil(t, fs.created)
		})
	}
}

func TestFoodUpdatePartialValidation(t *testing.T) {
	fs := &fakeFoodLogStore{}
	svc := NewFoodLogService(fs)

	bad := -10
	_, err := svc.Update(context.Background(), 1, 7, nil, &bad, nil, nil, nil)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.False(t, fs.updated)

	// fields left nil are not validated, the store keeps the old values
	catatan := "porsi kecil"
	_, err = svc.Update(context.Background(), 1, 7, nil, nil, nil, nil, &catatan)
	require.NoError(t, err)
	assert.True(t, fs.updated)
}

func TestValidMealTimes(t *testing.T) {
	for _, m := range []string{"sarapan", "makan_siang", "makan_malam", "camilan"} {
		assert.True(t, models.ValidMealTimes[m], m)
	}
	assert.False(t, models.ValidMealTimes["Sarapan"], "meal times are case sensitive")
}
