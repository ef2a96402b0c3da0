package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/lifemon/lifemon-services/internal/apisvc/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFoodLogService struct {
	created *models.FoodLog
}

func (f *fakeFoodLogService) ListByDate(ctx context.Context, userID int64, date string) ([]*models.FoodLog, error) {
	return nil, nil
}

func (f *fakeFoodLogService) Create(ctx context.Context, fl *models.FoodLog) (*models.FoodLog, error) {
	f.created = fl
	return fl, nil
}

func (f *fakeFoodLogService) Update(ctx context.Context, userID, id int64, namaMakanan *string, kalori *int, porsi *string, waktuMakan *string, catatan *string) (*models.FoodLog, error) {
	return &models.FoodLog{ID: id, UserID: userID}, nil
}

func (f *fakeFoodLogService) Delete(ctx context.Context, userID, id int64) error {
	return nil
}

// kalori is required on create; an omitted field must not be silently read
// as zero, while an explicit 0 is a legal value.
func TestCreateFoodLogRequiresKalori(t *testing.T) {
	svc := &fakeFoodLogService{}
	r, h := newTestServer(t, Deps{FoodLogs: svc})
	authz := bearerToken(t, h, map[string]interface{}{"user_id": 7})

	payload := strings.NewReader(`{"nama_makanan":"nasi goreng","waktu_makan":"makan_malam"}`)
	rec, body := doJSON(t, r, http.MethodPost, "/api/food-logs/", authz, payload)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "kalori wajib diisi", body["error"])
	assert.Nil(t, svc.created)
}

func TestCreateFoodLogZeroKalori(t *testing.T) {
	svc := &fakeFoodLogService{}
	r, h := newTestServer(t, Deps{FoodLogs: svc})
	authz := bearerToken(t, h, map[string]interface{}{"user_id": 7})

	payload := strings.NewReader(`{"nama_makanan":"air putih","kalori":0,"waktu_makan":"camilan"}`)
	rec, _ := doJSON(t, r, http.MethodPost, "/api/food-logs/", authz, payload)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotNil(t, svc.created)
	assert.Equal(t, 0, svc.created.Kalori)
	assert.Equal(t, int64(7), svc.created.UserID)
}
