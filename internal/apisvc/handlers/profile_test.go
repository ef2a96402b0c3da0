package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/lifemon/lifemon-services/internal/apisvc/models"
	"github.com/lifemon/lifemon-services/internal/apisvc/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfileFallbackPayload(t *testing.T) {
	svc := &fakeProfileService{
		getFn: func(ctx context.Context, userID int64) (interface{}, error) {
			return &models.BaseView{
				ID: userID, Nama: "Budi", Email: "budi@kampus.ac.id",
				Npm: "2106700001", Jurusan: "Ilmu Komputer", Role: "user",
			}, nil
		},
	}
	r, h := newTestServer(t, Deps{Profile: svc})

	authz := bearerToken(t, h, map[string]interface{}{"user_id": 7})
	rec, body := doJSON(t, r, http.MethodGet, "/api/users/profile", authz, nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "data block missing: %s", rec.Body.String())
	assert.Equal(t, "Budi", data["nama"])

	// avatar_url must be present as an explicit null, never omitted
	v, present := data["avatar_url"]
	assert.True(t, present, "avatar_url key must be serialized")
	assert.Nil(t, v)
}

func TestGetProfileRequiresToken(t *testing.T) {
	svc := &fakeProfileService{
		getFn: func(ctx context.Context, userID int64) (interface{}, error) {
			t.Fatal("service must not be reached without a token")
			return nil, nil
		},
	}
	r, _ := newTestServer(t, Deps{Profile: svc})

	rec, _ := doJSON(t, r, http.MethodGet, "/api/users/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetProfileMissingUserClaim(t *testing.T) {
	svc := &fakeProfileService{
		getFn: func(ctx context.Context, userID int64) (interface{}, error) {
			t.Fatal("service must not be reached without a user_id claim")
			return nil, nil
		},
	}
	r, h := newTestServer(t, Deps{Profile: svc})

	// valid token, but no user_id claim
	authz := bearerToken(t, h, map[string]interface{}{"nama": "Budi"})
	rec, body := doJSON(t, r, http.MethodGet, "/api/users/profile", authz, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "User ID tidak ditemukan", body["error"])
}

func TestUpdateProfileDuplicateEmailResponse(t *testing.T) {
	svc := &fakeProfileService{
		updateFn: func(ctx context.Context, userID int64, d store.ProfileData) (interface{}, error) {
			return nil, store.ErrDuplicateEmail
		},
	}
	r, h := newTestServer(t, Deps{Profile: svc})

	authz := bearerToken(t, h, map[string]interface{}{"user_id": 7})
	payload := strings.NewReader(`{"nama":"Budi","email":"taken@kampus.ac.id"}`)
	rec, body := doJSON(t, r, http.MethodPut, "/api/users/profile", authz, payload)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email sudah digunakan user lain", body["error"])
}

func TestUpdateProfileNonNumericHeight(t *testing.T) {
	svc := &fakeProfileService{
		updateFn: func(ctx context.Context, userID int64, d store.ProfileData) (interface{}, error) {
			t.Fatal("store must not be reached with invalid input")
			return nil, nil
		},
	}
	r, h := newTestServer(t, Deps{Profile: svc})

	authz := bearerToken(t, h, map[string]interface{}{"user_id": 7})
	payload := strings.NewReader(`{"nama":"Budi","tinggi_badan":"seratus tujuh puluh"}`)
	rec, body := doJSON(t, r, http.MethodPut, "/api/users/profile", authz, payload)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
}

func TestUpdateProfileSuccessMessage(t *testing.T) {
	tinggi := 170
	svc := &fakeProfileService{
		updateFn: func(ctx context.Context, userID int64, d store.ProfileData) (interface{}, error) {
			return &models.Profile{UserID: userID, TinggiBadan: &tinggi}, nil
		},
	}
	r, h := newTestServer(t, Deps{Profile: svc})

	authz := bearerToken(t, h, map[string]interface{}{"user_id": 7})
	payload := strings.NewReader(`{"nama":"Budi","email":"budi@kampus.ac.id","tinggi_badan":170}`)
	rec, body := doJSON(t, r, http.MethodPut, "/api/users/profile", authz, payload)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Profil berhasil diperbarui", body["message"])
}

// Unclassified failures are answered with a generic message; the real error
// text stays in the logs.
func TestInternalErrorIsRedacted(t *testing.T) {
	svc := &fakeProfileService{
		getFn: func(ctx context.Context, userID int64) (interface{}, error) {
			return nil, errors.New("pq: connection refused host=10.0.0.3")
		},
	}
	r, h := newTestServer(t, Deps{Profile: svc})

	authz := bearerToken(t, h, map[string]interface{}{"user_id": 7})
	rec, body := doJSON(t, r, http.MethodGet, "/api/users/profile", authz, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "terjadi kesalahan pada server", body["error"])
	assert.NotContains(t, rec.Body.String(), "10.0.0.3")
}
