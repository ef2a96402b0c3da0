package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lifemon/lifemon-services/internal/apisvc/models"
	"github.com/lifemon/lifemon-services/internal/apisvc/store"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/require"
)

type fakeProfileService struct {
	getFn    func(ctx context.Context, userID int64) (interface{}, error)
	updateFn func(ctx context.Context, userID int64, d store.ProfileData) (interface{}, error)
	avatarFn func(ctx context.Context, userID int64, avatarURL string) (*models.User, error)
}

func (f *fakeProfileService) GetProfile(ctx context.Context, userID int64) (interface{}, error) {
	return f.getFn(ctx, userID)
}

func (f *fakeProfileService) UpdateProfile(ctx context.Context, userID int64, d store.ProfileData) (interface{}, error) {
	return f.updateFn(ctx, userID, d)
}

func (f *fakeProfileService) SetAvatar(ctx context.Context, userID int64, avatarURL string) (*models.User, error) {
	return f.avatarFn(ctx, userID, avatarURL)
}

type fakeAdminService struct {
	users []*models.User
}

func (f *fakeAdminService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return f.users, nil
}

func (f *fakeAdminService) UpdateRole(ctx context.Context, id int64, role string) (*models.User, error) {
	return &models.User{ID: id, Role: role}, nil
}

func (f *fakeAdminService) Stats(ctx context.Context) (*models.AdminStats, error) {
	return &models.AdminStats{}, nil
}

// newTestServer wires a handler over fakes onto a real router, so requests
// travel the same JWT middleware chain as production traffic.
func newTestServer(t *testing.T, deps Deps) (*chi.Mux, *Handler) {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "unit-test-secret")

	if deps.UploadDir == "" {
		deps.UploadDir = t.TempDir()
	}

	h := NewHandler(deps)
	h.InitAuth()

	r := chi.NewRouter()
	h.SetRoutes(r)
	return r, h
}

func bearerToken(t *testing.T, h *Handler, claims map[string]interface{}) string {
	t.Helper()
	_, tokenString, err := h.TokenAuth().Encode(claims)
	require.NoError(t, err)
	return "Bearer " + tokenString
}

func doJSON(t *testing.T, r http.Handler, method, path, authz string, body io.Reader) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req = req.WithContext(context.Background())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	if rec.Body.Len() > 0 {
		// the health check answers plain text; JSON decoding is best effort
		_ = json.Unmarshal(rec.Body.Bytes(), &decoded)
	}
	return rec, decoded
}
