package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/lifemon/lifemon-services/internal/apisvc/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	r, _ := newTestServer(t, Deps{})

	rec, _ := doJSON(t, r, http.MethodGet, "/", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "✅ API LifeMon berjalan", rec.Body.String())
}

// Stored avatars are reachable only by their generated filename; a request
// for the bare directory must not enumerate them.
func TestUploadsNoDirectoryListing(t *testing.T) {
	uploadDir := t.TempDir()
	avatarDir := filepath.Join(uploadDir, "avatars")
	require.NoError(t, os.MkdirAll(avatarDir, 0755))

	const storedName = "avatar-7-1700000000000-abcd1234.png"
	require.NoError(t, os.WriteFile(filepath.Join(avatarDir, storedName), []byte("png-bytes"), 0644))

	r, _ := newTestServer(t, Deps{UploadDir: uploadDir})

	// the file itself is served
	rec, _ := doJSON(t, r, http.MethodGet, "/uploads/avatars/"+storedName, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "png-bytes", rec.Body.String())

	// the directory is not
	for _, path := range []string{"/uploads/avatars/", "/uploads/avatars", "/uploads/"} {
		rec, _ := doJSON(t, r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.NotContains(t, rec.Body.String(), storedName, path)
	}
}

func TestRouteGroupTable(t *testing.T) {
	_, h := newTestServer(t, Deps{})

	groups := h.RouteGroups()
	require.Len(t, groups, 8)

	prefixes := make(map[string]string, len(groups))
	for _, g := range groups {
		prefixes[g.Name] = g.Prefix
	}

	assert.Equal(t, "/api/users", prefixes["users"])
	assert.Equal(t, "/api/food-logs", prefixes["food-logs"])
	assert.Equal(t, "/api/sleep-logs", prefixes["sleep-logs"])
	assert.Equal(t, "/api/exercise-logs", prefixes["exercise-logs"])
	assert.Equal(t, "/api/laporan", prefixes["laporan"])
	assert.Equal(t, "/api/admin", prefixes["admin"])
	assert.Equal(t, "/api/chat", prefixes["chat"])
	assert.Equal(t, "/api/journals", prefixes["journals"])
}

// A group whose collaborator failed at boot answers 404 with an explicit
// message on every path under its prefix, instead of crashing the service.
func TestUnavailableGroupPlaceholder(t *testing.T) {
	r, _ := newTestServer(t, Deps{ChatErr: errors.New("mongo: no reachable servers")})

	for _, path := range []string{"/api/chat/", "/api/chat/rooms/umum/messages"} {
		rec, body := doJSON(t, r, http.MethodGet, path, "", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Equal(t, false, body["success"], path)
		assert.Equal(t, "route group chat tidak tersedia", body["error"], path)
	}
}

func TestAdminGroupForbidsPlainUsers(t *testing.T) {
	r, h := newTestServer(t, Deps{Admin: &fakeAdminService{}})

	authz := bearerToken(t, h, map[string]interface{}{"user_id": 7, "role": "user"})
	rec, body := doJSON(t, r, http.MethodGet, "/api/admin/users", authz, nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "akses khusus admin", body["error"])
}

func TestAdminGroupAllowsAdmins(t *testing.T) {
	admin := &fakeAdminService{users: []*models.User{{ID: 1, Nama: "Admin Satu", Role: "admin"}}}
	r, h := newTestServer(t, Deps{Admin: admin})

	authz := bearerToken(t, h, map[string]interface{}{"user_id": 1, "role": "admin"})
	rec, body := doJSON(t, r, http.MethodGet, "/api/admin/users", authz, nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, true, body["success"])
}
