package upload

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimal valid PNG header, enough for http.DetectContentType
var pngHead = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestFilename(t *testing.T) {
	name := Filename(42, "Selfie Pagi.PNG")

	assert.True(t, strings.HasPrefix(name, "avatar-42-"), name)
	assert.True(t, strings.HasSuffix(name, ".png"), "extension must be lowercased: %s", name)
	assert.NotContains(t, name, " ")

	// same user, same instant, still unique
	other := Filename(42, "Selfie Pagi.PNG")
	assert.NotEqual(t, name, other)
}

func TestIsImage(t *testing.T) {
	assert.True(t, IsImage(pngHead))
	assert.False(t, IsImage([]byte("berat_badan,tinggi_badan\n65,170\n")))
	assert.False(t, IsImage([]byte("<html><body>hi</body></html>")))
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func staticCaller(id int64) func(r *http.Request) (int64, error) {
	return func(r *http.Request) (int64, error) { return id, nil }
}

func TestMiddlewareStoresImage(t *testing.T) {
	cfg := DefaultConfig(t.TempDir())

	var got *StoredFile
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, ok := FromContext(r.Context())
		require.True(t, ok, "stored file missing from context")
		got = f
		w.WriteHeader(http.StatusOK)
	})

	body, ctype := multipartBody(t, cfg.Field, "foto.png", pngHead)
	req := httptest.NewRequest(http.MethodPost, "/profile/avatar", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()

	Middleware(cfg, staticCaller(7))(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotNil(t, got)
	assert.True(t, strings.HasPrefix(got.Filename, "avatar-7-"))
	assert.Equal(t, int64(len(pngHead)), got.Size)
	assert.True(t, strings.HasPrefix(got.MIME, "image/"))

	// the file really landed in the configured directory
	data, err := os.ReadFile(filepath.Join(cfg.Dir, got.Filename))
	require.NoError(t, err)
	assert.Equal(t, pngHead, data)
}

func TestMiddlewareRejectsNonImage(t *testing.T) {
	cfg := DefaultConfig(t.TempDir())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for a rejected upload")
	})

	body, ctype := multipartBody(t, cfg.Field, "resume.txt", []byte("bukan gambar sama sekali"))
	req := httptest.NewRequest(http.MethodPost, "/profile/avatar", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()

	Middleware(cfg, staticCaller(7))(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Hanya file gambar yang diperbolehkan!", resp["error"])

	// nothing was written before the rejection
	entries, err := os.ReadDir(cfg.Dir)
	if err == nil {
		assert.Empty(t, entries)
	}
}

func TestMiddlewareRejectsMissingFile(t *testing.T) {
	cfg := DefaultConfig(t.TempDir())

	body, ctype := multipartBody(t, "bukan_avatar", "foto.png", pngHead)
	req := httptest.NewRequest(http.MethodPost, "/profile/avatar", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()

	Middleware(cfg, staticCaller(7))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tidak ada file yang diupload")
}

func TestMiddlewareEnforcesSizeCap(t *testing.T) {
	cfg := DefaultConfig(t.TempDir())
	cfg.MaxBytes = 1024 // shrink the cap so the test stays small

	big := append(append([]byte{}, pngHead...), bytes.Repeat([]byte{0}, 2048)...)
	body, ctype := multipartBody(t, cfg.Field, "besar.png", big)
	req := httptest.NewRequest(http.MethodPost, "/profile/avatar", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()

	Middleware(cfg, staticCaller(7))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "maksimal")
}

// A broken multipart body is a different client mistake than an oversized
// one; the response must not claim a size problem.
func TestMiddlewareRejectsMalformedBody(t *testing.T) {
	cfg := DefaultConfig(t.TempDir())

	req := httptest.NewRequest(http.MethodPost, "/profile/avatar", strings.NewReader("this is not multipart at all"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")
	rec := httptest.NewRecorder()

	Middleware(cfg, staticCaller(7))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "body multipart tidak valid")
	assert.NotContains(t, rec.Body.String(), "maksimal")
}

func TestMiddlewareRejectsUnknownCaller(t *testing.T) {
	cfg := DefaultConfig(t.TempDir())

	body, ctype := multipartBody(t, cfg.Field, "foto.png", pngHead)
	req := httptest.NewRequest(http.MethodPost, "/profile/avatar", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()

	failing := func(r *http.Request) (int64, error) { return 0, os.ErrNotExist }
	Middleware(cfg, failing)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User ID tidak ditemukan")
}
