package upload

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	log "github.com/sirupsen/logrus"
)

// Config controls avatar storage: destination directory created on first
// use, image-only filter, 5MB cap enforced before the handler runs.
type Config struct {
	Dir      string
	Field    string
	MaxBytes int64
}

func DefaultConfig(uploadDir string) Config {
	return Config{
		Dir:      filepath.Join(uploadDir, "avatars"),
		Field:    "avatar",
		MaxBytes: 5 * 1024 * 1024,
	}
}

// StoredFile describes a file the middleware already wrote to disk; the
// handler picks it up from the request context.
type StoredFile struct {
	Filename string
	Path     string
	Size     int64
	MIME     string
}

type ctxKey struct{}

// FromContext returns the stored file placed by Middleware, if any.
func FromContext(ctx context.Context) (*StoredFile, bool) {
	f, ok := ctx.Value(ctxKey{}).(*StoredFile)
	return f, ok
}

// Filename synthesizes a collision free name:
// avatar-<callerId>-<unixMilli>-<random><original extension>.
// Two uploads by the same user in the same millisecond still differ through
// the random suffix.
func Filename(userID int64, original string) string {
	suffix := "00000000"
	if id, err := uuid.NewV4(); err == nil {
		suffix = id.String()[:8]
	}

	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("avatar-%d-%d-%s%s", userID, time.Now().UnixMilli(), suffix, ext)
}

// IsImage sniffs the payload head; the declared Content-Type alone is not
// trusted.
func IsImage(head []byte) bool {
	return strings.HasPrefix(http.DetectContentType(head), "image/")
}

// Middleware parses the multipart body, rejects non-images and oversized
// payloads before any disk or database effect, writes the accepted file to
// cfg.Dir and stashes a StoredFile in the request context for the handler.
// callerID resolves the authenticated user for the filename.
func Middleware(cfg Config, callerID func(r *http.Request) (int64, error)) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := callerID(r)
			if err != nil {
				writeError(w, http.StatusBadRequest, "User ID tidak ditemukan")
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, cfg.MaxBytes)
			if err := r.ParseMultipartForm(cfg.MaxBytes); err != nil {
				if isTooLarge(err) {
					writeError(w, http.StatusBadRequest, "ukuran file maksimal 5MB")
				} else {
					writeError(w, http.StatusBadRequest, "body multipart tidak valid")
				}
				return
			}

			file, header, err := r.FormFile(cfg.Field)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Tidak ada file yang diupload")
				return
			}
			defer file.Close()

			head := make([]byte, 512)
			n, err := file.Read(head)
			if err != nil && err != io.EOF {
				writeError(w, http.StatusInternalServerError, "gagal membaca file upload")
				return
			}
			head = head[:n]

			if !IsImage(head) {
				writeError(w, http.StatusBadRequest, "Hanya file gambar yang diperbolehkan!")
				return
			}

			if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
				log.Errorf("unable to create upload dir %s: %v", cfg.Dir, err)
				writeError(w, http.StatusInternalServerError, "gagal menyiapkan folder upload")
				return
			}

			name := Filename(userID, header.Filename)
			path := filepath.Join(cfg.Dir, name)

			dst, err := os.Create(path)
			if err != nil {
				log.Errorf("unable to create upload file %s: %v", path, err)
				writeError(w, http.StatusInternalServerError, "gagal menyimpan file upload")
				return
			}

			written := int64(0)
			if wn, err := dst.Write(head); err == nil {
				written += int64(wn)
			} else {
				dst.Close()
				os.Remove(path)
				writeError(w, http.StatusInternalServerError, "gagal menyimpan file upload")
				return
			}
			if cn, err := io.Copy(dst, file); err == nil {
				written += cn
			} else {
				dst.Close()
				os.Remove(path)
				writeError(w, http.StatusInternalServerError, "gagal menyimpan file upload")
				return
			}
			dst.Close()

			stored := &StoredFile{
				Filename: name,
				Path:     path,
				Size:     written,
				MIME:     http.DetectContentType(head),
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, stored)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isTooLarge tells the size cap apart from a malformed multipart body. The
// multipart reader does not always wrap the MaxBytesReader error, so the
// message text is checked as a fallback.
func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large")
}

// writeError keeps the middleware on the same response envelope as the
// handlers without importing them.
func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   msg,
	})
}
