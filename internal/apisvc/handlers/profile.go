package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/lifemon/lifemon-services/internal/apisvc/models"
	"github.com/lifemon/lifemon-services/internal/apisvc/service"
	"github.com/lifemon/lifemon-services/internal/apisvc/upload"
)

// GetProfile returns the caller's profile row, or the reduced base view when
// no profile row exists yet.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	data, err := h.deps.Profile.GetProfile(r.Context(), userID)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.ok(w, data, "")
}

// UpdateProfile normalizes the request body through the declarative field
// schema, writes both tables atomically and returns the re-read profile.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var raw map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		h.fail(w, http.StatusBadRequest, "body request tidak valid")
		return
	}

	data, err := service.NormalizeProfile(raw)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	profile, err := h.deps.Profile.UpdateProfile(r.Context(), userID, data)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.CreateResponse(w, http.StatusOK, Response{
		Success: true,
		Message: "Profil berhasil diperbarui",
		Data:    profile,
	})
}

// UploadAvatar runs after the upload middleware; the file is already on disk
// and validated by the time this executes.
func (h *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	file, ok := upload.FromContext(r.Context())
	if !ok {
		h.fail(w, http.StatusBadRequest, "Tidak ada file yang diupload")
		return
	}

	// path stored in the database must match the static mount in SetRoutes
	avatarURL := "/uploads/avatars/" + file.Filename

	user, err := h.deps.Profile.SetAvatar(r.Context(), userID, avatarURL)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	role := user.Role
	if role == "" {
		role = "user"
	}

	h.CreateResponse(w, http.StatusOK, Response{
		Success: true,
		Message: "Avatar berhasil diupload",
		Data: models.IdentityEcho{
			AvatarURL: avatarURL,
			ID:        user.ID,
			Nama:      user.Nama,
			Email:     user.Email,
			Role:      role,
		},
	})
}
