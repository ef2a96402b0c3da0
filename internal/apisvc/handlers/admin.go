package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/lifemon/lifemon-services/internal/apisvc/models"
)

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.deps.Admin.ListUsers(r.Context())
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if users == nil {
		users = []*models.User{} // empty array, not null
	}

	h.ok(w, users, "")
}

func (h *Handler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var body struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.fail(w, http.StatusBadRequest, "body request tidak valid")
		return
	}

	user, err := h.deps.Admin.UpdateRole(r.Context(), id, body.Role)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.ok(w, user, "Role user diperbarui")
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.deps.Admin.Stats(r.Context())
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.ok(w, stats, "")
}
