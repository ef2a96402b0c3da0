package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/lifemon/lifemon-services/internal/apisvc/models"
)

func (h *Handler) ListJournals(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	journals, err := h.deps.Journals.List(r.Context(), userID)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if journals == nil {
		journals = []*models.Journal{} // empty array, not null
	}

	h.ok(w, journals, "")
}

func (h *Handler) GetJournal(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	journal, err := h.deps.Journals.GetByID(r.Context(), userID, id)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.ok(w, journal, "")
}

func (h *Handler) CreateJournal(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var body struct {
		Judul string  `json:"judul"`
		Isi   string  `json:"isi"`
		Mood  *string `json:"mood"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.fail(w, http.StatusBadRequest, "body request tidak valid")
		return
	}

	created, err := h.deps.Journals.Create(r.Context(), &models.Journal{
		UserID: userID,
		Judul:  body.Judul,
		Isi:    body.Isi,
		Mood:   body.Mood,
	})
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.ok(w, created, "Jurnal tersimpan")
}

func (h *Handler) UpdateJournal(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var body struct {
		Judul *string `json:"judul"`
		Isi   *string `json:"isi"`
		Mood  *string `json:"mood"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.fail(w, http.StatusBadRequest, "body request tidak valid")
		return
	}

	updated, err := h.deps.Journals.Update(r.Context(), userID, id, body.Judul, body.Isi, body.Mood)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.ok(w, updated, "Jurnal diperbarui")
}

func (h *Handler) DeleteJournal(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.deps.Journals.Delete(r.Context(), userID, id); err != nil {
		h.serviceError(w, err)
		return
	}

	h.ok(w, nil, "Jurnal dihapus")
}
