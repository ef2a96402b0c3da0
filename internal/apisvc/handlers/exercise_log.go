package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/lifemon/lifemon-services/internal/apisvc/models"
)

func (h *Handler) ListExerciseLogs(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}
	date, ok := h.dateQuery(w, r, "date")
	if !ok {
		return
	}

	logs, err := h.deps.ExerciseLogs.ListByDate(r.Context(), userID, date)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if logs == nil {
		logs = []*models.ExerciseLog{} // empty array, not null
	}

	h.ok(w, logs, "")
}

func (h *Handler) CreateExerciseLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var body struct {
		LogDate        string  `json:"log_date"`
		Jenis          string  `json:"jenis"`
		DurasiMenit    int     `json:"durasi_menit"`
		KaloriTerbakar int     `json:"kalori_terbakar"`
		Catatan        *string `json:"catatan"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.fail(w, http.StatusBadRequest, "body request tidak valid")
		return
	}
	if body.LogDate == "" {
		body.LogDate = todayDate()
	}

	created, err := h.deps.ExerciseLogs.Create(r.Context(), &models.ExerciseLog{
		UserID:         userID,
		LogDate:        body.LogDate,
		Jenis:          body.Jenis,
		DurasiMenit:    body.DurasiMenit,
		KaloriTerbakar: body.KaloriTerbakar,
		Catatan:        body.Catatan,
	})
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.ok(w, created, "Catatan olahraga tersimpan")
}

func (h *Handler) UpdateExerciseLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var body struct {
		Jenis          *string `json:"jenis"`
		DurasiMenit    *int    `json:"durasi_menit"`
		KaloriTerbakar *int    `json:"kalori_terbakar"`
		Catatan        *string `json:"catatan"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.fail(w, http.StatusBadRequest, "body request tidak valid")
		return
	}

	updated, err := h.deps.ExerciseLogs.Update(r.Context(), userID, id,
		body.Jenis, body.DurasiMenit, body.KaloriTerbakar, body.Catatan)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.ok(w, updated, "Catatan olahraga diperbarui")
}

func (h *Handler) DeleteExerciseLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.deps.ExerciseLogs.Delete(r.Context(), userID, id); err != nil {
		h.serviceError(w, err)
		return
	}

	h.ok(w, nil, "Catatan olahraga dihapus")
}
