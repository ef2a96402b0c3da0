package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/lifemon/lifemon-services/internal/apisvc/models"
)

// GetSleepLog returns the entry for one night. data stays null when nothing
// was logged, which is a valid state, not an error.
func (h *Handler) GetSleepLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}
	date, ok := h.dateQuery(w, r, "date")
	if !ok {
		return
	}

	entry, err := h.deps.SleepLogs.GetByDate(r.Context(), userID, date)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.ok(w, entry, "")
}

// UpsertSleepLog creates or replaces the night's entry; one row per user per
// date.
func (h *Handler) UpsertSleepLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var body struct {
		LogDate     string  `json:"log_date"`
		JamTidur    string  `json:"jam_tidur"`
		JamBangun   string  `json:"jam_bangun"`
		DurasiMenit int     `json:"durasi_menit"`
		Kualitas    int     `json:"kualitas"`
		Catatan     *string `json:"catatan"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.fail(w, http.StatusBadRequest, "body request tidak valid")
		return
	}
	if body.LogDate == "" {
		body.LogDate = todayDate()
	}

	saved, err := h.deps.SleepLogs.Upsert(r.Context(), &models.SleepLog{
		UserID:      userID,
		LogDate:     body.LogDate,
		JamTidur:    body.JamTidur,
		JamBangun:   body.JamBangun,
		DurasiMenit: body.DurasiMenit,
		Kualitas:    body.Kualitas,
		Catatan:     body.Catatan,
	})
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.ok(w, saved, "Catatan tidur tersimpan")
}

func (h *Handler) DeleteSleepLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.deps.SleepLogs.Delete(r.Context(), userID, id); err != nil {
		h.serviceError(w, err)
		return
	}

	h.ok(w, nil, "Catatan tidur dihapus")
}
