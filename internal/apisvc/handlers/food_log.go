package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/lifemon/lifemon-services/internal/apisvc/models"
)

func (h *Handler) ListFoodLogs(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}
	date, ok := h.dateQuery(w, r, "date")
	if !ok {
		return
	}

	logs, err := h.deps.FoodLogs.ListByDate(r.Context(), userID, date)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if logs == nil {
		logs = []*models.FoodLog{} // empty array, not null
	}

	h.ok(w, logs, "")
}

func (h *Handler) CreateFoodLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var body struct {
		LogDate     string  `json:"log_date"`
		NamaMakanan string  `json:"nama_makanan"`
		Kalori      *int    `json:"kalori"` // pointer so an omitted field is told apart from 0
		Porsi       *string `json:"porsi"`
		WaktuMakan  string  `json:"waktu_makan"`
		Catatan     *string `json:"catatan"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.fail(w, http.StatusBadRequest, "body request tidak valid")
		return
	}
	if body.LogDate == "" {
		body.LogDate = todayDate()
	}
	if body.Kalori == nil {
		h.fail(w, http.StatusBadRequest, "kalori wajib diisi")
		return
	}

	created, err := h.deps.FoodLogs.Create(r.Context(), &models.FoodLog{
		UserID:      userID,
		LogDate:     body.LogDate,
		NamaMakanan: body.NamaMakanan,
		Kalori:      *body.Kalori,
		Porsi:       body.Porsi,
		WaktuMakan:  body.WaktuMakan,
		Catatan:     body.Catatan,
	})
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.ok(w, created, "Catatan makanan tersimpan")
}

func (h *Handler) UpdateFoodLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var body struct {
		NamaMakanan *string `json:"nama_makanan"`
		Kalori      *int    `json:"kalori"`
		Porsi       *string `json:"porsi"`
		WaktuMakan  *string `json:"waktu_makan"`
		Catatan     *string `json:"catatan"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.fail(w, http.StatusBadRequest, "body request tidak valid")
		return
	}

	updated, err := h.deps.FoodLogs.Update(r.Context(), userID, id,
		body.NamaMakanan, body.Kalori, body.Porsi, body.WaktuMakan, body.Catatan)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.ok(w, updated, "Catatan makanan diperbarui")
}

func (h *Handler) DeleteFoodLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.deps.FoodLogs.Delete(r.Context(), userID, id); err != nil {
		h.serviceError(w, err)
		return
	}

	h.ok(w, nil, "Catatan makanan dihapus")
}
