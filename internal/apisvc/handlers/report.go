package handlers

import (
	"net/http"
	"time"

	"github.com/lifemon/lifemon-services/internal/apisvc/service"
)

// DailyReport aggregates one day of logs.
// GET /api/laporan/harian?date=YYYY-MM-DD (defaults to today).
func (h *Handler) DailyReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}
	date, ok := h.dateQuery(w, r, "date")
	if !ok {
		return
	}

	report, err := h.deps.Reports.Daily(r.Context(), userID, date)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.ok(w, report, "")
}

// WeeklyReport returns the Monday..Sunday window containing week_start.
// GET /api/laporan/mingguan?week_start=YYYY-MM-DD (defaults to the current
// week's Monday).
func (h *Handler) WeeklyReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var weekStart time.Time
	if s := r.URL.Query().Get("week_start"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			h.fail(w, http.StatusBadRequest, "week_start tidak valid, format YYYY-MM-DD")
			return
		}
		weekStart = t
	} else {
		weekStart = service.CurrentMonday(time.Now())
	}

	report, err := h.deps.Reports.Weekly(r.Context(), userID, weekStart)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.ok(w, report, "")
}
