package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
)

// dateQuery reads a YYYY-MM-DD query param, defaulting to today. An invalid
// value silently matching no rows is worse than a 400, so validate up front.
func (h *Handler) dateQuery(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	date := r.URL.Query().Get(name)
	if date == "" {
		return time.Now().Format("2006-01-02"), true
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		h.fail(w, http.StatusBadRequest, name+" tidak valid, format YYYY-MM-DD")
		return "", false
	}
	return date, true
}

func todayDate() string {
	return time.Now().Format("2006-01-02")
}

// pathID reads the {id} route param.
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.fail(w, http.StatusBadRequest, "id tidak valid")
		return 0, false
	}
	return id, true
}
