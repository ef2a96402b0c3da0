package handlers

import (
	"net/http"
	"os"

	"github.com/lifemon/lifemon-services/internal/apisvc/auth"
	"github.com/lifemon/lifemon-services/internal/apisvc/upload"

	"github.com/go-chi/chi"
	"github.com/go-chi/jwtauth"
	log "github.com/sirupsen/logrus"
)

// uploadsFS hides directory listings: generated avatar filenames are the only
// access guard, so a bare directory request must answer 404 like any missing
// file.
type uploadsFS struct {
	root http.FileSystem
}

func (u uploadsFS) Open(name string) (http.File, error) {
	f, err := u.root.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, os.ErrNotExist
	}

	return f, nil
}

// RouteGroup is one entry of the static mounting table. A group whose
// collaborator failed to initialize carries its error here and is mounted
// as an explicit unavailable handler, never as a silent crash or an empty
// route set.
type RouteGroup struct {
	Name     string
	Prefix   string
	Register func(r chi.Router)
	Err      error
}

// RouteGroups is the fixed registration table, the replacement for the old
// load-by-filename scheme.
func (h *Handler) RouteGroups() []RouteGroup {
	return []RouteGroup{
		{Name: "users", Prefix: "/api/users", Register: h.userRoutes},
		{Name: "food-logs", Prefix: "/api/food-logs", Register: h.foodLogRoutes},
		{Name: "sleep-logs", Prefix: "/api/sleep-logs", Register: h.sleepLogRoutes},
		{Name: "exercise-logs", Prefix: "/api/exercise-logs", Register: h.exerciseLogRoutes},
		{Name: "laporan", Prefix: "/api/laporan", Register: h.reportRoutes},
		{Name: "admin", Prefix: "/api/admin", Register: h.adminRoutes},
		{Name: "chat", Prefix: "/api/chat", Register: h.chatRoutes, Err: h.deps.ChatErr},
		{Name: "journals", Prefix: "/api/journals", Register: h.journalRoutes},
	}
}

func (h *Handler) SetRoutes(r *chi.Mux) {
	// fixed health check string at the root
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("✅ API LifeMon berjalan"))
	})

	// uploaded avatars are public, generated filenames are the only guard
	uploads := http.StripPrefix("/uploads", http.FileServer(uploadsFS{http.Dir(h.deps.UploadDir)}))
	r.Get("/uploads/*", func(w http.ResponseWriter, r *http.Request) {
		uploads.ServeHTTP(w, r)
	})

	for _, g := range h.RouteGroups() {
		g := g
		if g.Err != nil {
			log.Warnf("route group %q unavailable, mounting placeholder at %s: %v", g.Name, g.Prefix, g.Err)
			r.Route(g.Prefix, func(r chi.Router) {
				r.HandleFunc("/", h.unavailable(g.Name))
				r.HandleFunc("/*", h.unavailable(g.Name))
			})
			continue
		}

		r.Route(g.Prefix, func(r chi.Router) {
			r.Use(jwtauth.Verifier(h.tokenAuth))
			r.Use(jwtauth.Authenticator)
			g.Register(r)
		})
		log.Infof("route group %q mounted at %s", g.Name, g.Prefix)
	}
}

func (h *Handler) unavailable(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.fail(w, http.StatusNotFound, "route group "+name+" tidak tersedia")
	}
}

func (h *Handler) userRoutes(r chi.Router) {
	r.Get("/profile", h.GetProfile)
	r.Put("/profile", h.UpdateProfile)

	cfg := upload.DefaultConfig(h.deps.UploadDir)
	r.Route("/profile/avatar", func(r chi.Router) {
		r.Use(upload.Middleware(cfg, auth.CallerID))
		r.Post("/", h.UploadAvatar)
	})
}

func (h *Handler) foodLogRoutes(r chi.Router) {
	r.Get("/", h.ListFoodLogs)
	r.Post("/", h.CreateFoodLog)
	r.Put("/{id}", h.UpdateFoodLog)
	r.Delete("/{id}", h.DeleteFoodLog)
}

func (h *Handler) sleepLogRoutes(r chi.Router) {
	r.Get("/", h.GetSleepLog)
	r.Post("/", h.UpsertSleepLog)
	r.Delete("/{id}", h.DeleteSleepLog)
}

func (h *Handler) exerciseLogRoutes(r chi.Router) {
	r.Get("/", h.ListExerciseLogs)
	r.Post("/", h.CreateExerciseLog)
	r.Put("/{id}", h.UpdateExerciseLog)
	r.Delete("/{id}", h.DeleteExerciseLog)
}

func (h *Handler) reportRoutes(r chi.Router) {
	r.Get("/harian", h.DailyReport)
	r.Get("/mingguan", h.WeeklyReport)
}

func (h *Handler) adminRoutes(r chi.Router) {
	r.Use(h.adminOnly)
	r.Get("/users", h.ListUsers)
	r.Put("/users/{id}/role", h.UpdateUserRole)
	r.Get("/stats", h.AdminStats)
}

func (h *Handler) chatRoutes(r chi.Router) {
	r.Get("/rooms/{room}/messages", h.ListChatMessages)
	r.Post("/rooms/{room}/messages", h.SendChatMessage)
	r.Get("/ws", h.HandleWebSocket)
}

func (h *Handler) journalRoutes(r chi.Router) {
	r.Get("/", h.ListJournals)
	r.Post("/", h.CreateJournal)
	r.Get("/{id}", h.GetJournal)
	r.Put("/{id}", h.UpdateJournal)
	r.Delete("/{id}", h.DeleteJournal)
}

// adminOnly gates the admin group on the role claim.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth.Role(r) != "admin" {
			h.fail(w, http.StatusForbidden, "akses khusus admin")
			return
		}
		next.ServeHTTP(w, r)
	})
}
