package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/lifemon/lifemon-services/internal/apisvc/auth"
	"github.com/lifemon/lifemon-services/internal/apisvc/models"
	"github.com/lifemon/lifemon-services/internal/apisvc/service"
	"github.com/lifemon/lifemon-services/internal/apisvc/store"
	"github.com/lifemon/lifemon-services/internal/apisvc/ws"

	"github.com/go-chi/jwtauth"
	log "github.com/sirupsen/logrus"
)

type profileService interface {
	GetProfile(ctx context.Context, userID int64) (interface{}, error)
	UpdateProfile(ctx context.Context, userID int64, d store.ProfileData) (interface{}, error)
	SetAvatar(ctx context.Context, userID int64, avatarURL string) (*models.User, error)
}

type foodLogService interface {
	ListByDate(ctx context.Context, userID int64, date string) ([]*models.FoodLog, error)
	Create(ctx context.Context, f *models.FoodLog) (*models.FoodLog, error)
	Update(ctx context.Context, userID, id int64, namaMakanan *string, kalori *int, porsi *string, waktuMakan *string, catatan *string) (*models.FoodLog, error)
	Delete(ctx context.Context, userID, id int64) error
}

type sleepLogService interface {
	GetByDate(ctx context.Context, userID int64, date string) (*models.SleepLog, error)
	Upsert(ctx context.Context, sl *models.SleepLog) (*models.SleepLog, error)
	Delete(ctx context.Context, userID, id int64) error
}

type exerciseLogService interface {
	ListByDate(ctx context.Context, userID int64, date string) ([]*models.ExerciseLog, error)
	Create(ctx context.Context, e *models.ExerciseLog) (*models.ExerciseLog, error)
	Update(ctx context.Context, userID, id int64, jenis *string, durasiMenit, kaloriTerbakar *int, catatan *string) (*models.ExerciseLog, error)
	Delete(ctx context.Context, userID, id int64) error
}

type journalService interface {
	List(ctx context.Context, userID int64) ([]*models.Journal, error)
	GetByID(ctx context.Context, userID, id int64) (*models.Journal, error)
	Create(ctx context.Context, j *models.Journal) (*models.Journal, error)
	Update(ctx context.Context, userID, id int64, judul, isi, mood *string) (*models.Journal, error)
	Delete(ctx context.Context, userID, id int64) error
}

type reportService interface {
	Daily(ctx context.Context, userID int64, date string) (*models.DailyReport, error)
	Weekly(ctx context.Context, userID int64, weekStart time.Time) (*models.WeeklyReport, error)
}

type adminService interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateRole(ctx context.Context, id int64, role string) (*models.User, error)
	Stats(ctx context.Context) (*models.AdminStats, error)
}

type chatService interface {
	ListMessages(ctx context.Context, room string, limit int64) ([]*models.ChatMessage, error)
	SendMessage(ctx context.Context, room string, senderID int64, senderName, text string) (*models.ChatMessage, error)
}

// Deps bundles the collaborators a Handler needs. ChatErr carries the chat
// group's initialization failure, if any; the group is then mounted as
// unavailable instead of crashing boot.
type Deps struct {
	Profile      profileService
	FoodLogs     foodLogService
	SleepLogs    sleepLogService
	ExerciseLogs exerciseLogService
	Journals     journalService
	Reports      reportService
	Admin        adminService
	Chat         chatService
	Registry     *ws.Registry
	ChatErr      error
	UploadDir    string
}

type Handler struct {
	tokenAuth *jwtauth.JWTAuth
	deps      Deps
}

func NewHandler(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (h *Handler) CreateResponse(w http.ResponseWriter, code int, rsp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(rsp); err != nil {
		log.Errorf("Failed to encode response: %v", err)
	}
}

func (h *Handler) ok(w http.ResponseWriter, data interface{}, message string) {
	h.CreateResponse(w, http.StatusOK, Response{Success: true, Data: data, Message: message})
}

func (h *Handler) fail(w http.ResponseWriter, code int, msg string) {
	h.CreateResponse(w, code, Response{Success: false, Error: msg})
}

// serviceError maps store and service errors to statuses. Unclassified
// failures are logged with their real cause and answered with a generic
// message; internal error text never reaches the client.
func (h *Handler) serviceError(w http.ResponseWriter, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		h.fail(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, store.ErrDuplicateEmail):
		h.fail(w, http.StatusBadRequest, "Email sudah digunakan user lain")
	case errors.Is(err, store.ErrUserNotFound):
		h.fail(w, http.StatusBadRequest, "User tidak ditemukan")
	case errors.Is(err, store.ErrNotFound):
		h.fail(w, http.StatusNotFound, "data tidak ditemukan")
	default:
		log.Errorf("unhandled service error: %v", err)
		h.fail(w, http.StatusInternalServerError, "terjadi kesalahan pada server")
	}
}

// callerID resolves the authenticated user or answers 400 itself.
func (h *Handler) callerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := auth.CallerID(r)
	if err != nil {
		h.fail(w, http.StatusBadRequest, "User ID tidak ditemukan")
		return 0, false
	}
	return id, true
}

func (h *Handler) InitAuth() {
	var jwtKey = os.Getenv("JWT_SECRET_KEY")
	h.tokenAuth = jwtauth.New("HS256", []byte(jwtKey), nil)
}

// TokenAuth exposes the verifier for tests.
func (h *Handler) TokenAuth() *jwtauth.JWTAuth {
	return h.tokenAuth
}
