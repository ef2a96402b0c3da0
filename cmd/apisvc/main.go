package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/httprate"

	config "github.com/lifemon/lifemon-services/configs"
	"github.com/lifemon/lifemon-services/internal/apisvc/db"
	handlers "github.com/lifemon/lifemon-services/internal/apisvc/handlers"
	"github.com/lifemon/lifemon-services/internal/apisvc/service"
	"github.com/lifemon/lifemon-services/internal/apisvc/store"
	"github.com/lifemon/lifemon-services/internal/apisvc/ws"
	log "github.com/sirupsen/logrus"
)

const SERVICE_NAME = "api"

var instanceId string

func init() {
	instanceId = config.CreateUniqueInstance(SERVICE_NAME)
	config.Logging(SERVICE_NAME + "_service_" + instanceId)
	config.LoadEnv(SERVICE_NAME)
}

func main() {

	// pg connection
	dbpool, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer db.ClosePool()
	log.Printf("pg connection established successfully")

	userStore := store.NewUserStore(dbpool)
	profileStore := store.NewProfileStore(dbpool)
	profileService := service.NewProfileService(profileStore, userStore)

	foodLogStore := store.NewFoodLogStore(dbpool)
	foodLogService := service.NewFoodLogService(foodLogStore)

	sleepLogStore := store.NewSleepLogStore(dbpool)
	sleepLogService := service.NewSleepLogService(sleepLogStore)

	exerciseLogStore := store.NewExerciseLogStore(dbpool)
	exerciseLogService := service.NewExerciseLogService(exerciseLogStore)

	journalStore := store.NewJournalStore(dbpool)
	journalService := service.NewJournalService(journalStore)

	reportStore := store.NewReportStore(dbpool)
	reportService := service.NewReportService(reportStore, profileStore)

	adminService := service.NewAdminService(userStore, reportStore)

	// chat history lives in mongo; a failure here degrades the chat route
	// group instead of blocking boot
	var chatService *service.ChatService
	var registry *ws.Registry
	var chatErr error
	if mongoDB, cancel, err := db.ConnectMongo(); err != nil {
		chatErr = err
		log.Warnf("chat storage unavailable: %v", err)
	} else {
		defer cancel()
		chatService = service.NewChatService(store.NewChatStore(mongoDB))
		registry = ws.NewRegistry(chatService)
		log.Printf("mongo connection established successfully")
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	// Setup router
	r := chi.NewRouter()
	c := config.CORS()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(config.CustomLoggerMiddleware())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(c.Handler)

	// to protect the service api from any over requests
	rateLimit := 120
	if s := os.Getenv("RATE_LIMIT"); s != "" {
		rateLimit, err = strconv.Atoi(s)
		if err != nil {
			log.Fatalf("Invalid RATE_LIMIT value: %v", err)
		}
	}
	r.Use(httprate.LimitByIP(rateLimit, 1*time.Minute))

	// Init handlers and routes
	h := handlers.NewHandler(handlers.Deps{
		Profile:      profileService,
		FoodLogs:     foodLogService,
		SleepLogs:    sleepLogService,
		ExerciseLogs: exerciseLogService,
		Journals:     journalService,
		Reports:      reportService,
		Admin:        adminService,
		Chat:         chatService,
		Registry:     registry,
		ChatErr:      chatErr,
		UploadDir:    uploadDir,
	})
	h.InitAuth()
	h.SetRoutes(r)

	// Create server with timeout settings
	server := &http.Server{
		Addr:         ":" + port(),
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()
	log.Infof("%s service running at port %s", SERVICE_NAME, server.Addr)

	// Wait for interrupt signal to gracefully shutdown the server
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("%s service shutdown Failed:%+v", SERVICE_NAME, err)
	}
	log.Infof("%s service gracefully stopped", SERVICE_NAME)
}

func port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "5000"
}
