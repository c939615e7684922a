package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/nsahli/portfolio-backend/config"
	"github.com/nsahli/portfolio-backend/database"
	"github.com/nsahli/portfolio-backend/services"
	"github.com/rs/zerolog/log"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(db database.Database) (Server, error) {
	c := config.New()

	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	startupTime := time.Now()

	router := newRouter(db, withConfig(c), withStartupTime(startupTime))

	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 180)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 180)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 180)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(db database.Database, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)

	acceptedOrigins := strings.Split(config.GetString(router.config, "ACCEPTED_ORIGINS", "*"), ",")
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   acceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Notification sender; the contact pipeline degrades to stored-only
	// outcomes when it is not configured.
	var notifier services.Notifier
	if emailjs, err := services.NewEmailJS(router.config); err != nil {
		log.Warn().Err(err).Msg("EmailJS not configured, contact notifications disabled")
	} else {
		notifier = emailjs
	}

	pipeline := services.NewContactPipeline(
		db.ContactMessageRepo(),
		notifier,
		config.GetString(router.config, "CONTACT_RECIPIENT_NAME", "Recipient"),
		config.GetString(router.config, "CONTACT_RECIPIENT_EMAIL", ""),
	)

	// Project image storage; the upload endpoint reports unconfigured
	// storage as an internal error.
	var images imageUploader
	if store, err := services.NewImageStore(context.Background(), router.config); err != nil {
		log.Warn().Err(err).Msg("Image storage not configured, uploads disabled")
	} else {
		images = store
	}

	handlers := initializeHandlers(db, pipeline, images)

	jwtSecret := config.GetString(router.config, "JWT_SECRET", "")
	if jwtSecret == "" {
		log.Warn().Msg("JWT_SECRET is not set; admin authentication will reject all tokens")
	}
	authMiddleware := newAuthMiddleware(jwtSecret)
	gate := newAdminGate(db.ProfileRepo())

	setupRoutes(chiRouter, handlers, authMiddleware, gate)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
