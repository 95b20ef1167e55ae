package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go_4_vocab_srs/internal/config"
	"go_4_vocab_srs/internal/handlers"
	"go_4_vocab_srs/internal/middleware"
	"go_4_vocab_srs/internal/repository"
	"go_4_vocab_srs/internal/scheduler"
	"go_4_vocab_srs/internal/service"
	"go_4_vocab_srs/internal/webutil"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger, err := bootstrap()
	if err != nil {
		return err
	}
	cfg := config.Cfg
	logger.Info("Application starting...", slog.String("version", config.AppVersion))

	b, err := openBackends(cfg, logger)
	if err != nil {
		logger.Error("Error initializing backends", slog.Any("error", err))
		return err
	}
	defer func() {
		if err := b.Close(logger); err != nil {
			logger.Error("Error closing backends", slog.Any("error", err))
		}
	}()

	// Dependency Injection
	cardRepo := repository.NewGormCardRepository()
	selector := service.NewCardSelector(b.db, cardRepo, cfg.App.ReviewLimit)
	reviewService := service.NewReviewService(b.db, cardRepo, selector, b.store)
	cardService := service.NewCardService(b.db, cardRepo)

	reviewHandler := handlers.NewReviewHandler(reviewService, logger)
	cardHandler := handlers.NewCardHandler(cardService, logger)

	sweeper := scheduler.NewSweeper(b.store, cfg.Sweeper, logger)
	if err := sweeper.Start(); err != nil {
		return err
	}
	defer sweeper.Stop()

	r := newRouter(cfg, logger, b, reviewHandler, cardHandler)

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		if err != nil {
			logger.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			return err
		}
	}
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", slog.Any("error", err))
	}

	logger.Info("Server exiting")
	return nil
}

func newRouter(cfg config.Config, logger *slog.Logger, b *backends, reviewHandler *handlers.ReviewHandler, cardHandler *handlers.CardHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.Auth.Enabled {
			logger.Info("Applying JWT authentication middleware")
			r.Use(middleware.JWTAuthMiddleware(cfg.Auth))
		} else {
			logger.Warn("Authentication disabled, using X-Tenant-ID header")
			r.Use(middleware.DevTenantContextMiddleware)
		}
		handlers.RegisterRoutes(r, reviewHandler, cardHandler)
	})

	r.Get("/health", healthHandler(b.db, b.store))
	return r
}

type healthResponse struct {
	Status string            `json:"status"`
	Sync   service.SyncStats `json:"sync"`
}

// healthHandler は DB への疎通とリモート同期の累計件数を返します
func healthHandler(db *gorm.DB, store *service.SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.GetLogger(r.Context())
		sqlDB, err := db.DB()
		if err != nil {
			logger.Error("Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(r.Context()); err != nil {
			logger.Error("Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusServiceUnavailable)
			return
		}
		webutil.RespondWithJSON(w, http.StatusOK, healthResponse{Status: "ok", Sync: store.SyncStats()}, logger)
	}
}
