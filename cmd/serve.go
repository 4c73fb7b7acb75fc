package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"go_5_box_vocab/internal/config"
	"go_5_box_vocab/internal/handlers"
	"go_5_box_vocab/internal/middleware"
	"go_5_box_vocab/internal/repository"
	"go_5_box_vocab/internal/service"
)

var autoMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "APIサーバーを起動します",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return runServer(ctx, &config.Cfg, slog.Default())
	},
}

func init() {
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", false, "起動時にマイグレーションを実行する")
}

func runServer(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Application starting...")

	db, err := repository.NewDB(cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			logger.Error("Error closing database connection", slog.Any("error", err))
		} else {
			logger.Info("Database connection closed.")
		}
	}()

	if autoMigrate {
		if err := repository.Migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	var metrics *service.MetricsService
	if cfg.Metrics.Enabled {
		metrics = service.NewMetricsService()
	}

	studyOpts := []service.StudyOption{service.WithMetrics(metrics)}
	if cfg.Cache.Enabled {
		client, err := repository.NewRedis(ctx, cfg.Redis)
		if err != nil {
			// キャッシュが無くても集計はできるので起動は続ける
			logger.Warn("Redis unavailable, stats cache disabled", slog.Any("error", err))
		} else {
			cacheRepo := repository.NewCacheRepository(client)
			defer cacheRepo.Close()
			studyOpts = append(studyOpts, service.WithStatsCache(service.NewStatsCache(cacheRepo, cfg.Cache.StatsTTL, metrics)))
			logger.Info("Stats cache enabled", slog.String("addr", cfg.Redis.Addr))
		}
	}

	// Dependency Injection
	studentRepo := repository.NewGormStudentRepository()
	wordRepo := repository.NewGormWordRepository()
	store := repository.NewGormProgressStore(db)

	studyService := service.NewStudyService(db, studentRepo, wordRepo, store, cfg, studyOpts...)
	studentService := service.NewStudentService(db, studentRepo)
	catalogService := service.NewCatalogService(db, wordRepo, studentRepo, studyService)

	r := newRouter(cfg, logger, db, metrics,
		handlers.NewStudyHandler(studyService),
		handlers.NewStudentHandler(studentService),
		handlers.NewWordHandler(catalogService),
	)

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen on %s: %w", cfg.Server.Port, err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", slog.Any("error", err))
		return err
	}
	logger.Info("Server exiting")
	return nil
}

func newRouter(
	cfg *config.Config,
	logger *slog.Logger,
	db *gorm.DB,
	metrics *service.MetricsService,
	study *handlers.StudyHandler,
	students *handlers.StudentHandler,
	words *handlers.WordHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))
	if metrics != nil {
		r.Use(middleware.Metrics(metrics))
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		handlers.RegisterRoutes(r, study, students, words)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}
	return r
}
