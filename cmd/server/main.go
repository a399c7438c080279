package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/staylodge/guest-service/internal/adapter/provider/supabase"
	"github.com/staylodge/guest-service/internal/config"
	"github.com/staylodge/guest-service/internal/infrastructure/database"
	httpServer "github.com/staylodge/guest-service/internal/infrastructure/http"
	"github.com/staylodge/guest-service/internal/infrastructure/mail"
	"github.com/staylodge/guest-service/internal/infrastructure/messaging"
	"github.com/staylodge/guest-service/pkg/logger"
	pkgmessaging "github.com/staylodge/guest-service/pkg/messaging"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Output:      cfg.Log.Output,
		Development: cfg.Service.Environment != "production",
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// Initialize database connection
	db, err := database.NewConnection(&cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db, zapLogger); err != nil {
			zapLogger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	// Run database migrations
	if err := database.Migrate(db, zapLogger); err != nil {
		zapLogger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Initialize repositories
	repos := database.NewRepositories(db)

	// Initialize providers
	authProvider := supabase.NewAuthProvider(
		cfg.Service.Supabase.ProjectURL,
		cfg.Service.Supabase.ServiceKey,
		zapLogger,
	)

	redisClient, err := pkgmessaging.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	notifier := messaging.NewRedisNotifier(redisClient, cfg.Redis.NotificationChannel)
	defer func() {
		if err := notifier.Close(); err != nil {
			zapLogger.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	mailer := mail.NewSMTPClient(cfg.Email, zapLogger)

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize HTTP server
	httpSrv := httpServer.NewServer(cfg, zapLogger, repos, authProvider, notifier, mailer)

	go func() {
		if err := httpSrv.Start(); err != nil {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	zapLogger.Info("Shutting down server...")

	if err := httpSrv.Shutdown(ctx); err != nil {
		zapLogger.Error("Failed to shutdown HTTP server", zap.Error(err))
	}

	zapLogger.Info("Server shut down successfully")
}
