// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/courtside/auth-api/internal/auth"
	"github.com/courtside/auth-api/internal/config"
	"github.com/courtside/auth-api/internal/core"
	"github.com/courtside/auth-api/internal/health"
	"github.com/courtside/auth-api/internal/middleware"
	"github.com/courtside/auth-api/internal/server"
	"github.com/courtside/auth-api/internal/upload"
	"github.com/courtside/auth-api/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	if err := ensureKeyPair(cfg, logger); err != nil {
		return err
	}

	tokenIssuer, err := auth.NewTokenIssuer(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("token issuer initialized",
		"algorithm", "ES256",
		"access_token_expire", cfg.JWT.AccessTokenExpire.String(),
	)

	uploads := upload.NewStore(cfg.Uploads)
	if err := uploads.Init(); err != nil {
		return err
	}
	logger.Info("upload store ready", "dir", uploads.Dir())

	userRepo := user.NewRepository(db.DB)
	userSvc := user.NewService(userRepo)

	credentials := auth.NewCredentialValidator(userSvc)
	authSvc := auth.NewService(userSvc, tokenIssuer)
	authHandler := auth.NewHandler(authSvc, credentials, uploads)

	healthHandler := health.NewHandler(db)

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	authenticator := middleware.Authenticator(tokenIssuer, userSvc)
	authHandler.RegisterRoutes(router, authenticator)

	router.Handle(
		cfg.Uploads.PublicPath+"/*",
		http.StripPrefix(
			cfg.Uploads.PublicPath+"/",
			http.FileServer(http.Dir(cfg.Uploads.Dir)),
		),
	)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

// ensureKeyPair generates a signing keypair on first run in development so
// the service starts without manual key provisioning. Production keys must
// be provisioned out of band.
func ensureKeyPair(cfg *config.Config, logger *slog.Logger) error {
	if _, err := os.Stat(cfg.JWT.PrivateKeyPath); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if cfg.IsProduction() {
		return errors.New("jwt signing key not found")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.JWT.PrivateKeyPath), 0o700); err != nil {
		return err
	}

	logger.Warn("jwt signing key not found, generating",
		"private_key_path", cfg.JWT.PrivateKeyPath,
	)

	return auth.GenerateKeyPair(cfg.JWT.PrivateKeyPath, cfg.JWT.PublicKeyPath)
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
