package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/joshua-takyi/eventsphere/internal/apiclient"
	"github.com/joshua-takyi/eventsphere/internal/config"
	"github.com/joshua-takyi/eventsphere/internal/connect"
	"github.com/joshua-takyi/eventsphere/internal/container"
	"github.com/joshua-takyi/eventsphere/internal/helpers"
	"github.com/joshua-takyi/eventsphere/internal/mailer"
	"github.com/joshua-takyi/eventsphere/internal/models"
	"github.com/joshua-takyi/eventsphere/internal/routes"
)

func main() {
	// Load environment variables
	_ = godotenv.Load(".env.local")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup logger
	logger := setupLogger(cfg)
	logger.Info("Starting EventSphere API server", "environment", cfg.Environment)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	api, err := apiclient.New(cfg.APIBaseURL, cfg.APITimeout, logger)
	if err != nil {
		logger.Error("Failed to create API client", "error", err)
		os.Exit(1)
	}

	prefs, closeStore, err := openPreferences(cfg, logger)
	if err != nil {
		logger.Error("Failed to open preference store", "store", cfg.PreferenceStore, "error", err)
		os.Exit(1)
	}

	sender, err := newSender(cfg, logger)
	if err != nil {
		logger.Error("Failed to set up mail transport", "transport", cfg.MailTransport, "error", err)
		os.Exit(1)
	}

	derive := helpers.DefaultDerivers()
	if cfg.HasCloudinary() {
		cld, err := connect.CloudinaryCredentials(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			logger.Error("Failed to connect to Cloudinary", "error", err)
			os.Exit(1)
		}
		derive.EventImage = helpers.CloudinaryEventImage(cld, helpers.EventsFolder, cfg.PlaceholderCount)
		logger.Info("Using Cloudinary placeholders for event images")
	}

	// Initialize dependency container
	appContainer := container.NewContainer(cfg, logger, api, prefs, sender, derive)

	// Setup routes
	router := routes.SetupRoutes(appContainer)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.APITimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	appContainer.Sessions.Close()
	if err := closeStore(); err != nil {
		logger.Error("Error closing preference store", "error", err)
	}

	logger.Info("Server exited")
}

// openPreferences returns the configured store and the function that
// releases it.
func openPreferences(cfg *config.Config, logger *slog.Logger) (models.PreferenceRepo, func() error, error) {
	switch cfg.PreferenceStore {
	case config.StoreSQLite:
		db, err := connect.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		repo := models.SQLiteNewRepo(db)
		if err := repo.Migrate(context.Background()); err != nil {
			db.Close()
			return nil, nil, err
		}
		logger.Info("Connected to SQLite successfully", "path", cfg.SQLitePath)
		return repo, db.Close, nil

	case config.StoreMongo:
		client, err := connect.MongoDBConnect(context.Background(), cfg.MongoDBURI, cfg.MongoDBPassword)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Connected to MongoDB successfully", "database", cfg.MongoDBName)
		return models.MongodbNewRepo(client, cfg.MongoDBName), func() error {
			return connect.MongoDBDisconnect(client)
		}, nil

	case config.StoreMemory:
		return models.MemoryNewRepo(), func() error { return nil }, nil
	}
	return nil, nil, fmt.Errorf("unsupported preference store %q", cfg.PreferenceStore)
}

func newSender(cfg *config.Config, logger *slog.Logger) (mailer.Sender, error) {
	if strings.EqualFold(cfg.MailTransport, config.TransportZepto) {
		zepto, err := mailer.NewZeptoSender(cfg.ZeptoAPIURL, cfg.ZeptoAPIKey, cfg.EmailFrom, &http.Client{Timeout: cfg.APITimeout}, logger)
		if err != nil {
			return nil, err
		}
		return zepto, nil
	}
	return mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass, logger), nil
}

func setupLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler

	level := parseLevel(cfg.LogLevel)
	if cfg.IsProduction() {
		// JSON logging for production
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	} else {
		// Human-readable logging for development
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
