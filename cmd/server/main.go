package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/contentdesk/contentdesk/config"
	"github.com/contentdesk/contentdesk/internal/api"
	"github.com/contentdesk/contentdesk/internal/api/handlers"
	"github.com/contentdesk/contentdesk/internal/core/collection"
	"github.com/contentdesk/contentdesk/internal/core/document"
	"github.com/contentdesk/contentdesk/internal/core/validation"
	"github.com/contentdesk/contentdesk/internal/storage/localstore"
	"github.com/contentdesk/contentdesk/internal/storage/postgres"
	"github.com/contentdesk/contentdesk/internal/uploads"
	"github.com/contentdesk/contentdesk/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zlog, err := logger.New(cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	// Connect to database
	db, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		zlog.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	zlog.Info("Connected to database")

	// Convenience store (recent searches, bookmarks)
	local, err := localstore.New(cfg.Local.Path)
	if err != nil {
		zlog.Fatal("Failed to open local store", zap.Error(err))
	}
	defer local.Close()

	uploadStore, err := uploads.NewStore(cfg.Uploads.Dir, cfg.Uploads.BaseURL, cfg.Uploads.MaxBytes)
	if err != nil {
		zlog.Fatal("Failed to prepare uploads directory", zap.Error(err))
	}

	// Initialize repositories
	collectionRepo := collection.NewRepository(db)
	templateRepo := document.NewRepository(db)

	// Initialize services
	validator := validation.NewValidator()
	collectionService := collection.NewService(collectionRepo, validator)
	templateRegistry := document.NewRegistry(templateRepo)
	sessionManager := document.NewManager(templateRegistry, validator, document.NewExporter())

	// Initialize handlers
	collectionHandler := handlers.NewCollectionHandler(collectionService)
	templateHandler := handlers.NewTemplateHandler(templateRegistry)
	documentHandler := handlers.NewDocumentHandler(sessionManager)
	uploadHandler := handlers.NewUploadHandler(uploadStore)
	convenienceHandler := handlers.NewConvenienceHandler(local, cfg.Local.RecentSearchLimit)

	// Setup router
	router := api.NewRouter(
		zlog,
		cfg.CORS.Origins,
		uploadStore.Dir(),
		collectionHandler,
		templateHandler,
		documentHandler,
		uploadHandler,
		convenienceHandler,
	)

	engine := router.Setup(cfg.Server.Mode)

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		zlog.Info("Shutting down server...")
		db.Close()
		local.Close()
		os.Exit(0)
	}()

	// Start server
	zlog.Info("Starting server", zap.String("port", cfg.Server.Port))
	if err := engine.Run(":" + cfg.Server.Port); err != nil {
		zlog.Fatal("Failed to start server", zap.Error(err))
	}
}
