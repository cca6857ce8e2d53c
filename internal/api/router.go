package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/contentdesk/contentdesk/internal/api/handlers"
	"github.com/contentdesk/contentdesk/internal/api/middleware"
)

type Router struct {
	engine             *gin.Engine
	logger             *zap.Logger
	corsOrigins        string
	uploadsDir         string
	collectionHandler  *handlers.CollectionHandler
	templateHandler    *handlers.TemplateHandler
	documentHandler    *handlers.DocumentHandler
	uploadHandler      *handlers.UploadHandler
	convenienceHandler *handlers.ConvenienceHandler
}

func NewRouter(
	logger *zap.Logger,
	corsOrigins string,
	uploadsDir string,
	collectionHandler *handlers.CollectionHandler,
	templateHandler *handlers.TemplateHandler,
	documentHandler *handlers.DocumentHandler,
	uploadHandler *handlers.UploadHandler,
	convenienceHandler *handlers.ConvenienceHandler,
) *Router {
	return &Router{
		logger:             logger,
		corsOrigins:        corsOrigins,
		uploadsDir:         uploadsDir,
		collectionHandler:  collectionHandler,
		templateHandler:    templateHandler,
		documentHandler:    documentHandler,
		uploadHandler:      uploadHandler,
		convenienceHandler: convenienceHandler,
	}
}

func (r *Router) Setup(mode string) *gin.Engine {
	gin.SetMode(mode)
	r.engine = gin.New()
	r.engine.Use(gin.Recovery())
	r.engine.Use(middleware.AuditMiddleware())
	r.engine.Use(middleware.NewLoggingMiddleware(r.logger).LogRequest())
	r.engine.Use(cors.New(r.corsConfig()))
	r.engine.Use(gzip.Gzip(gzip.DefaultCompression))

	r.setupRoutes()
	return r.engine
}

func (r *Router) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	if r.corsOrigins == "" || r.corsOrigins == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = strings.Split(r.corsOrigins, ",")
	}
	return cfg
}

func (r *Router) setupRoutes() {
	// Uploaded media is served as static files; records store the URLs.
	r.engine.Static("/static/uploads", r.uploadsDir)

	api := r.engine.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Record collections
	collections := api.Group("/collections")
	{
		collections.GET("", r.collectionHandler.List)
		collections.GET("/:name", r.collectionHandler.Get)
		collections.PUT("/:name", r.collectionHandler.Persist)
		collections.POST("/:name/refresh", r.collectionHandler.Refresh)
		collections.POST("/:name/view", r.collectionHandler.View)
		collections.GET("/:name/public", r.collectionHandler.Public)

		collections.POST("/:name/records", r.collectionHandler.AddRecord)
		collections.PUT("/:name/records/:id", r.collectionHandler.UpdateRecord)
		collections.DELETE("/:name/records/:id", r.collectionHandler.DeleteRecord)
		collections.POST("/:name/records/:id/toggle", r.collectionHandler.ToggleRecord)
		collections.POST("/:name/records/:id/reorder", r.collectionHandler.ReorderRecord)
	}

	// Document templates
	templates := api.Group("/templates")
	{
		templates.GET("", r.templateHandler.List)
		templates.POST("", r.templateHandler.Create)
		templates.GET("/:id", r.templateHandler.Get)
		templates.DELETE("/:id", r.templateHandler.Delete)
	}

	// Document generation wizard
	sessions := api.Group("/documents/sessions")
	{
		sessions.POST("", r.documentHandler.CreateSession)
		sessions.GET("/:id", r.documentHandler.GetSession)
		sessions.POST("/:id/select", r.documentHandler.SelectTemplate)
		sessions.POST("/:id/values", r.documentHandler.SetValue)
		sessions.POST("/:id/back", r.documentHandler.Back)
		sessions.POST("/:id/reset", r.documentHandler.Reset)
		sessions.POST("/:id/validate", r.documentHandler.Validate)
		sessions.POST("/:id/generate", r.documentHandler.Generate)
		sessions.GET("/:id/export", r.documentHandler.Export)
	}

	// Media uploads
	up := api.Group("/uploads")
	{
		up.POST("/image", r.uploadHandler.UploadImage)
		up.POST("/video", r.uploadHandler.UploadVideo)
	}

	// Admin conveniences
	api.GET("/recent-searches", r.convenienceHandler.RecentSearches)
	api.POST("/recent-searches", r.convenienceHandler.AddSearch)
	api.GET("/bookmarks", r.convenienceHandler.ListBookmarks)
	api.POST("/bookmarks", r.convenienceHandler.AddBookmark)
	api.DELETE("/bookmarks/:id", r.convenienceHandler.DeleteBookmark)
}
