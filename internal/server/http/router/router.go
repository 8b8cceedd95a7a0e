package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/greenloop/cleanearth/internal/config"
	"github.com/greenloop/cleanearth/internal/observability"
	"github.com/greenloop/cleanearth/internal/server/http/handlers"
	"github.com/greenloop/cleanearth/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.TrackerFacade, photos handlers.PhotoResolver, db handlers.Pinger, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.RequestMetrics())
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/uploads/"})))

	authHandler := handlers.NewAuthHandler(facade)
	cleanupHandler := handlers.NewCleanupHandler(facade)
	reportHandler := handlers.NewReportHandler(facade)
	photoHandler := handlers.NewPhotoHandler(photos)
	healthHandler := handlers.NewHealthHandler(db)

	engine.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/login")
	})
	engine.GET("/healthz", healthHandler.Healthz)
	engine.GET("/metrics", gin.WrapH(observability.Handler()))

	engine.GET("/signup", authHandler.SignupPage)
	engine.POST("/signup", authHandler.Signup)
	engine.GET("/login", authHandler.LoginPage)
	engine.POST("/login", authHandler.Login)

	session := engine.Group("")
	session.Use(middleware.AuthRequired(facade))
	session.GET("/logout", authHandler.Logout)
	session.GET("/dashboard", reportHandler.Dashboard)
	session.GET("/profile", reportHandler.Profile)
	session.GET("/leaderboard", reportHandler.Leaderboard)
	session.GET("/charts", reportHandler.Charts)
	session.GET("/upload", cleanupHandler.UploadPage)
	session.POST("/upload", middleware.BodyLimit(cfg.MaxUploadBytes), cleanupHandler.Upload)
	session.GET("/uploads/:role/:filename", photoHandler.Serve)

	return engine
}
