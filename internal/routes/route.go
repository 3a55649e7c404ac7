package routes

import (
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventsphere/internal/container"
	"github.com/joshua-takyi/eventsphere/internal/handlers"
	"github.com/joshua-takyi/eventsphere/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.New()

	if len(container.AllowedOrigins) == 0 || slices.Contains(container.AllowedOrigins, "*") {
		r.Use(middleware.CORS())
	} else {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     container.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID", handlers.VisitorHeader},
			ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
			AllowCredentials: true,
		}))
	}

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	// The signup page posts here directly, outside the versioned api.
	r.Any("/api/send-client-email", handlers.SendClientEmail(container.MailService))

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", handlers.Health())
		v1.GET("/navigation", handlers.Navigation())
		v1.GET("/news", handlers.ListNews(container.NewsService))

		v1.POST("/sessions", handlers.CreateSession(container.Sessions))

		forms := v1.Group("/forms")
		{
			forms.GET("/event/options", handlers.EventFormOptions(container.EventService))
			forms.POST("/event", handlers.CreateEvent(container.EventService))
			forms.POST("/client", handlers.CreateClient(container.ClientService))
		}
	}

	session := v1.Group("/sessions/:sid")
	session.Use(middleware.RequireSession(container.Sessions))
	{
		session.GET("/feed", handlers.GetFeed())
		session.POST("/feed/refresh", handlers.RefreshFeed())
		session.POST("/feed/reset", handlers.ResetFeed())
		session.POST("/events/:id/toggle", handlers.ToggleEvent())
		session.POST("/events/:id/comments", handlers.PostComment())
		session.POST("/sections/:section/toggle", handlers.ToggleSection())

		session.GET("/theme", handlers.GetTheme())
		session.POST("/theme/toggle", handlers.ToggleTheme())
	}

	return r
}
