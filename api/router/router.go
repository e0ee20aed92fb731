package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"social-agent/api/handlers"
	"social-agent/api/middleware"
	_ "social-agent/docs"
	"social-agent/services"
	"social-agent/session"
)

func New(svc *services.ContentService, store *session.Store, providerName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "agent_provider": providerName})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.POST("/sessions", handlers.CreateSessionHandler(store))
		api.POST("/sessions/:id/generate", handlers.GenerateContentHandler(svc))
		api.GET("/sessions/:id/history", handlers.HistoryHandler(svc))
		api.DELETE("/sessions/:id/history", handlers.ClearHistoryHandler(svc))
		api.GET("/sessions/:id/stats", handlers.SessionStatsHandler(svc))
		api.DELETE("/sessions/:id/records/:recordID", handlers.DeleteRecordHandler(svc))
		api.GET("/sessions/:id/records/:recordID/export", handlers.ExportRecordHandler(svc))
		api.GET("/sessions/:id/records/:recordID/preview", handlers.PreviewRecordHandler(svc))

		api.GET("/platforms", handlers.PlatformOptionsHandler())
		api.GET("/platforms/:platform/limits", handlers.PlatformLimitsHandler())
		api.POST("/validate", handlers.ValidateInputHandler())
		api.POST("/hashtags", handlers.FormatHashtagsHandler())
	}

	return r
}
