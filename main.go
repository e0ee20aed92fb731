package main

import (
	"log"
	"net/http"

	"github.com/rs/cors"

	"social-agent/agent"
	"social-agent/api/router"
	"social-agent/config"
	_ "social-agent/docs" // swag will generate this package
	"social-agent/logger"
	"social-agent/quota"
	"social-agent/services"
	"social-agent/session"
)

// @title           Social Agent API
// @version         1.0
// @description     Backend for the browser-based social media content assistant
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	provider, err := agent.NewProviderFromConfig(cfg)
	if err != nil {
		log.Fatal("failed to initialize agent provider: ", err)
	}

	store := session.NewStore()
	limiter := quota.NewGenerationQuotaLimiterFromConfig(cfg)
	svc := services.NewContentService(provider, store, limiter)

	r := router.New(svc, store, provider.Name())

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
	})

	logger.Log.Infof("listening on %s (agent provider: %s)", cfg.Server.Addr, provider.Name())
	if err := http.ListenAndServe(cfg.Server.Addr, corsHandler.Handler(r)); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
