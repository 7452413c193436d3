package server

import (
	"net/http"

	"mapmygap/internal/config"
	"mapmygap/internal/genai"
	"mapmygap/internal/handlers"
	"mapmygap/internal/metrics"
	"mapmygap/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, ai genai.Invoker) *gin.Engine {
	r := gin.Default()
	r.MaxMultipartMemory = 10 << 20

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("mapmygap_session", store))

	api := handlers.New(ai, cfg)

	// AUTH
	r.POST("/register", api.Register)
	r.POST("/login", api.Login)
	r.POST("/logout", api.Logout)

	// ANALYSIS — anonymous allowed, history recorded only for sessions
	r.POST("/analyze", api.Analyze)
	r.POST("/upload-analyze", api.UploadAnalyze)
	r.POST("/generate-control-text", api.GenerateControlText)

	// HISTORY
	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())
	auth.GET("/history", api.ListHistory)
	auth.DELETE("/history/:id", api.DeleteHistory)

	// DIAGNOSTICS
	r.GET("/test-google-ai", api.TestGoogleAI)
	r.GET("/metrics", metrics.Handler())

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
