package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/singhsaravjit/portfolio-assistant/internal/common"
	"github.com/singhsaravjit/portfolio-assistant/internal/httpapi/handlers"
	"github.com/singhsaravjit/portfolio-assistant/internal/httpapi/middleware"
)

func NewRouter(h *handlers.Handler) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())

	r.NoRoute(func(c *gin.Context) {
		common.Fail(c, http.StatusNotFound, 40400, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		common.Fail(c, http.StatusMethodNotAllowed, 40500, "method not allowed")
	})

	r.GET("/ping", h.Ping)

	// Conversation
	r.GET("/chat/quick-actions", h.ListQuickActions)
	r.POST("/chat/sessions", h.CreateChatSession)
	r.GET("/chat/sessions/:session_id", h.GetChatSession)
	r.POST("/chat/messages", h.SendChatMessage)
	r.POST("/chat/sessions/:session_id/quick-actions", h.RunQuickAction)
	r.POST("/chat/sessions/:session_id/toggle", h.ToggleChatPanel)
	r.POST("/chat/sessions/:session_id/close", h.CloseChatPanel)
	r.DELETE("/chat/sessions/:session_id", h.DeleteChatSession)

	// Profile data plane
	r.GET("/profile/:section", h.GetProfileSection)

	// Admin
	r.POST("/admin/login", h.AdminLogin)
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.AuthRequired(h.Cfg.JWTSecret))
	adminGroup.PUT("/profile/:section", h.UpdateProfileSection)

	return r
}
