package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"voicepay/handlers"
)

// RegisterAgentRoutes registers the assistant-facing endpoints.
func RegisterAgentRoutes(r *gin.Engine, h *handlers.AssistantHandler) {
	agent := r.Group("/agent")
	{
		agent.GET("/invoices/:userId", h.ListInvoices)
		agent.GET("/search", h.Search)
		agent.POST("/pay", h.Pay)
		agent.POST("/intent", h.CreateIntent)
	}
}

// RegisterServiceRoutes registers the banner and health-check endpoints.
func RegisterServiceRoutes(r *gin.Engine, backendURL string) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Agent service running",
			"backend": backendURL,
		})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "backend": backendURL})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, h *handlers.AssistantHandler, backendURL string) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterServiceRoutes(r, backendURL)
	RegisterAgentRoutes(r, h)
}
