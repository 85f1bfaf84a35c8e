package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) mapHandlers() {
	s.engine.Use(gin.Recovery())
	s.engine.Use(requestID())

	s.engine.GET("/health", s.healthCheck)

	// The chat channel gets its own rate limit; the Cloud API retries
	// aggressively on slow responses.
	webhook := s.engine.Group("/webhook", rateLimit(5, 10))
	webhook.GET("", s.verifyWebhook)
	webhook.POST("", s.receiveWebhook)

	api := s.engine.Group("/api")
	{
		api.GET("/tasks", s.listTasks)
		api.POST("/tasks", s.createTask)
		api.PUT("/tasks/:id", s.updateTask)
		api.PATCH("/tasks/:id/toggle", s.toggleTask)
		api.DELETE("/tasks/:id", s.deleteTask)

		api.GET("/categories", s.listCategories)
		api.POST("/categories", s.createCategory)
		api.DELETE("/categories/:id", s.deleteCategory)
	}
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
