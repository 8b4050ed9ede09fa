package http

import (
	"github.com/gin-gonic/gin"

	"ai-daily-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Schedule generation calls an external model, so it is rate limited
// per client IP.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	p := rg.Group("/planner")
	{
		p.POST("/tasks", h.AddTask)
		p.GET("/tasks", h.ListTasks)
		p.DELETE("/tasks/:index", h.RemoveTask)

		p.PUT("/window", h.SetWindow)

		p.POST("/schedule/generate", mw.RateLimit(), h.Generate)
		p.GET("/schedule", h.LastSchedule)
		p.GET("/schedule/analytics", h.Analytics)
		p.POST("/schedule/export", h.Export)
	}
}
