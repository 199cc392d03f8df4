package http

import (
	"github.com/gin-gonic/gin"

	"life-manager/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The
// processing endpoints go behind the rate limiter since each one costs an
// upstream model call.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("/process", mw.RateLimit(), h.Process)
		tasks.POST("/batch-process", mw.RateLimit(), h.BatchProcess)
		tasks.GET("", h.List)
		tasks.GET("/:id", h.Detail)
		tasks.PATCH("/:id/status", h.UpdateStatus)
	}
}
