package http

import (
	"github.com/gin-gonic/gin"

	"life-manager/internal/task"
	"life-manager/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Process(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	UpdateStatus(c *gin.Context)
	BatchProcess(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
