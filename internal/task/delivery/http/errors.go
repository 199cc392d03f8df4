package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"life-manager/internal/task"
	"life-manager/internal/task/schema"
	"life-manager/pkg/response"
)

// respondError translates domain errors into HTTP responses. Schema
// violations carry the full field list so clients can report every problem
// at once; anything unrecognized becomes an opaque 500.
func (h *handler) respondError(c *gin.Context, err error) {
	var ve *schema.ValidationError
	if errors.As(err, &ve) {
		response.BadRequestDetails(c, "Validation error", ve.Fields)
		return
	}

	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, task.ErrInvalidStatus),
		errors.Is(err, task.ErrEmptyBatch),
		errors.Is(err, task.ErrBatchTooLarge):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c)
	}
}
