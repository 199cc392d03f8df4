package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"life-manager/internal/model"
	"life-manager/pkg/response"
)

// Process godoc
// @Summary     Process a transcription
// @Description Runs a transcription through LLM extraction and persists the structured task when one is found.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body processReq true "Transcription with optional metadata"
// @Success     200 {object} processResp "Valid input that contains no task"
// @Success     201 {object} processResp "Task extracted (saved flag reports persistence outcome)"
// @Failure     400 {object} response.Resp "Validation error or rejected model output"
// @Failure     502 {object} processResp "Upstream model failure"
// @Router      /api/tasks/process [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProcessReq(c)
	if err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	output, err := h.uc.Process(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		h.respondError(c, err)
		return
	}

	resp := newProcessResp(output)
	switch {
	case !output.Result.Success && output.Result.Upstream:
		c.JSON(http.StatusBadGateway, resp)
	case !output.Result.Success:
		c.JSON(http.StatusBadRequest, resp)
	case output.Result.IsTask:
		// 201 even when persistence failed: the extraction itself
		// succeeded and the body carries saved=false with the reason.
		response.Created(c, resp)
	default:
		response.OK(c, resp)
	}
}

// BatchProcess godoc
// @Summary     Process a batch of transcriptions
// @Description Runs up to 10 transcriptions through the pipeline sequentially. Per-item failures are reported in the results array and never abort the batch.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body batchReq true "Transcriptions to process (1-10)"
// @Success     200 {object} batchResp
// @Failure     400 {object} response.Resp "Empty or oversized batch"
// @Router      /api/tasks/batch-process [POST]
func (h *handler) BatchProcess(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBatchReq(c)
	if err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	output, err := h.uc.BatchProcess(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.BatchProcess: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newBatchResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns a page of persisted tasks, newest first, with optional equality filters.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       status    query string false "Filter by status (pending/in_progress/completed/cancelled)"
// @Param       section   query string false "Filter by section"
// @Param       intensity query int    false "Filter by intensity (1-10)"
// @Param       userId    query string false "Filter by owner"
// @Param       page      query int    false "Page number (default: 1)"
// @Param       perPage   query int    false "Page size (default: 20, max: 100)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newListResp(output))
}

// Detail godoc
// @Summary     Get one task
// @Description Returns a single task by its record id.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "id is required")
		return
	}

	t, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, detailResp{Success: true, Task: t})
}

// UpdateStatus godoc
// @Summary     Update a task's status
// @Description Transitions a task to a new status. This is the only mutation allowed after creation.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body statusReq true "New status"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Invalid status value"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks/{id}/status [PATCH]
func (h *handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "id is required")
		return
	}

	req, err := h.processStatusReq(c)
	if err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	t, err := h.uc.UpdateStatus(ctx, id, model.Status(req.Status))
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateStatus: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, detailResp{Success: true, Task: t})
}
