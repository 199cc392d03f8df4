package http

import (
	"github.com/gin-gonic/gin"
)

// processProcessReq binds the single-transcription request body.
func (h *handler) processProcessReq(c *gin.Context) (processReq, error) {
	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListReq binds the listing query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processBatchReq binds the batch request body.
func (h *handler) processBatchReq(c *gin.Context) (batchReq, error) {
	var req batchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processStatusReq binds the status-update request body.
func (h *handler) processStatusReq(c *gin.Context) (statusReq, error) {
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
