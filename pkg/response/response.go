package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Resp is the uniform error envelope returned by every failing endpoint.
type Resp struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// DefaultErrorMessage hides internals on unexpected failures.
const DefaultErrorMessage = "Internal server error"

// OK sends 200 with the given payload as-is.
func OK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// Created sends 201 with the given payload as-is.
func Created(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

// BadRequest sends 400 with the error message.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Resp{Success: false, Error: msg})
}

// BadRequestDetails sends 400 with the error message and structured details,
// e.g. the per-field violation list from schema validation.
func BadRequestDetails(c *gin.Context, msg string, details any) {
	c.JSON(http.StatusBadRequest, Resp{Success: false, Error: msg, Details: details})
}

// NotFound sends 404 with the error message.
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, Resp{Success: false, Error: msg})
}

// BadGateway sends 502 for upstream LLM failures.
func BadGateway(c *gin.Context, msg string) {
	c.JSON(http.StatusBadGateway, Resp{Success: false, Error: msg})
}

// TooManyRequests sends 429 when the rate limiter rejects a client.
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, Resp{Success: false, Error: "rate limit exceeded"})
}

// InternalError sends 500 without leaking the underlying error.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Resp{Success: false, Error: DefaultErrorMessage})
}
