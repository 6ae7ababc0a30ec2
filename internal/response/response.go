package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sayed725/express-server/pkg/logger"
)

// Envelope is the one response shape every handler renders, success or not.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Path    string `json:"path,omitempty"`
}

// Created renders 201 with the created row.
func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// OK renders 200 with the given payload.
func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// NotFound renders the 404 envelope.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Envelope{Success: false, Message: message})
}

// RouteNotFound renders the 404 envelope for unmatched routes, echoing the path.
func RouteNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Envelope{
		Success: false,
		Message: "Route not found",
		Path:    c.Request.URL.Path,
	})
}

// Unauthorized renders the 401 envelope.
func Unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Envelope{Success: false, Message: message})
}

// Forbidden renders the 403 envelope.
func Forbidden(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusForbidden, Envelope{Success: false, Message: message})
}

// BadRequest renders the 400 envelope.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: message})
}

// Internal logs the failure server-side and renders a redacted 500 envelope.
// The driver error text never reaches the client.
func Internal(c *gin.Context, err error) {
	logger.Error(c.Request.Context(), "Request failed", "error", err,
		"method", c.Request.Method, "path", c.Request.URL.Path)
	c.JSON(http.StatusInternalServerError, Envelope{
		Success: false,
		Message: "Internal server error",
	})
}
