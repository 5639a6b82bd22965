package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/bookcatalog/internal/server/http/dto"
)

// HealthHandler serves GET /healthz.
type HealthHandler struct {
	checker HealthChecker
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(checker HealthChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// Check reports 200 when the database answers and 503 otherwise.
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.checker.HealthCheck(c.Request.Context()); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, dto.StatusResponse{Status: "unavailable"})
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "ok"})
}
