package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/campus-concierge-api/pkg/errors"
	"github.com/noah-isme/campus-concierge-api/pkg/response"
)

// ServiceName is reported by the info and health endpoints.
const ServiceName = "AI Campus Concierge"

// Pinger checks a backing dependency.
type Pinger func(ctx context.Context) error

// SystemHandler serves service info, liveness and readiness.
type SystemHandler struct {
	version   string
	apiPrefix string
	ping      Pinger
}

// NewSystemHandler constructs a SystemHandler.
func NewSystemHandler(version, apiPrefix string, ping Pinger) *SystemHandler {
	return &SystemHandler{version: version, apiPrefix: apiPrefix, ping: ping}
}

// Root describes the service and its main endpoints.
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": ServiceName,
		"version": h.version,
		"endpoints": gin.H{
			"chat":       h.apiPrefix + "/chat",
			"events":     h.apiPrefix + "/events",
			"today":      h.apiPrefix + "/events/today",
			"exams":      h.apiPrefix + "/exams",
			"placements": h.apiPrefix + "/placements",
			"health":     "/health",
			"docs":       "/docs/index.html",
		},
	})
}

// Health godoc
// @Summary Liveness probe
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": ServiceName})
}

// Ready godoc
// @Summary Readiness probe
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} response.Envelope
// @Router /ready [get]
func (h *SystemHandler) Ready(c *gin.Context) {
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			response.Error(c, appErrors.Wrap(err, "NOT_READY", http.StatusServiceUnavailable, "database unavailable"))
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
