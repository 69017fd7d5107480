package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-concierge-api/internal/models"
	"github.com/noah-isme/campus-concierge-api/pkg/response"
)

type metricsSource interface {
	Handler() http.Handler
	Snapshot() models.SystemMetrics
}

// MetricsHandler serves the Prometheus scrape endpoint and the admin summary.
type MetricsHandler struct {
	metrics metricsSource
}

func NewMetricsHandler(metrics metricsSource) *MetricsHandler {
	return &MetricsHandler{metrics: metrics}
}

// Prometheus delegates to the registry handler, which answers 503 when metrics are disabled.
func (h *MetricsHandler) Prometheus(c *gin.Context) {
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Snapshot godoc
// @Summary Runtime metrics snapshot
// @Description Request, cache, database and tool-call aggregates since process start.
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope{data=models.SystemMetrics}
// @Router /admin/metrics [get]
func (h *MetricsHandler) Snapshot(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.metrics.Snapshot())
}
