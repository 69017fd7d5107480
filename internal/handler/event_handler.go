package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-concierge-api/internal/models"
	"github.com/noah-isme/campus-concierge-api/internal/service"
	appErrors "github.com/noah-isme/campus-concierge-api/pkg/errors"
	"github.com/noah-isme/campus-concierge-api/pkg/response"
)

type eventAdminService interface {
	List(ctx context.Context) ([]models.Event, error)
	Create(ctx context.Context, req models.CreateEventRequest) (*models.Event, error)
	Delete(ctx context.Context, id int64) error
}

// EventHandler exposes administrative event management.
type EventHandler struct {
	service  eventAdminService
	exporter exporter
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(svc eventAdminService, exp exporter) *EventHandler {
	return &EventHandler{service: svc, exporter: exp}
}

// List godoc
// @Summary List all events
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/events [get]
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, events, nil)
}

// Create godoc
// @Summary Create an event
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param payload body models.CreateEventRequest true "Event"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid event payload"))
		return
	}
	event, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, event)
}

// Delete godoc
// @Summary Delete an event
// @Tags Admin
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /admin/events/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Export godoc
// @Summary Export events
// @Tags Admin
// @Security BearerAuth
// @Produce text/csv,application/pdf
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Router /admin/events/export [get]
func (h *EventHandler) Export(c *gin.Context) {
	writeExport(c, h.exporter, service.ExportTableEvents)
}
