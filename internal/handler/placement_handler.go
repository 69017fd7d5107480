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

type placementAdminService interface {
	List(ctx context.Context) ([]models.Placement, error)
	Create(ctx context.Context, req models.CreatePlacementRequest) (*models.Placement, error)
	Delete(ctx context.Context, id int64) error
}

// PlacementHandler exposes administrative placement drive management.
type PlacementHandler struct {
	service  placementAdminService
	exporter exporter
}

// NewPlacementHandler constructs a PlacementHandler.
func NewPlacementHandler(svc placementAdminService, exp exporter) *PlacementHandler {
	return &PlacementHandler{service: svc, exporter: exp}
}

// List godoc
// @Summary List all placement drives
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/placements [get]
func (h *PlacementHandler) List(c *gin.Context) {
	placements, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, placements, nil)
}

// Create godoc
// @Summary Create a placement drive
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param payload body models.CreatePlacementRequest true "Placement drive"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/placements [post]
func (h *PlacementHandler) Create(c *gin.Context) {
	var req models.CreatePlacementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid placement payload"))
		return
	}
	placement, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, placement)
}

// Delete godoc
// @Summary Delete a placement drive
// @Tags Admin
// @Security BearerAuth
// @Param id path int true "Placement ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /admin/placements/{id} [delete]
func (h *PlacementHandler) Delete(c *gin.Context) {
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
// @Summary Export placement drives
// @Tags Admin
// @Security BearerAuth
// @Produce text/csv,application/pdf
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Router /admin/placements/export [get]
func (h *PlacementHandler) Export(c *gin.Context) {
	writeExport(c, h.exporter, service.ExportTablePlacements)
}
