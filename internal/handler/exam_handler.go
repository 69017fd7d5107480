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

type examAdminService interface {
	List(ctx context.Context) ([]models.Exam, error)
	Create(ctx context.Context, req models.CreateExamRequest) (*models.Exam, error)
	Delete(ctx context.Context, id int64) error
}

// ExamHandler exposes administrative exam management.
type ExamHandler struct {
	service  examAdminService
	exporter exporter
}

// NewExamHandler constructs an ExamHandler.
func NewExamHandler(svc examAdminService, exp exporter) *ExamHandler {
	return &ExamHandler{service: svc, exporter: exp}
}

// List godoc
// @Summary List all exams
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/exams [get]
func (h *ExamHandler) List(c *gin.Context) {
	exams, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, exams, nil)
}

// Create godoc
// @Summary Create an exam
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param payload body models.CreateExamRequest true "Exam"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/exams [post]
func (h *ExamHandler) Create(c *gin.Context) {
	var req models.CreateExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid exam payload"))
		return
	}
	exam, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, exam)
}

// Delete godoc
// @Summary Delete an exam
// @Tags Admin
// @Security BearerAuth
// @Param id path int true "Exam ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /admin/exams/{id} [delete]
func (h *ExamHandler) Delete(c *gin.Context) {
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
// @Summary Export exams
// @Tags Admin
// @Security BearerAuth
// @Produce text/csv,application/pdf
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Router /admin/exams/export [get]
func (h *ExamHandler) Export(c *gin.Context) {
	writeExport(c, h.exporter, service.ExportTableExams)
}
