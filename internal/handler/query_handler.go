package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-concierge-api/internal/models"
	appErrors "github.com/noah-isme/campus-concierge-api/pkg/errors"
	"github.com/noah-isme/campus-concierge-api/pkg/response"
)

type campusQuerier interface {
	Today() string
	ListEvents(ctx context.Context, q models.EventQuery) ([]models.Event, error)
	ListTodayEvents(ctx context.Context) ([]models.Event, error)
	ListExams(ctx context.Context, q models.ExamQuery) ([]models.Exam, error)
	ListPlacements(ctx context.Context, q models.PlacementQuery) ([]models.Placement, error)
}

// QueryHandler exposes the read-only campus lookups.
type QueryHandler struct {
	service campusQuerier
}

// NewQueryHandler constructs a QueryHandler.
func NewQueryHandler(svc campusQuerier) *QueryHandler {
	return &QueryHandler{service: svc}
}

// Events godoc
// @Summary List events
// @Description Events on an exact date, or from today through days_ahead (default 7). Unknown categories are ignored.
// @Tags Campus
// @Produce json
// @Param date query string false "Exact date (YYYY-MM-DD)"
// @Param category query string false "cultural or technical"
// @Param days_ahead query int false "Look-ahead window in days"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /events [get]
func (h *QueryHandler) Events(c *gin.Context) {
	var q models.EventQuery
	if !bindQuery(c, &q, optionalInts{"days_ahead": &q.DaysAhead}) {
		return
	}
	events, err := h.service.ListEvents(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, events, h.meta())
}

// TodayEvents godoc
// @Summary List today's events
// @Tags Campus
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /events/today [get]
func (h *QueryHandler) TodayEvents(c *gin.Context) {
	events, err := h.service.ListTodayEvents(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, events, h.meta())
}

// Exams godoc
// @Summary List exams
// @Tags Campus
// @Produce json
// @Param department query string false "Department code"
// @Param semester query int false "Semester (1-8)"
// @Param subject query string false "Subject substring"
// @Param days_ahead query int false "Look-ahead window in days"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /exams [get]
func (h *QueryHandler) Exams(c *gin.Context) {
	var q models.ExamQuery
	if !bindQuery(c, &q, optionalInts{"days_ahead": &q.DaysAhead, "semester": &q.Semester}) {
		return
	}
	exams, err := h.service.ListExams(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, exams, h.meta())
}

// Placements godoc
// @Summary List placement drives
// @Tags Campus
// @Produce json
// @Param department query string false "Department substring"
// @Param company query string false "Company substring"
// @Param days_ahead query int false "Look-ahead window in days"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /placements [get]
func (h *QueryHandler) Placements(c *gin.Context) {
	var q models.PlacementQuery
	if !bindQuery(c, &q, optionalInts{"days_ahead": &q.DaysAhead}) {
		return
	}
	placements, err := h.service.ListPlacements(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, placements, h.meta())
}

func (h *QueryHandler) meta() map[string]interface{} {
	return map[string]interface{}{"today": h.service.Today()}
}

// optionalInts maps query parameter names to the *int fields they bind into.
type optionalInts map[string]**int

// bindQuery binds the query string into dst and writes a 400 on failure. Gin
// binds "?days_ahead=" as 0, so parameters sent without a value are reset to unset.
func bindQuery(c *gin.Context, dst any, optional optionalInts) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid query parameters"))
		return false
	}
	for name, field := range optional {
		if strings.TrimSpace(c.Query(name)) == "" {
			*field = nil
		}
	}
	return true
}
