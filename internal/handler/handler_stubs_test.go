package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-concierge-api/internal/models"
	"github.com/noah-isme/campus-concierge-api/internal/service"
	"github.com/noah-isme/campus-concierge-api/internal/tools"
)

type querierStub struct {
	today      string
	events     []models.Event
	exams      []models.Exam
	placements []models.Placement
	err        error

	lastEventQuery     models.EventQuery
	lastExamQuery      models.ExamQuery
	lastPlacementQuery models.PlacementQuery
	todayCalls         int
}

func (s *querierStub) Today() string { return s.today }

func (s *querierStub) ListEvents(ctx context.Context, q models.EventQuery) ([]models.Event, error) {
	s.lastEventQuery = q
	return s.events, s.err
}

func (s *querierStub) ListTodayEvents(ctx context.Context) ([]models.Event, error) {
	s.todayCalls++
	return s.events, s.err
}

func (s *querierStub) ListExams(ctx context.Context, q models.ExamQuery) ([]models.Exam, error) {
	s.lastExamQuery = q
	return s.exams, s.err
}

func (s *querierStub) ListPlacements(ctx context.Context, q models.PlacementQuery) ([]models.Placement, error) {
	s.lastPlacementQuery = q
	return s.placements, s.err
}

type chatServiceStub struct {
	resp     models.ChatResponse
	err      error
	received string
	tools    []*tools.Tool
}

func (s *chatServiceStub) Ask(ctx context.Context, message string) (models.ChatResponse, error) {
	s.received = message
	return s.resp, s.err
}

func (s *chatServiceStub) Health() service.ChatHealth {
	names := make([]string, 0, len(s.tools))
	for _, tool := range s.tools {
		names = append(names, tool.Name)
	}
	return service.ChatHealth{Status: "healthy", Service: "AI Chat", ResolverReady: true, Tools: names}
}

func (s *chatServiceStub) Tools() []*tools.Tool { return s.tools }

type eventAdminStub struct {
	rows      []models.Event
	createErr error
	deleteErr error
	created   models.CreateEventRequest
	deleted   int64
}

func (s *eventAdminStub) List(ctx context.Context) ([]models.Event, error) { return s.rows, nil }

func (s *eventAdminStub) Create(ctx context.Context, req models.CreateEventRequest) (*models.Event, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = req
	return &models.Event{ID: 11, Title: req.Title, Category: req.Category, Date: req.Date}, nil
}

func (s *eventAdminStub) Delete(ctx context.Context, id int64) error {
	s.deleted = id
	return s.deleteErr
}

type exporterStub struct {
	table  service.ExportTable
	format service.ExportFormat
	err    error
}

func (s *exporterStub) Export(ctx context.Context, table service.ExportTable, format service.ExportFormat) (*service.ExportFile, error) {
	s.table, s.format = table, format
	if s.err != nil {
		return nil, s.err
	}
	return &service.ExportFile{
		Filename:    string(table) + "_20250601_100000." + string(format),
		ContentType: "text/csv",
		Payload:     []byte("id,title\n1,Hackathon\n"),
	}, nil
}

type authServiceStub struct {
	resp *models.LoginResponse
	err  error
	req  models.LoginRequest
}

func (s *authServiceStub) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	s.req = req
	return s.resp, s.err
}

func perform(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

type metricsStub struct {
	snapshot models.SystemMetrics
}

func (m metricsStub) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("concierge_http_requests_total 1\n"))
	})
}

func (m metricsStub) Snapshot() models.SystemMetrics { return m.snapshot }
