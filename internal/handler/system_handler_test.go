package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-concierge-api/internal/models"
	appErrors "github.com/noah-isme/campus-concierge-api/pkg/errors"
)

func TestSystemHandlerHealthAndRoot(t *testing.T) {
	h := NewSystemHandler("1.0.0", "/api/v1", nil)
	r := newTestRouter()
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.GET("/ready", h.Ready)

	w := perform(r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"AI Campus Concierge"}`, w.Body.String())

	w = perform(r, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/api/v1/chat"`)
	assert.Contains(t, w.Body.String(), `"version":"1.0.0"`)

	w = perform(r, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSystemHandlerReadyReportsDatabaseFailure(t *testing.T) {
	h := NewSystemHandler("1.0.0", "/api/v1", func(ctx context.Context) error { return errors.New("connection refused") })
	r := newTestRouter()
	r.GET("/ready", h.Ready)

	w := perform(r, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "database unavailable")
}

func TestAuthHandlerLogin(t *testing.T) {
	issued := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	svc := &authServiceStub{resp: &models.LoginResponse{AccessToken: "token", TokenType: "Bearer", ExpiresIn: 3600, IssuedAt: issued}}
	r := newTestRouter()
	r.POST("/auth/login", NewAuthHandler(svc).Login)

	w := perform(r, http.MethodPost, "/auth/login", `{"email":"admin@campus.local","password":"secret"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin@campus.local", svc.req.Email)
	assert.Contains(t, w.Body.String(), `"access_token":"token"`)

	w = perform(r, http.MethodPost, "/auth/login", `{`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.err = appErrors.ErrInvalidCredentials
	w = perform(r, http.MethodPost, "/auth/login", `{"email":"admin@campus.local","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMetricsHandlerEndpoints(t *testing.T) {
	h := NewMetricsHandler(metricsStub{snapshot: models.SystemMetrics{RequestsTotal: 3, ToolCalls: 2}})
	r := newTestRouter()
	r.GET("/metrics", h.Prometheus)
	r.GET("/admin/metrics", h.Snapshot)

	w := perform(r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "concierge_http_requests_total")

	w = perform(r, http.MethodGet, "/admin/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"requests_total":3`)
	assert.Contains(t, w.Body.String(), `"tool_calls":2`)
}
