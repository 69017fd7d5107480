package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-concierge-api/internal/seed"
	"github.com/noah-isme/campus-concierge-api/pkg/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:       "test",
		APIPrefix: "/api/v1",
		Timezone:  "Local",
		Database:  config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:", AutoMigrate: true},
		JWT:       config.JWTConfig{Secret: "test-secret", Issuer: "campus-concierge"},
		Admin:     config.AdminConfig{Email: "admin@campus.local", Password: "s3cret"},
		CORS:      config.CORSConfig{AllowedOrigins: []string{"*"}},
		Resolver:  config.ResolverConfig{Provider: config.ProviderGemini},
		Metrics:   config.MetricsConfig{Enabled: true},
	}
}

func newSeededApp(t *testing.T) (*App, http.Handler) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	a, err := New(context.Background(), testConfig(), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	fixtures, err := seed.Default()
	require.NoError(t, err)
	summary, err := a.Seeder.Run(context.Background(), fixtures, seed.Options{Reset: true})
	require.NoError(t, err)
	require.Equal(t, 5, summary.Events)

	return a, a.Router("test")
}

func do(r http.Handler, method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type listBody struct {
	Data []map[string]any `json:"data"`
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var body listBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Data
}

func TestPublicQueriesOverSeededData(t *testing.T) {
	_, r := newSeededApp(t)

	w := do(r, http.MethodGet, "/api/v1/events/today", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	today := decodeList(t, w)
	require.Len(t, today, 2)
	assert.Equal(t, "10:00 AM", today[0]["time"])
	assert.Equal(t, "2:00 PM", today[1]["time"])

	w = do(r, http.MethodGet, "/api/v1/events?category=technical", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	for _, e := range decodeList(t, w) {
		assert.Equal(t, "technical", e["category"])
	}

	w = do(r, http.MethodGet, "/api/v1/exams?department=cse&semester=3", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	exams := decodeList(t, w)
	require.Len(t, exams, 1)
	assert.Equal(t, "Data Structures", exams[0]["subject"])

	w = do(r, http.MethodGet, "/api/v1/placements?department=ECE", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 2)
}

func TestSystemRoutes(t *testing.T) {
	_, r := newSeededApp(t)

	w := do(r, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(r, http.MethodGet, "/ready", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(r, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/v1/chat/tools", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "list_today_events")
}

func TestChatWithoutCredentialsReportsInitFailure(t *testing.T) {
	_, r := newSeededApp(t)

	w := do(r, http.MethodPost, "/api/v1/chat", `{"message":"what's happening today?"}`, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to initialize AI agent")

	w = do(r, http.MethodGet, "/api/v1/chat/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"resolver_ready":false`)
}

func TestAdminFlow(t *testing.T) {
	_, r := newSeededApp(t)

	w := do(r, http.MethodGet, "/api/v1/admin/events", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/api/v1/auth/login", `{"email":"admin@campus.local","password":"s3cret"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	token := login.Data.AccessToken
	require.NotEmpty(t, token)

	w = do(r, http.MethodPost, "/api/v1/admin/events",
		`{"title":"Robotics Expo","category":"sports","date":"2030-01-01","time":"10:00 AM","venue":"Hall","organizer":"Club"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/v1/admin/events",
		`{"title":"Robotics Expo","category":"Technical","date":"2030-01-01","time":"10:00 AM","venue":"Hall","organizer":"Club"}`, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodGet, "/api/v1/admin/events", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	events := decodeList(t, w)
	require.Len(t, events, 6)
	assert.Equal(t, "Robotics Expo", events[0]["title"])
	id := int64(events[0]["id"].(float64))

	w = do(r, http.MethodDelete, "/api/v1/admin/events/"+jsonInt(id), "", token)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(r, http.MethodDelete, "/api/v1/admin/events/"+jsonInt(id), "", token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/api/v1/admin/placements/export?format=csv", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "placements_")
	assert.Contains(t, w.Body.String(), "Infosys")
}

func jsonInt(v int64) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func TestSeedUsesCampusTimezone(t *testing.T) {
	cfg := testConfig()
	cfg.Timezone = "Pacific/Kiritimati"

	ctx := context.Background()
	a, err := New(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	fixtures, err := seed.Default()
	require.NoError(t, err)
	_, err = a.Seeder.Run(ctx, fixtures, seed.Options{Reset: true})
	require.NoError(t, err)

	today, err := a.Query.ListTodayEvents(ctx)
	require.NoError(t, err)
	titles := make([]string, 0, len(today))
	for _, e := range today {
		assert.Equal(t, a.Query.Today(), e.Date)
		titles = append(titles, e.Title)
	}
	assert.ElementsMatch(t, []string{"Tech Talk on AI and Machine Learning", "Annual Cultural Fest - Day 1"}, titles)
}
