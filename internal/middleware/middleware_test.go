package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-concierge-api/internal/models"
	"github.com/noah-isme/campus-concierge-api/internal/service"
	appErrors "github.com/noah-isme/campus-concierge-api/pkg/errors"
)

type validatorStub struct {
	claims *models.JWTClaims
}

func (v validatorStub) ValidateToken(token string) (*models.JWTClaims, error) {
	if token != "good" || v.claims == nil {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token")
	}
	return v.claims, nil
}

func newProtectedRouter(v TokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", JWT(v), RequireRoles(models.RoleAdmin), func(c *gin.Context) {
		c.String(http.StatusOK, ClaimsFromContext(c).Email)
	})
	return r
}

func TestJWTAndRoles(t *testing.T) {
	tests := []struct {
		name   string
		header string
		claims *models.JWTClaims
		status int
	}{
		{name: "missing header", status: http.StatusUnauthorized},
		{name: "malformed header", header: "Token good", status: http.StatusUnauthorized},
		{name: "empty bearer", header: "Bearer  ", claims: &models.JWTClaims{Role: models.RoleAdmin}, status: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer bad", claims: &models.JWTClaims{Role: models.RoleAdmin}, status: http.StatusUnauthorized},
		{name: "wrong role", header: "Bearer good", claims: &models.JWTClaims{Role: "STUDENT"}, status: http.StatusForbidden},
		{name: "admin", header: "Bearer good", claims: &models.JWTClaims{Role: models.RoleAdmin, Email: "admin@campus.local"}, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newProtectedRouter(validatorStub{claims: tt.claims})
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestRequireRolesWithoutJWT(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", RequireRoles(models.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMetricsMiddlewareRecordsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics := service.NewMetricsService()
	r := gin.New()
	r.Use(Metrics(metrics))
	r.GET("/events", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	snap := metrics.Snapshot()
	assert.Equal(t, uint64(3), snap.RequestsTotal)
	assert.WithinDuration(t, time.Now(), snap.GeneratedAt, time.Minute)
}

func TestMetricsMiddlewareSkipsScrapesAndLabelsUnmatched(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics := service.NewMetricsService()
	r := gin.New()
	r.Use(Metrics(metrics, "/metrics"))
	r.GET("/metrics", func(c *gin.Context) { metrics.Handler().ServeHTTP(c.Writer, c.Request) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/no/such/route/42", nil))
	assert.Equal(t, uint64(1), metrics.Snapshot().RequestsTotal)

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `path="unmatched"`)
	assert.NotContains(t, rec.Body.String(), "/no/such/route/42")
}
