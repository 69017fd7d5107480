package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Audit logs successful admin writes together with the acting administrator.
// Reads pass through unlogged.
func Audit(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		if status >= http.StatusBadRequest {
			return
		}

		actor := ""
		if claims := ClaimsFromContext(c); claims != nil {
			actor = claims.Email
		}
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		logger.Info("admin change",
			zap.String("actor", actor),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("id", c.Param("id")),
			zap.Int("status", status),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
