package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xenia-tech/xenia-backend/internal/database"
	"github.com/xenia-tech/xenia-backend/pkg/logger"
)

const cachePrefix = "xenia:cache:"

type cacheWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *cacheWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Cache serves GET responses from Redis when available. Successful responses
// are stored for ttl; anything non-200 passes through uncached. When Redis is
// down the middleware is a no-op.
func Cache(ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || database.Redis == nil {
			c.Next()
			return
		}

		key := cachePrefix + c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			key += "?" + c.Request.URL.RawQuery
		}

		if data, err := database.CacheGet(key); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", data)
			c.Abort()
			return
		}

		w := &cacheWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = w

		c.Next()

		if w.Status() == http.StatusOK {
			if err := database.CacheSet(key, w.body.Bytes(), ttl); err != nil {
				logger.Warn().Err(err).Str("key", key).Msg("Failed to cache response")
			}
		}
	}
}

// InvalidateEventCache drops every cached event-catalog response. Called on
// admin event mutations so the public catalog never serves stale data.
func InvalidateEventCache() {
	if database.Redis == nil {
		return
	}
	if err := database.CacheInvalidate(cachePrefix + "/api/events*"); err != nil {
		logger.Warn().Err(err).Msg("Failed to invalidate event cache")
	}
}
