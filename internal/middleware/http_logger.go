package middleware

import (
	"bytes"
	"io"
	"net/url"
	"time"

	"github.com/mohadmed-adel/firebase-query-server/internal/helper"
	"github.com/mohadmed-adel/firebase-query-server/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func HTTPLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip health checks
		if c.Request.URL.Path == "/api/health" {
			c.Next()
			return
		}

		requestID := helper.GenerateUID()
		c.Set("request_id", requestID)
		c.Header("X-Request-Id", requestID)

		// Capture request
		start := time.Now()
		reqBody := readBody(c.Request.Body)
		queryParams := c.Request.URL.Query()
		c.Request.Body = io.NopCloser(bytes.NewBuffer(reqBody)) // Reset for Gin

		// Capture response
		blw := &bodyLogWriter{body: bytes.NewBuffer(nil), ResponseWriter: c.Writer}
		c.Writer = blw

		// Process request
		c.Next()

		latency := time.Since(start)
		resStatus := c.Writer.Status()

		logEvent := logger.AppLogger.Info().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("route", c.FullPath()).
			Int("status", resStatus).
			Dur("latency_ms", latency).
			Str("client_ip", c.ClientIP())

		if len(c.Errors) > 0 {
			logEvent = logEvent.Strs("errors", c.Errors.Errors())
		}

		logEvent.Msg("request_processed")

		logger.HttpLogger.Info().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", resStatus).
			Str("client_ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Str("referrer", c.Request.Referer()).
			Dict("query_params", logDictFromValues(queryParams)).
			Str("request_body", string(reqBody)).
			Str("response_body", blw.body.String()).
			Msg("http_trace")
	}
}

// Helpers (keep these private to the package)
func readBody(body io.ReadCloser) []byte {
	if body == nil {
		return nil
	}
	b, _ := io.ReadAll(body)
	return b
}

type bodyLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyLogWriter) Write(b []byte) (int, error) {
	if w.body != nil {
		w.body.Write(b) // Force capture
	}
	return w.ResponseWriter.Write(b)
}

func logDictFromValues(values url.Values) *zerolog.Event {
	dict := zerolog.Dict()
	for k, v := range values {
		dict.Strs(k, v)
	}
	return dict
}
