package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const (
	maxLogBodySize = 1 << 12 // 4 KB
	maskedValue    = "***"
	omittedBody    = "<unparsable body omitted>"
)

var sensitiveFields = []string{"password"}

func RequestLogGin(logger *zap.Logger, mCounter *prometheus.CounterVec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions ||
			c.Request.URL.Path == "/favicon.ico" ||
			strings.HasSuffix(c.Request.URL.Path, "/metrics") {
			c.Next()
			return
		}

		start := time.Now()

		var body string
		if c.Request != nil && c.Request.Body != nil {
			ct := c.GetHeader("Content-Type")
			if strings.HasPrefix(ct, "multipart/form-data") {
				body = "<multipart/form-data omitted>"
			} else {
				var buf bytes.Buffer
				limited := io.LimitReader(c.Request.Body, maxLogBodySize+1)
				_, _ = io.Copy(&buf, limited)
				rest := c.Request.Body
				c.Request.Body = struct {
					io.Reader
					io.Closer
				}{io.MultiReader(bytes.NewReader(buf.Bytes()), rest), rest}
				raw, truncated := buf.Bytes(), buf.Len() > maxLogBodySize
				if truncated {
					raw = raw[:maxLogBodySize]
				}
				body = maskBody(ct, raw, truncated)
			}
		}

		c.Next()

		if mCounter != nil {
			mCounter.WithLabelValues("app_requests_total").Inc()
		}

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("url", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("body", body),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		)
	}
}

func isSensitive(key string) bool {
	for _, f := range sensitiveFields {
		if strings.EqualFold(key, f) {
			return true
		}
	}
	return false
}

// maskBody hides sensitive values in JSON and urlencoded bodies. A body that
// cannot be parsed whole is never logged verbatim.
func maskBody(contentType string, raw []byte, truncated bool) string {
	switch {
	case strings.HasPrefix(contentType, "application/json"):
		if truncated {
			return omittedBody
		}
		var m map[string]any
		if err := json.Unmarshal(raw, &m); err != nil {
			return omittedBody
		}
		masked := false
		for k := range m {
			if isSensitive(k) {
				m[k] = maskedValue
				masked = true
			}
		}
		if !masked {
			return string(raw)
		}
		b, err := json.Marshal(m)
		if err != nil {
			return omittedBody
		}
		return string(b)
	case strings.HasPrefix(contentType, "application/x-www-form-urlencoded"):
		if truncated {
			return omittedBody
		}
		v, err := url.ParseQuery(string(raw))
		if err != nil {
			return omittedBody
		}
		for k := range v {
			if isSensitive(k) {
				v.Set(k, maskedValue)
			}
		}
		return v.Encode()
	default:
		lower := strings.ToLower(string(raw))
		for _, f := range sensitiveFields {
			if strings.Contains(lower, f) {
				return omittedBody
			}
		}
		if truncated {
			return string(raw) + "..."
		}
		return string(raw)
	}
}
