package middleware

import (
	"strconv"
	"time"

	"hotel-management/constants"
	"hotel-management/metrics"
	"hotel-management/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDMiddleware tạo request id nếu client chưa gửi và gán vào context lẫn response header
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(constants.ContextRequestIDKey, requestID)
		c.Writer.Header().Set(constants.HeaderRequestID, requestID)

		c.Next()
	}
}

// RequestLogger ghi một dòng log cho mỗi request, kèm lỗi mà handler đã gắn vào context
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := logger.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
			"latency":   time.Since(start).String(),
			"requestId": c.GetString(constants.ContextRequestIDKey),
		}
		if operator := Operator(c); operator != "" {
			fields["operator"] = operator
		}
		entry := log.WithFields(fields)

		switch {
		case c.Writer.Status() >= 500:
			entry.Error("request failed: %s", c.Errors.String())
		case len(c.Errors) > 0:
			entry.Warn("request rejected: %s", c.Errors.String())
		default:
			entry.Info("request handled")
		}
	}
}

// MetricsMiddleware đếm request theo route (không theo path thực) để giữ số label hữu hạn
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
