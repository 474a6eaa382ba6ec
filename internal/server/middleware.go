package server

import (
	"time"

	"lot-auction/utils"

	"github.com/gin-gonic/gin"
)

// RequestIDMiddleware reuses a valid incoming X-Request-ID or assigns a new one
func RequestIDMiddleware(c *gin.Context) {
	requestID := utils.RequestID(c.GetHeader(utils.RequestIDKey))
	c.Set(utils.RequestIDKey, requestID)
	c.Header(utils.RequestIDKey, requestID)

	c.Next()
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	fields := map[string]any{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
		"request_id": c.GetString(utils.RequestIDKey),
	}
	if c.Writer.Status() >= 500 {
		utils.Warn("HTTP Request", fields)
		return
	}
	utils.Info("HTTP Request", fields)
}
