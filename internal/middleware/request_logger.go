package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soundhaus/locale-service/internal/domain/model"
	"github.com/soundhaus/locale-service/internal/logger"
	"github.com/soundhaus/locale-service/internal/service"
)

// RequestLogger returns a middleware that logs HTTP request details in JSON format.
// It logs: request ID, method, path, status code, latency, IP, and user agent.
// When a reporter is provided, a request summary event is recorded through
// its worker pool so database writes never block the response.
func RequestLogger(reporter *service.AsyncReporter) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := GetRequestID(c)

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		method := c.Request.Method
		path := c.Request.URL.Path
		ip := c.ClientIP()
		userAgent := c.Request.UserAgent()

		log := logger.Logger().With().
			Str("request_id", requestID).
			Str("method", method).
			Str("path", path).
			Int("status_code", statusCode).
			Int64("duration_ms", latency.Milliseconds()).
			Str("ip", ip).
			Str("user_agent", userAgent).
			Logger()

		// Log level based on status code
		switch {
		case statusCode >= 500:
			log.Error().Msg("HTTP request")
		case statusCode >= 400:
			log.Warn().Msg("HTTP request")
		default:
			log.Info().Msg("HTTP request")
		}

		if reporter != nil {
			event := model.NewEvent(model.EventHTTPRequest).
				WithLocale(GetLocale(c)).
				WithField("method", method).
				WithField("path", path).
				WithField("status_code", statusCode).
				WithField("duration_ms", latency.Milliseconds()).
				WithField("ip", ip).
				WithField("user_agent", userAgent)
			event.RequestID = requestID
			reporter.Report(event)
		}
	}
}
