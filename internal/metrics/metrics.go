// Package metrics provides Prometheus metrics collection for the locale service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// TranslationLookupsTotal tracks translation lookups by locale and outcome.
	TranslationLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "translation_lookups_total",
			Help: "Total number of translation lookups",
		},
		[]string{"locale", "source"},
	)

	// LocaleSwitchesTotal tracks locale switch attempts by result.
	LocaleSwitchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "locale_switches_total",
			Help: "Total number of locale switch attempts",
		},
		[]string{"result"},
	)

	// BundleLoadsTotal tracks bundle loads by source and result.
	BundleLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bundle_loads_total",
			Help: "Total number of translation bundle loads",
		},
		[]string{"source", "result"},
	)

	// CacheOperationsTotal tracks resolution cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of resolution cache operations",
		},
		[]string{"operation", "result"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordTranslationLookup records one resolver lookup.
func RecordTranslationLookup(locale, source string) {
	TranslationLookupsTotal.WithLabelValues(locale, source).Inc()
}

// RecordLocaleSwitch records one locale switch attempt.
func RecordLocaleSwitch(result string) {
	LocaleSwitchesTotal.WithLabelValues(result).Inc()
}

// RecordBundleLoad records one bundle load.
func RecordBundleLoad(source, result string) {
	BundleLoadsTotal.WithLabelValues(source, result).Inc()
}

// RecordCacheOperation records one resolution cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}
