package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusMiddleware holds the service's prometheus metrics.
type PrometheusMiddleware struct {
	requestCount       *prometheus.CounterVec
	conversionCount    *prometheus.CounterVec
	conversionDuration prometheus.Histogram
}

// NewPrometheusMiddleware creates the middleware and registers its metrics
// with the given registerer.
func NewPrometheusMiddleware(reg prometheus.Registerer) (*PrometheusMiddleware, error) {
	m := &PrometheusMiddleware{
		requestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests processed.",
			},
			[]string{"method", "path", "status"},
		),
		conversionCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "conversions_total",
				Help: "Total number of document conversions by outcome.",
			},
			[]string{"status"},
		),
		conversionDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name: "conversion_duration_seconds",
				Help: "End-to-end conversion pipeline duration.",
				// Browser launch dominates; buckets reach well past a minute.
				Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 60, 90},
			},
		),
	}

	for _, c := range []prometheus.Collector{m.requestCount, m.conversionCount, m.conversionDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Handler returns the fiber middleware handler counting HTTP requests.
func (m *PrometheusMiddleware) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Exclude /metrics from being counted
		if c.Path() == "/metrics" {
			return c.Next()
		}

		err := c.Next()

		// Route pattern rather than the raw path, falling back for 404s
		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}

		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		m.requestCount.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()

		return err
	}
}

// ObserveConversion records one finished conversion attempt.
func (m *PrometheusMiddleware) ObserveConversion(status string, d time.Duration) {
	m.conversionCount.WithLabelValues(status).Inc()
	m.conversionDuration.Observe(d.Seconds())
}
