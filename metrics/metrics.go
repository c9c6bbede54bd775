// Package metrics holds the Prometheus collectors for the storefront and admin page.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"Gin_redis_dress_rental/db"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry  *prometheus.Registry
	requests  *prometheus.CounterVec
	latency   *prometheus.HistogramVec
	mutations *prometheus.CounterVec
}

// New registers the collectors on a private registry so tests can build as many as they like.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "missingfit_http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "missingfit_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "missingfit_catalog_mutations_total",
			Help: "Catalog mutations by operation and result.",
		}, []string{"op", "result"}),
	}
	m.registry.MustRegister(m.requests, m.latency, m.mutations)
	return m
}

// Middleware records every request against its route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.latency.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// ObserveMutation is installed on the store as its mutation hook.
func (m *Metrics) ObserveMutation(op db.Op, err error) {
	m.mutations.WithLabelValues(string(op), result(err)).Inc()
}

func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

func result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, db.ErrItemNotFound), errors.Is(err, db.ErrRentalNotFound):
		return "not_found"
	default:
		return "rejected"
	}
}
