package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chartserver_http_requests_total",
		Help: "HTTP requests by route, method and status code.",
	}, []string{"route", "method", "status"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chartserver_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	DatasetsWritten = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chartserver_datasets_written_total",
		Help: "Datasets written by source (create, upload, seed).",
	}, []string{"source"})

	ChartsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chartserver_charts_generated_total",
		Help: "Chart configurations generated by chart kind.",
	}, []string{"kind"})
)

// Middleware records request count and latency per matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		RequestsTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		RequestDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
