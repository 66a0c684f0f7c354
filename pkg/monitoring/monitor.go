package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	AssessmentsScored = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessments_scored_total",
			Help: "Assessments scored and committed to a learner profile",
		},
		[]string{"assessment", "skill_level"},
	)

	AssessmentPercentage = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "assessment_percentage",
			Help:    "Distribution of assessment percentages",
			Buckets: []float64{20, 40, 65, 80, 100},
		},
		[]string{"assessment"},
	)

	DependencyFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dependency_failures_total",
			Help: "Failed calls to the profile store, course catalog or cache",
		},
		[]string{"dependency"},
	)
)

// Collectors 服务导出的全部指标
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		RequestCounter,
		RequestDuration,
		AssessmentsScored,
		AssessmentPercentage,
		DependencyFailures,
	}
}

var registerOnce sync.Once

// Init 向默认 registry 注册指标，可重复调用
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(Collectors()...)
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
