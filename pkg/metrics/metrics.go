package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/chloroplast/expense-server/internal/common/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry      *prometheus.Registry
	namespace     string
	httpReqCnt    *prometheus.CounterVec
	httpDur       *prometheus.HistogramVec
	httpInfl      *prometheus.GaugeVec
	loginCnt      *prometheus.CounterVec
	expCreatedCnt *prometheus.CounterVec
	expDeletedCnt prometheus.Counter
}

func New(cfg config.MetricsConfig) *Metrics {
	ns := cfg.Namespace
	if ns == "" {
		ns = "expense_server"
	}
	buckets := cfg.Buckets
	if len(buckets) == 0 {
		buckets = prometheus.DefBuckets
	}

	r := prometheus.NewRegistry()
	// Register standard process and Go collectors
	r.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	r.MustRegister(collectors.NewGoCollector())

	// Register basic HTTP metrics
	httpReqCnt := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "http_requests_total"}, []string{"method", "route", "status"})
	httpDur := prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: ns, Name: "http_request_duration_seconds", Buckets: buckets}, []string{"method", "route", "status"})
	httpInfl := prometheus.NewGaugeVec(prometheus.GaugeOpts{Namespace: ns, Name: "http_requests_inflight"}, []string{"route"})
	r.MustRegister(httpReqCnt, httpDur, httpInfl)

	// Domain metrics
	loginCnt := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "logins_total"}, []string{"kind", "status"})
	expCreatedCnt := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "expenses_created_total"}, []string{"department"})
	expDeletedCnt := prometheus.NewCounter(prometheus.CounterOpts{Namespace: ns, Name: "expenses_deleted_total"})
	r.MustRegister(loginCnt, expCreatedCnt, expDeletedCnt)

	return &Metrics{
		registry:      r,
		namespace:     ns,
		httpReqCnt:    httpReqCnt,
		httpDur:       httpDur,
		httpInfl:      httpInfl,
		loginCnt:      loginCnt,
		expCreatedCnt: expCreatedCnt,
		expDeletedCnt: expDeletedCnt,
	}
}

// IncLogin counts a login attempt per account kind and outcome.
// Safe to call on a nil receiver so metrics stay optional.
func (m *Metrics) IncLogin(kind, status string) {
	if m == nil {
		return
	}
	m.loginCnt.WithLabelValues(kind, status).Inc()
}

// IncExpenseCreated counts a created expense per department
func (m *Metrics) IncExpenseCreated(department string) {
	if m == nil {
		return
	}
	m.expCreatedCnt.WithLabelValues(department).Inc()
}

// IncExpenseDeleted counts a deleted expense
func (m *Metrics) IncExpenseDeleted() {
	if m == nil {
		return
	}
	m.expDeletedCnt.Inc()
}

func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		m.httpInfl.WithLabelValues(route).Inc()
		start := time.Now()
		c.Next()
		status := httpStatus(c.Writer.Status())
		m.httpReqCnt.WithLabelValues(c.Request.Method, route, status).Inc()
		m.httpDur.WithLabelValues(c.Request.Method, route, status).Observe(time.Since(start).Seconds())
		m.httpInfl.WithLabelValues(route).Dec()
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func httpStatus(code int) string { return strconv.Itoa(code) }
