package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Middleware instruments handlers wrapped via WrapHandler with
// per-handler request counters and duration histograms.
type Middleware struct {
	requestCounter  *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func New(registry prometheus.Registerer, buckets []float64) *Middleware {
	if buckets == nil {
		buckets = prometheus.DefBuckets
	}
	factory := promauto.With(registry)

	return &Middleware{
		requestCounter: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "handler_requests_total",
			Help: "Requests per wrapped handler and status code",
		}, []string{"handler", "method", "code"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "handler_request_duration_seconds",
			Help:    "Request duration per wrapped handler",
			Buckets: buckets,
		}, []string{"handler", "method"}),
	}
}

func (m *Middleware) WrapHandler(handlerName string, handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		sw := &statusWriter{ResponseWriter: w, statusCode: http.StatusOK}

		handler.ServeHTTP(sw, r)

		m.requestDuration.
			WithLabelValues(handlerName, r.Method).
			Observe(time.Since(begin).Seconds())
		m.requestCounter.
			WithLabelValues(handlerName, r.Method, strconv.Itoa(sw.statusCode)).
			Inc()
	})
}

type statusWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusWriter) WriteHeader(statusCode int) {
	w.ResponseWriter.WriteHeader(statusCode)
	w.statusCode = statusCode
}
