package httpserver

import (
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const metricPrefix = "dataforge_server."

// httpMetrics holds the request instruments of one server.
type httpMetrics struct {
	duration     metric.Float64Histogram
	requests     metric.Int64Counter
	active       metric.Int64UpDownCounter
	responseSize metric.Int64Histogram
}

func newHTTPMetrics(provider metric.MeterProvider) (*httpMetrics, error) {
	meter := provider.Meter(instrumentationName)

	duration, err := meter.Float64Histogram(
		metricPrefix+"http.request.duration.seconds",
		metric.WithDescription("Duration of HTTP requests"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30),
	)
	if err != nil {
		return nil, err
	}

	requests, err := meter.Int64Counter(
		metricPrefix+"http.requests.total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	active, err := meter.Int64UpDownCounter(
		metricPrefix+"http.requests.active",
		metric.WithDescription("Number of HTTP requests currently being processed"),
	)
	if err != nil {
		return nil, err
	}

	// Exports dominate the payload sizes, hence the wide buckets.
	responseSize, err := meter.Int64Histogram(
		metricPrefix+"http.response.size.bytes",
		metric.WithDescription("Size of HTTP response bodies"),
		metric.WithUnit("By"),
		metric.WithExplicitBucketBoundaries(256, 1024, 16384, 262144, 1048576, 8388608, 33554432),
	)
	if err != nil {
		return nil, err
	}

	return &httpMetrics{
		duration:     duration,
		requests:     requests,
		active:       active,
		responseSize: responseSize,
	}, nil
}

func (m *httpMetrics) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		route := attribute.String("http.route", routeLabel(r.URL.Path))
		method := attribute.String("http.method", r.Method)

		m.active.Add(r.Context(), 1, metric.WithAttributes(method, route))
		defer m.active.Add(r.Context(), -1, metric.WithAttributes(method, route))

		wrapped := &statusCodeResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		attrs := metric.WithAttributes(method, route, attribute.Int("http.status_code", wrapped.statusCode))
		m.duration.Record(r.Context(), time.Since(start).Seconds(), attrs)
		m.requests.Add(r.Context(), 1, attrs)
		m.responseSize.Record(r.Context(), wrapped.written, attrs)
	})
}

// routeLabel keeps the route attribute bounded: template ids and static files collapse into
// one value each.
func routeLabel(path string) string {
	switch {
	case strings.HasPrefix(path, "/api/templates/"):
		return "/api/templates/{id}"
	case strings.HasPrefix(path, "/api/"), path == "/metrics":
		return path
	default:
		return "static"
	}
}

type statusCodeResponseWriter struct {
	http.ResponseWriter
	statusCode int
	written    int64
}

func (w *statusCodeResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusCodeResponseWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.written += int64(n)
	return n, err
}
