package httpserver

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "dataforge-server"
	serviceName         = "DataForge AI"
)

type Server interface {
	Run()
	Shutdown()
}

var _ Server = &StandardServer{}

type StandardServer struct {
	server *http.Server
}

type Options struct {
	Addr           string
	AllowedOrigins []string
	// StaticDir holds a built single page app. Empty disables static serving.
	StaticDir string
	Version   string
}

func (s *StandardServer) Run() {
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		panic(err)
	}
}

func (s *StandardServer) Shutdown() {
	if err := s.server.Shutdown(context.Background()); err != nil {
		panic(err)
	}
}

// Handler exposes the full middleware chain, mostly for in-process tests.
func (s *StandardServer) Handler() http.Handler {
	return s.server.Handler
}

func NewServer(opts Options, controllers ...Controller) *StandardServer {
	router := http.NewServeMux()

	if opts.Addr == "" {
		opts.Addr = ":5000"
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	c := cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Requested-With",
		},
		ExposedHeaders: []string{
			"Content-Disposition",
		},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	metrics, err := newHTTPMetrics(otel.GetMeterProvider())
	if err != nil {
		panic(err)
	}
	tracingMiddleware := createTracingMiddleware()
	loggingMiddleware := createRequestLogMiddleware()

	server := &StandardServer{
		&http.Server{
			Addr: opts.Addr,
			Handler: c.Handler(
				metrics.middleware(
					tracingMiddleware(
						loggingMiddleware(router),
					),
				),
			),
		},
	}

	router.Handle("GET /api/health", getHealth(opts.Version))
	router.Handle("GET /metrics", promhttp.Handler())
	router.Handle("/api/", apiNotFound())

	if opts.StaticDir != "" {
		router.Handle("/", spaHandler(opts.StaticDir))
	}

	for _, controller := range controllers {
		controller.AddRoutes(router)
	}

	return server
}

// createTracingMiddleware starts a server span per request. B3 headers continue an upstream
// trace and are echoed back on the response.
func createTracingMiddleware() func(http.Handler) http.Handler {
	propagator := b3.New()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))

			route := routeLabel(r.URL.Path)
			ctx, span := otel.Tracer(instrumentationName).Start(ctx, r.Method+" "+route,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.route", route),
					attribute.String("http.target", r.URL.Path),
					attribute.String("http.user_agent", r.UserAgent()),
					attribute.Int64("http.request_content_length", r.ContentLength),
				),
			)
			defer span.End()

			propagator.Inject(ctx, propagation.HeaderCarrier(w.Header()))

			wrapped := &statusCodeResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r.WithContext(ctx))

			span.SetAttributes(
				attribute.Int("http.status_code", wrapped.statusCode),
				attribute.Int64("http.response_content_length", wrapped.written),
			)
			if wrapped.statusCode >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(wrapped.statusCode))
			}
		})
	}
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version,omitempty"`
}

func getHealth(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		span := GetSpanFromContext(r)
		span.SetAttributes(attribute.String("endpoint", "health"))

		output := healthResponse{
			Status:  "healthy",
			Service: serviceName,
			Version: version,
		}
		ReplyJSONResponse(w, http.StatusOK, output)
	}
}

func apiNotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ReplyWithError(w, http.StatusNotFound, "Not Found")
	}
}
