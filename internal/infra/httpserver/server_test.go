package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type echoController struct{}

func (echoController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /api/echo", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ReplyJSONResponse(w, http.StatusOK, map[string]string{"echo": "ok"})
	}))
}

var _ = ginkgo.Describe("HTTPServer", func() {
	var (
		tp       *trace.TracerProvider
		recorder *tracetest.SpanRecorder
	)

	ginkgo.BeforeEach(func() {
		recorder = tracetest.NewSpanRecorder()
		tp = trace.NewTracerProvider(trace.WithSpanProcessor(recorder))
		otel.SetTracerProvider(tp)
	})

	ginkgo.AfterEach(func() {
		tp.Shutdown(context.Background())
	})

	serve := func(handler http.Handler, method, target string, header map[string]string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, nil)
		for k, v := range header {
			req.Header.Set(k, v)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	ginkgo.Context("TracingMiddleware", func() {
		ginkgo.It("should add span to request context", func() {
			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				span := GetSpanFromContext(r)
				gomega.Expect(span.SpanContext().HasSpanID()).To(gomega.BeTrue())
				w.WriteHeader(http.StatusAccepted)
			})

			rec := serve(createTracingMiddleware()(testHandler), http.MethodGet, "/api/test", nil)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusAccepted))
			gomega.Expect(recorder.Ended()).To(gomega.HaveLen(1))
			gomega.Expect(recorder.Ended()[0].Name()).To(gomega.Equal("GET /api/test"))
		})

		ginkgo.It("should mark server errors on the span", func() {
			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			})

			serve(createTracingMiddleware()(testHandler), http.MethodDelete, "/api/templates/abc", nil)

			gomega.Expect(recorder.Ended()).To(gomega.HaveLen(1))
			ended := recorder.Ended()[0]
			gomega.Expect(ended.Name()).To(gomega.Equal("DELETE /api/templates/{id}"))
			gomega.Expect(ended.Status().Code).To(gomega.Equal(codes.Error))
		})

		ginkgo.It("should return a span even when no span is in context", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
			span := GetSpanFromContext(req)
			gomega.Expect(span).NotTo(gomega.BeNil())
			gomega.Expect(span.SpanContext().IsValid()).To(gomega.BeFalse())
		})
	})

	ginkgo.Context("NewServer", func() {
		var server *StandardServer

		ginkgo.BeforeEach(func() {
			server = NewServer(Options{Version: "1.2.3"}, echoController{})
		})

		ginkgo.It("should report health", func() {
			rec := serve(server.Handler(), http.MethodGet, "/api/health", nil)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(rec.Body.String()).To(gomega.MatchJSON(
				`{"status":"healthy","service":"DataForge AI","version":"1.2.3"}`))
		})

		ginkgo.It("should register controller routes", func() {
			rec := serve(server.Handler(), http.MethodPost, "/api/echo", nil)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(rec.Body.String()).To(gomega.MatchJSON(`{"echo":"ok"}`))
		})

		ginkgo.It("should answer unknown api routes with a json 404", func() {
			rec := serve(server.Handler(), http.MethodGet, "/api/unknown", nil)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusNotFound))
			gomega.Expect(rec.Body.String()).To(gomega.MatchJSON(`{"message":"Not Found"}`))
		})

		ginkgo.It("should expose prometheus metrics", func() {
			rec := serve(server.Handler(), http.MethodGet, "/metrics", nil)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
		})

		ginkgo.It("should allow cross origin requests", func() {
			rec := serve(server.Handler(), http.MethodGet, "/api/health", map[string]string{
				"Origin": "http://localhost:5173",
			})

			gomega.Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(gomega.Equal("*"))
		})

		ginkgo.It("should answer preflight requests", func() {
			rec := serve(server.Handler(), http.MethodOptions, "/api/echo", map[string]string{
				"Origin":                        "http://localhost:5173",
				"Access-Control-Request-Method": http.MethodPost,
			})

			gomega.Expect(rec.Code).To(gomega.BeNumerically("<", 300))
			gomega.Expect(rec.Header().Get("Access-Control-Allow-Methods")).To(gomega.Equal(http.MethodPost))
		})
	})

	ginkgo.Context("with a static directory", func() {
		var server *StandardServer

		ginkgo.BeforeEach(func() {
			dir := ginkgo.GinkgoT().TempDir()
			gomega.Expect(os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644)).To(gomega.Succeed())
			gomega.Expect(os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644)).To(gomega.Succeed())

			server = NewServer(Options{StaticDir: dir})
		})

		ginkgo.It("should serve existing files", func() {
			rec := serve(server.Handler(), http.MethodGet, "/app.js", nil)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(rec.Body.String()).To(gomega.Equal("console.log(1)"))
		})

		ginkgo.It("should fall back to index.html for client routes", func() {
			rec := serve(server.Handler(), http.MethodGet, "/templates/abc", nil)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(rec.Body.String()).To(gomega.Equal("<html>app</html>"))
		})

		ginkgo.It("should keep api misses as json 404", func() {
			rec := serve(server.Handler(), http.MethodGet, "/api/nothing", nil)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusNotFound))
			gomega.Expect(rec.Body.String()).To(gomega.MatchJSON(`{"message":"Not Found"}`))
		})
	})
})
