package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"dataforge-server/cmd/api/wire"
	"dataforge-server/cmd/config"
	"dataforge-server/internal/infra/httpserver"
	"dataforge-server/internal/infra/node"

	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

var (
	logLevelMapping = map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
)

func main() {
	config := config.LoadConfig()
	nodeInfo := node.GetNodeInfo()

	level := logLevelMapping[config.General.LogLevel]
	baseHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{AddSource: true, Level: level, ReplaceAttr: slogReplaceAttr})
	handler := baseHandler.WithAttrs([]slog.Attr{slog.String("version", nodeInfo.Version)})
	slog.SetDefault(slog.New(handler))
	slog.Info("🚀 dataforge is initializing", slog.String("node", nodeInfo.ID))
	slog.Debug("config loaded", "data", config)

	shutdownOtel := startOTel(config.OTel, nodeInfo)

	httpServer := httpserver.NewServer(
		httpserver.Options{
			Addr:           config.HTTP.Addr(),
			AllowedOrigins: config.HTTP.AllowedOrigins,
			StaticDir:      config.HTTP.StaticDir,
			Version:        nodeInfo.Version,
		},
		handleWireInjector(wire.InitializeSchemaController()).(httpserver.Controller),
		handleWireInjector(wire.InitializeDataController()).(httpserver.Controller),
		handleWireInjector(wire.InitializeTemplateController()).(httpserver.Controller),
	)

	go httpServer.Run()
	slog.Info("serving http", slog.String("addr", config.HTTP.Addr()))

	signalChannel := make(chan os.Signal, 2)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)

	<-signalChannel
	httpServer.Shutdown()
	if err := shutdownOtel(); err != nil {
		slog.Error("shutting down otel", slog.String("error", err.Error()))
	}

	slog.Info("good bye!!!", slog.Duration("uptime", nodeInfo.Uptime()))
	os.Exit(0)
}

func slogReplaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.SourceKey {
		source := a.Value.Any().(*slog.Source)
		source.File = filepath.Base(source.File)
		return slog.Any(a.Key, source)
	}
	return a
}

type ShutdownFunc func() error

const (
	_collectPeriod   = 30 * time.Second
	_collectTimeout  = 35 * time.Second
	_minimumInterval = time.Minute
)

var (
	_histogramBuckets = []float64{5, 10, 25, 50, 75, 100, 250, 500, 750, 1000, 2500, 5000, 7500, 10000, 25000, 50000, 100000}
)

func startOTel(cfg config.OTelConfig, nodeInfo *node.Node) ShutdownFunc {
	if !cfg.Enabled {
		slog.Info("OTel exporters disabled")
		return func() error { return nil }
	}

	slog.Info("starting OTel providers", slog.String("endpoint", cfg.Endpoint))
	shutdown, err := otelStart(context.Background(), cfg.Endpoint, newResource(nodeInfo))
	if err != nil {
		panic(err)
	}

	return shutdown
}

func newResource(nodeInfo *node.Node) *resource.Resource {
	attributes := append(nodeInfo.Attributes(), semconv.ServiceNameKey.String("dataforge-server"))
	return resource.NewWithAttributes(semconv.SchemaURL, attributes...)
}

func otelStart(ctx context.Context, endpoint string, res *resource.Resource) (ShutdownFunc, error) {
	metricsShutdownFunc, err := startMetricsProvider(ctx, endpoint, res)
	if err != nil {
		return nil, err
	}

	traceShutdownFunc, err := startTraceProvider(ctx, endpoint, res)
	if err != nil {
		return nil, err
	}

	return func() error {
		if err := metricsShutdownFunc(); err != nil {
			return err
		}
		if err := traceShutdownFunc(); err != nil {
			return err
		}
		return nil
	}, nil
}

func startTraceProvider(ctx context.Context, endpoint string, res *resource.Resource) (ShutdownFunc, error) {
	exp, err := otlptracegrpc.New(
		ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exp),
		trace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return func() error {
		return tp.Shutdown(ctx)
	}, nil
}

func startMetricsProvider(ctx context.Context, endpoint string, res *resource.Resource) (ShutdownFunc, error) {
	exp, err := otlpmetricgrpc.New(
		ctx,
		otlpmetricgrpc.WithEndpoint(endpoint),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	mp := newMeterProvider(exp, res)
	otel.SetMeterProvider(mp)

	err = runtime.Start(runtime.WithMinimumReadMemStatsInterval(_minimumInterval))
	if err != nil {
		return nil, err
	}

	return func() error {
		return mp.Shutdown(ctx)
	}, nil
}

func newMeterProvider(metricExporter metric.Exporter, res *resource.Resource) *metric.MeterProvider {
	return metric.NewMeterProvider(
		metric.WithResource(res),
		metric.WithReader(
			metric.NewPeriodicReader(
				metricExporter,
				metric.WithTimeout(_collectTimeout),
				metric.WithInterval(_collectPeriod))),
		metric.WithView(metric.NewView(
			metric.Instrument{
				Name: "*",
				Kind: metric.InstrumentKindHistogram,
			},
			metric.Stream{
				Aggregation: metric.AggregationExplicitBucketHistogram{
					Boundaries: _histogramBuckets,
				},
			},
		)),
	)
}

func handleWireInjector(value any, err error) any {
	if err != nil {
		panic(err)
	}

	return value
}
