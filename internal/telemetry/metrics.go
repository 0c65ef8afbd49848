package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

const meterName = "attrition-risk"

// Metrics agrupa los instrumentos del servicio.
type Metrics struct {
	Assessments      metric.Int64Counter
	RiskScores       metric.Float64Histogram
	SyntheticRecords metric.Int64Counter
	StatsCacheHits   metric.Int64Counter
	StatsCacheMisses metric.Int64Counter
}

// InitMetrics configura un exporter OTLP (push) si hay endpoint. Sin endpoint los
// instrumentos quedan sobre el MeterProvider global (no-op). Devuelve el shutdown.
func InitMetrics(ctx context.Context, service, endpoint string, logger *zap.Logger) (func(context.Context) error, Metrics) {
	noop := func(context.Context) error { return nil }
	if endpoint == "" {
		return noop, NewMetrics()
	}

	res, _ := sdkresource.Merge(sdkresource.Default(), sdkresource.NewSchemaless(
		attribute.String("service.name", service),
	))

	ctxInit, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	exp, err := otlpmetricgrpc.New(ctxInit,
		otlpmetricgrpc.WithEndpoint(endpoint),
		otlpmetricgrpc.WithDialOption(grpc.WithInsecure()),
	)
	if err != nil {
		logger.Warn("metrics exporter init failed", zap.Error(err))
		return noop, NewMetrics()
	}
	reader := sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(10*time.Second))
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader), sdkmetric.WithResource(res))
	otel.SetMeterProvider(mp)
	logger.Info("metrics initialized", zap.String("endpoint", endpoint))
	return mp.Shutdown, NewMetrics()
}

// NewMetrics crea los instrumentos sobre el MeterProvider global.
func NewMetrics() Metrics {
	meter := otel.Meter(meterName)
	assessments, _ := meter.Int64Counter("attrition_assessments_total")
	scores, _ := meter.Float64Histogram("attrition_risk_score",
		metric.WithExplicitBucketBoundaries(10, 20, 30, 40, 50, 60, 70, 80, 90, 100))
	records, _ := meter.Int64Counter("attrition_synthetic_records_total")
	hits, _ := meter.Int64Counter("attrition_population_stats_cache_hits_total")
	misses, _ := meter.Int64Counter("attrition_population_stats_cache_misses_total")
	return Metrics{
		Assessments:      assessments,
		RiskScores:       scores,
		SyntheticRecords: records,
		StatsCacheHits:   hits,
		StatsCacheMisses: misses,
	}
}
