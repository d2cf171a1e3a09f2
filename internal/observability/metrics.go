package observability

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	otelprometheus "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"

	"github.com/jrjohn/smart-waste-go/internal/config"
)

// Outcome labels shared by the outbound and scheduled metrics
const (
	OutcomeSuccess  = "success"
	OutcomeNoMatch  = "no_match"
	OutcomeError    = "error"
	OutcomeRejected = "rejected"
	OutcomeSkipped  = "skipped"
)

// MetricsProvider manages OpenTelemetry metrics exported in Prometheus format
type MetricsProvider struct {
	serviceName   string
	path          string
	meterProvider *sdkmetric.MeterProvider
	meter         metric.Meter
	logger        *zap.Logger
	handler       http.Handler

	httpRequestsTotal   metric.Int64Counter
	httpRequestDuration metric.Float64Histogram
	geocodeRequests     metric.Int64Counter
	mailMessages        metric.Int64Counter
	jobRuns             metric.Int64Counter
	workPurged          metric.Int64Counter
}

// NewMetricsProvider creates a new metrics provider. A disabled provider
// records nothing and serves 404 from Handler.
func NewMetricsProvider(cfg *config.MetricsConfig, serviceName string, logger *zap.Logger) (*MetricsProvider, error) {
	if !cfg.Enabled {
		return &MetricsProvider{
			serviceName: serviceName,
			path:        cfg.Path,
			meter:       otel.Meter(serviceName),
			logger:      logger,
		}, nil
	}

	registry := prometheus.NewRegistry()
	exporter, err := otelprometheus.New(otelprometheus.WithRegisterer(registry))
	if err != nil {
		return nil, err
	}

	meterProvider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	otel.SetMeterProvider(meterProvider)

	mp := &MetricsProvider{
		serviceName:   serviceName,
		path:          cfg.Path,
		meterProvider: meterProvider,
		meter:         meterProvider.Meter(serviceName),
		logger:        logger,
		handler:       promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}

	if err := mp.initMetrics(); err != nil {
		return nil, err
	}

	logger.Info("Metrics initialized",
		zap.String("service", serviceName),
		zap.String("path", cfg.Path),
	)

	return mp, nil
}

func (mp *MetricsProvider) initMetrics() error {
	var err error

	mp.httpRequestsTotal, err = mp.meter.Int64Counter(
		"http_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return err
	}

	mp.httpRequestDuration, err = mp.meter.Float64Histogram(
		"http_request_duration_seconds",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return err
	}

	mp.geocodeRequests, err = mp.meter.Int64Counter(
		"geocode_requests_total",
		metric.WithDescription("Geocoder lookups by outcome"),
	)
	if err != nil {
		return err
	}

	mp.mailMessages, err = mp.meter.Int64Counter(
		"mail_messages_total",
		metric.WithDescription("Outgoing mail by template and outcome"),
	)
	if err != nil {
		return err
	}

	mp.jobRuns, err = mp.meter.Int64Counter(
		"scheduled_job_runs_total",
		metric.WithDescription("Scheduled job runs by job and outcome"),
	)
	if err != nil {
		return err
	}

	mp.workPurged, err = mp.meter.Int64Counter(
		"work_entries_purged_total",
		metric.WithDescription("Work entries removed by the daily purge"),
	)
	return err
}

// RecordHTTPRequest records an HTTP request metric
func (mp *MetricsProvider) RecordHTTPRequest(ctx context.Context, method, route string, statusCode int, duration time.Duration) {
	if mp == nil || mp.httpRequestsTotal == nil {
		return
	}

	attrs := metric.WithAttributes(
		AttrHTTPMethod.String(method),
		AttrHTTPRoute.String(route),
		AttrHTTPStatusCode.String(strconv.Itoa(statusCode)),
	)
	mp.httpRequestsTotal.Add(ctx, 1, attrs)
	mp.httpRequestDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordGeocode counts one geocoder lookup
func (mp *MetricsProvider) RecordGeocode(ctx context.Context, outcome string) {
	if mp == nil || mp.geocodeRequests == nil {
		return
	}
	mp.geocodeRequests.Add(ctx, 1, metric.WithAttributes(AttrOutcome.String(outcome)))
}

// RecordMail counts one outgoing message
func (mp *MetricsProvider) RecordMail(ctx context.Context, template, outcome string) {
	if mp == nil || mp.mailMessages == nil {
		return
	}
	mp.mailMessages.Add(ctx, 1, metric.WithAttributes(
		AttrMailTemplate.String(template),
		AttrOutcome.String(outcome),
	))
}

// RecordJobRun counts one scheduled job run
func (mp *MetricsProvider) RecordJobRun(ctx context.Context, job, outcome string) {
	if mp == nil || mp.jobRuns == nil {
		return
	}
	mp.jobRuns.Add(ctx, 1, metric.WithAttributes(
		AttrJobName.String(job),
		AttrOutcome.String(outcome),
	))
}

// RecordWorkPurged adds n purged work entries
func (mp *MetricsProvider) RecordWorkPurged(ctx context.Context, n int64) {
	if mp == nil || mp.workPurged == nil || n <= 0 {
		return
	}
	mp.workPurged.Add(ctx, n)
}

// Path returns the route the metrics handler is mounted on
func (mp *MetricsProvider) Path() string {
	return mp.path
}

// Handler returns an HTTP handler for Prometheus metrics
func (mp *MetricsProvider) Handler() http.Handler {
	if mp.handler != nil {
		return mp.handler
	}
	return http.NotFoundHandler()
}

// Meter returns the meter for creating custom metrics
func (mp *MetricsProvider) Meter() metric.Meter {
	return mp.meter
}

// Shutdown gracefully shuts down the metrics provider
func (mp *MetricsProvider) Shutdown(ctx context.Context) error {
	if mp.meterProvider != nil {
		return mp.meterProvider.Shutdown(ctx)
	}
	return nil
}
