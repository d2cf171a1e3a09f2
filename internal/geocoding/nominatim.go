package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/jrjohn/smart-waste-go/internal/config"
	"github.com/jrjohn/smart-waste-go/internal/observability"
	"github.com/jrjohn/smart-waste-go/internal/resilience"
)

// BreakerName is the circuit breaker guarding the geocoding service
const BreakerName = "geocoder"

// DefaultUserAgent identifies this service to Nominatim
const DefaultUserAgent = "WasteManagementSystem/1.0"

// StatusError is returned when the geocoding service answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("geocoder returned %d: %s", e.StatusCode, e.Body)
}

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NominatimClient queries an OpenStreetMap Nominatim search endpoint.
type NominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	breaker    *resilience.CircuitBreaker
	limiter    *resilience.TokenBucketLimiter
	metrics    *observability.MetricsProvider
	tracer     trace.Tracer
	logger     *zap.Logger
}

// NewNominatimClient creates a client from configuration. The breaker is
// taken from breakers so its state shows up in health reports.
func NewNominatimClient(
	cfg *config.GeocoderConfig,
	breakers *resilience.CircuitBreakerRegistry,
	metrics *observability.MetricsProvider,
	logger *zap.Logger,
) *NominatimClient {
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	breakerCfg := resilience.DefaultCircuitBreakerConfig(BreakerName)
	if cfg.FailureThreshold > 0 {
		breakerCfg.FailureThreshold = cfg.FailureThreshold
	}
	if cfg.OpenTimeout > 0 {
		breakerCfg.Timeout = cfg.OpenTimeout
	}
	breakerCfg.IsFailure = func(err error) bool {
		return !errors.Is(err, context.Canceled) && !errors.Is(err, resilience.ErrRateLimitExceeded)
	}
	breakers.RegisterConfig(breakerCfg)

	client := &NominatimClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    breakers.Get(BreakerName),
		metrics:    metrics,
		tracer:     otel.Tracer("geocoding"),
		logger:     logger.Named("geocoder"),
	}

	if cfg.RequestsPerSecond > 0 {
		limiterCfg := resilience.DefaultRateLimiterConfig(BreakerName)
		limiterCfg.Period = time.Duration(float64(time.Second) / cfg.RequestsPerSecond)
		if cfg.Burst > 0 {
			limiterCfg.BurstSize = cfg.Burst
		}
		limiterCfg.WaitTimeout = cfg.Timeout
		client.limiter = resilience.NewTokenBucketLimiter(limiterCfg)
	}

	return client
}

// Search returns the places matching query in the order the service ranks them.
func (c *NominatimClient) Search(ctx context.Context, query string) ([]Place, error) {
	ctx, span := c.tracer.Start(ctx, "geocoder.search",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(observability.AttrGeocodeQuery.String(query)),
	)
	defer span.End()

	var places []Place
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return err
			}
		}

		var err error
		places, err = c.search(ctx, query)
		return err
	})

	outcome := observability.OutcomeSuccess
	switch {
	case errors.Is(err, resilience.ErrCircuitOpen),
		errors.Is(err, resilience.ErrTooManyRequests),
		errors.Is(err, resilience.ErrRateLimitExceeded):
		outcome = observability.OutcomeRejected
	case err != nil:
		outcome = observability.OutcomeError
	case len(places) == 0:
		outcome = observability.OutcomeNoMatch
	}
	c.metrics.RecordGeocode(ctx, outcome)
	observability.AddSpanAttributes(ctx, observability.AttrOutcome.String(outcome))

	if err != nil {
		observability.RecordSpanError(ctx, err)
		c.logger.Warn("Geocoder lookup failed", zap.String("query", query), zap.Error(err))
		return nil, fmt.Errorf("geocode %q: %w", query, err)
	}
	return places, nil
}

func (c *NominatimClient) search(ctx context.Context, query string) ([]Place, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var raw []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	places := make([]Place, 0, len(raw))
	for _, r := range raw {
		lat, err := strconv.ParseFloat(r.Lat, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude %q: %w", r.Lat, err)
		}
		lon, err := strconv.ParseFloat(r.Lon, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude %q: %w", r.Lon, err)
		}
		places = append(places, Place{Latitude: lat, Longitude: lon, DisplayName: r.DisplayName})
	}
	return places, nil
}
