package geocoding

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jrjohn/smart-waste-go/internal/config"
	"github.com/jrjohn/smart-waste-go/internal/resilience"
)

type stubGeocoder struct {
	results map[string][]Place
	errs    map[string]error
	calls   []string
}

func (s *stubGeocoder) Search(_ context.Context, query string) ([]Place, error) {
	s.calls = append(s.calls, query)
	if err := s.errs[query]; err != nil {
		return nil, err
	}
	return s.results[query], nil
}

func TestResolve(t *testing.T) {
	primary := "Main St, Park, Springfield"
	fallback := "Main St, Springfield"
	hit := Place{Latitude: 39.78, Longitude: -89.65, DisplayName: "Main St"}
	boom := errors.New("boom")

	tests := []struct {
		name        string
		stub        *stubGeocoder
		wantErr     error
		wantAttempt int
		wantCalls   int
	}{
		{
			name:      "primary match",
			stub:      &stubGeocoder{results: map[string][]Place{primary: {hit}, fallback: {hit}}},
			wantCalls: 1,
		},
		{
			name:        "fallback match",
			stub:        &stubGeocoder{results: map[string][]Place{fallback: {hit}}},
			wantAttempt: 1,
			wantCalls:   2,
		},
		{
			name:      "no match",
			stub:      &stubGeocoder{},
			wantErr:   ErrNoMatch,
			wantCalls: 2,
		},
		{
			name:      "error short-circuits",
			stub:      &stubGeocoder{errs: map[string]error{primary: boom}, results: map[string][]Place{fallback: {hit}}},
			wantErr:   boom,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Resolve(context.Background(), tt.stub, primary, fallback)
			assert.Len(t, tt.stub.calls, tt.wantCalls)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, hit, res.Place)
			assert.Equal(t, tt.wantAttempt, res.Attempt)
			assert.Equal(t, tt.wantAttempt > 0, res.Fallback())
		})
	}
}

func TestJoinAddress(t *testing.T) {
	assert.Equal(t, "Main St, , Springfield", JoinAddress("Main St", "", "Springfield"))
	assert.Equal(t, "Main St, Springfield", JoinAddress("Main St", "Springfield"))
}

func newTestClient(t *testing.T, baseURL string, mutate func(*config.GeocoderConfig)) *NominatimClient {
	t.Helper()
	cfg := &config.GeocoderConfig{
		BaseURL:          baseURL,
		Timeout:          2 * time.Second,
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
	}
	if mutate != nil {
		mutate(cfg)
	}
	return NewNominatimClient(cfg, resilience.NewCircuitBreakerRegistry(zap.NewNop()), nil, zap.NewNop())
}

func TestNominatimClient_Search(t *testing.T) {
	var gotQuery, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("addressdetails"))
		gotQuery = r.URL.Query().Get("q")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"39.7817","lon":"-89.6501","display_name":"Main St, Springfield"},{"lat":"1","lon":"2","display_name":"other"}]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL+"/", nil)
	places, err := client.Search(context.Background(), "Main St, , Springfield")
	require.NoError(t, err)

	assert.Equal(t, "Main St, , Springfield", gotQuery)
	assert.Equal(t, DefaultUserAgent, gotUA)
	require.Len(t, places, 2)
	assert.InDelta(t, 39.7817, places[0].Latitude, 1e-9)
	assert.InDelta(t, -89.6501, places[0].Longitude, 1e-9)
	assert.Equal(t, "Main St, Springfield", places[0].DisplayName)
}

func TestNominatimClient_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	places, err := newTestClient(t, server.URL, nil).Search(context.Background(), "nowhere")
	require.NoError(t, err)
	assert.Empty(t, places)
}

func TestNominatimClient_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusBadGateway, "upstream down"},
		{"bad latitude", http.StatusOK, `[{"lat":"north","lon":"1"}]`},
		{"bad json", http.StatusOK, `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestClient(t, server.URL, nil).Search(context.Background(), "x")
			assert.Error(t, err)
		})
	}

	t.Run("status error is typed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		_, err := newTestClient(t, server.URL, nil).Search(context.Background(), "x")
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
	})
}

func TestNominatimClient_BreakerOpens(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	for i := 0; i < 2; i++ {
		_, err := client.Search(context.Background(), "x")
		require.Error(t, err)
	}

	_, err := client.Search(context.Background(), "x")
	assert.ErrorIs(t, err, resilience.ErrCircuitOpen)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestNominatimClient_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, func(cfg *config.GeocoderConfig) {
		cfg.RequestsPerSecond = 0.01
		cfg.Burst = 1
		cfg.Timeout = 50 * time.Millisecond
	})

	_, err := client.Search(context.Background(), "first")
	require.NoError(t, err)

	_, err = client.Search(context.Background(), "second")
	assert.ErrorIs(t, err, resilience.ErrRateLimitExceeded)
}

func TestNominatimClient_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(t, server.URL, nil).Search(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
}
