package gateway

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gracefleet/routeengine/internal/pkg/circuitbreaker"
	"github.com/gracefleet/routeengine/internal/pkg/constants"
	"github.com/gracefleet/routeengine/internal/pkg/database"
	"github.com/gracefleet/routeengine/internal/pkg/geo"
	"github.com/gracefleet/routeengine/internal/pkg/logger"
	"github.com/gracefleet/routeengine/internal/pkg/models"
	nrpkg "github.com/gracefleet/routeengine/internal/pkg/newrelic"
	"github.com/gracefleet/routeengine/internal/pkg/retry"
	"github.com/gracefleet/routeengine/services/routes"
)

// GeocodeGW resolves postal addresses to coordinates through the external
// geocoding HTTP service, with a Redis cache in front of it. Lookups are
// best-effort: planning proceeds with unresolved stops when the service is
// down or the address cannot be located.
type GeocodeGW struct {
	cfg         *models.Config
	redisClient *database.RedisClient
	httpClient  *http.Client
	retrier     *retry.Retrier
	breaker     *circuitbreaker.CircuitBreaker
}

// NewGeocodeGW creates a new geocoding gateway
func NewGeocodeGW(cfg *models.Config, redisClient *database.RedisClient, zapLogger *logger.ZapLogger) *GeocodeGW {
	timeout := time.Duration(cfg.Geocoder.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	retryCfg := retry.DefaultConfig()
	retryCfg.RetryableFunc = retry.NetworkRetryableFunc()

	return &GeocodeGW{
		cfg:         cfg,
		redisClient: redisClient,
		httpClient:  &http.Client{Timeout: timeout},
		retrier:     retry.New(retryCfg, zapLogger),
		breaker:     circuitbreaker.New(circuitbreaker.DefaultConfig("geocoder"), zapLogger),
	}
}

var _ routes.GeocodeGW = (*GeocodeGW)(nil)

type geocodeResponse struct {
	Found     bool    `json:"found"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Locate resolves an address query to coordinates. Returns nil without an
// error when the service is not configured or the address is unlocatable.
func (g *GeocodeGW) Locate(ctx context.Context, query string) (*geo.Point, error) {
	if g.cfg.Geocoder.BaseURL == "" {
		return nil, nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	cacheKey := fmt.Sprintf(constants.KeyGeocodeAddress, hashQuery(query))

	if cached, err := g.redisClient.Get(ctx, cacheKey); err == nil && cached != "" {
		var resp geocodeResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return resp.toPoint(), nil
		}
	}

	var resp *geocodeResponse
	err := nrpkg.WithSegment(ctx, "geocoder.locate", func() error {
		return g.breaker.Execute(ctx, func(ctx context.Context) error {
			return g.retrier.Execute(ctx, func(ctx context.Context) error {
				var err error
				resp, err = g.fetch(ctx, query)
				return err
			})
		})
	})
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(resp); err == nil {
		ttl := time.Duration(g.cfg.Geocoder.CacheTTL) * time.Minute
		if ttl <= 0 {
			ttl = 24 * time.Hour
		}
		if err := g.redisClient.Set(ctx, cacheKey, string(data), ttl); err != nil {
			logger.Warn("failed to cache geocode result", logger.Err(err))
		}
	}

	return resp.toPoint(), nil
}

func (g *GeocodeGW) fetch(ctx context.Context, query string) (*geocodeResponse, error) {
	endpoint := fmt.Sprintf("%s/v1/geocode?q=%s",
		strings.TrimRight(g.cfg.Geocoder.BaseURL, "/"), url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("geocode request: %w", err)
	}
	if g.cfg.Geocoder.APIKey != "" {
		req.Header.Set("X-API-Key", g.cfg.Geocoder.APIKey)
	}

	res, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("geocode response: %w", err)
	}

	if res.StatusCode == http.StatusNotFound {
		return &geocodeResponse{Found: false}, nil
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode service returned %s", res.Status)
	}

	var resp geocodeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("geocode response: %w", err)
	}

	return &resp, nil
}

func (r *geocodeResponse) toPoint() *geo.Point {
	if r == nil || !r.Found {
		return nil
	}
	if !geo.ValidCoordinate(r.Latitude, r.Longitude) {
		return nil
	}
	return &geo.Point{Latitude: r.Latitude, Longitude: r.Longitude}
}

func hashQuery(query string) string {
	sum := sha1.Sum([]byte(strings.ToLower(query)))
	return hex.EncodeToString(sum[:])
}
