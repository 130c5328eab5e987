package weather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"runwear/internal/shared/metrics"
	"runwear/internal/shared/telemetry"
)

const (
	upstreamZip    = "zip"
	upstreamPoints = "points"
	upstreamHourly = "hourly"

	maxPayloadSize = 2 << 20
)

// ClientOptions configures upstream endpoints and resilience.
type ClientOptions struct {
	ZipBaseURL       string
	PointsBaseURL    string
	UserAgent        string
	Timeout          time.Duration
	FailureThreshold uint32
	OpenTimeout      time.Duration
	HTTPClient       *http.Client
}

// Client talks to zippopotam.us and api.weather.gov through one circuit breaker.
type Client struct {
	http          *http.Client
	zipBaseURL    string
	pointsBaseURL string
	userAgent     string
	cb            *gobreaker.CircuitBreaker[[]byte]
}

// NewClient constructs a Client.
func NewClient(opts ClientOptions) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	threshold := opts.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	metrics.SetWeatherBreakerState(stateToFloat(gobreaker.StateClosed))
	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "weather",
		MaxRequests: 1,
		Timeout:     opts.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// A missing ZIP is an answer, not an outage.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrLocationNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			telemetry.Warn("weather.breaker_state", map[string]any{
				"from": from.String(),
				"to":   to.String(),
			})
			metrics.SetWeatherBreakerState(stateToFloat(to))
		},
	})

	return &Client{
		http:          httpClient,
		zipBaseURL:    strings.TrimRight(opts.ZipBaseURL, "/"),
		pointsBaseURL: strings.TrimRight(opts.PointsBaseURL, "/"),
		userAgent:     opts.UserAgent,
		cb:            cb,
	}
}

// ResolveZip returns the coordinates of the first place for a US ZIP code.
func (c *Client) ResolveZip(ctx context.Context, zip string) (Location, error) {
	var out zipResponse
	endpoint := c.zipBaseURL + "/us/" + url.PathEscape(zip)
	if err := c.getJSON(ctx, upstreamZip, endpoint, &out); err != nil {
		return Location{}, err
	}
	if len(out.Places) == 0 {
		return Location{}, ErrLocationNotFound
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(out.Places[0].Latitude), 64)
	if err != nil {
		return Location{}, fmt.Errorf("%w: invalid latitude %q", ErrUpstream, out.Places[0].Latitude)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(out.Places[0].Longitude), 64)
	if err != nil {
		return Location{}, fmt.Errorf("%w: invalid longitude %q", ErrUpstream, out.Places[0].Longitude)
	}
	return Location{Latitude: lat, Longitude: lon}, nil
}

// CurrentPeriod returns the first hourly forecast period for a location.
func (c *Client) CurrentPeriod(ctx context.Context, loc Location) (Period, error) {
	var points pointsResponse
	endpoint := fmt.Sprintf("%s/points/%.4f,%.4f", c.pointsBaseURL, loc.Latitude, loc.Longitude)
	if err := c.getJSON(ctx, upstreamPoints, endpoint, &points); err != nil {
		return Period{}, err
	}
	hourlyURL := strings.TrimSpace(points.Properties.ForecastHourly)
	if hourlyURL == "" {
		return Period{}, fmt.Errorf("%w: points response has no forecastHourly", ErrNoForecast)
	}

	var hourly hourlyResponse
	if err := c.getJSON(ctx, upstreamHourly, hourlyURL, &hourly); err != nil {
		return Period{}, err
	}
	if len(hourly.Properties.Periods) == 0 {
		return Period{}, ErrNoForecast
	}
	return hourly.Properties.Periods[0], nil
}

func (c *Client) getJSON(ctx context.Context, upstream, endpoint string, out any) error {
	body, err := c.cb.Execute(func() ([]byte, error) {
		return c.fetch(ctx, endpoint)
	})
	if err != nil {
		switch {
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			metrics.IncWeatherUpstream(upstream, "rejected")
			return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
		case errors.Is(err, ErrLocationNotFound):
			metrics.IncWeatherUpstream(upstream, "not_found")
		default:
			metrics.IncWeatherUpstream(upstream, "error")
			telemetry.Warn("weather.upstream_failed", map[string]any{
				"upstream":   upstream,
				"request_id": telemetry.RequestID(ctx),
				"error":      err.Error(),
			})
		}
		return err
	}
	metrics.IncWeatherUpstream(upstream, "ok")

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode %s response: %v", ErrUpstream, upstream, err)
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/geo+json, application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, ErrLocationNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: status %d from %s", ErrUpstream, resp.StatusCode, req.URL.Host)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadSize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUpstream, err)
	}
	return body, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
