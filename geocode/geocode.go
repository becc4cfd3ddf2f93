// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/time/rate"
)

// DefaultURL is the public Nominatim instance
const DefaultURL = "https://nominatim.openstreetmap.org"

// DefaultInterval keeps us under Nominatim's 1 request per second policy
const DefaultInterval = 1100 * time.Millisecond

var ErrNoResult = errors.New("no geocoding result")

type Result struct {
	Latitude    float64
	Longitude   float64
	DisplayName string
}

type Config struct {
	BaseURL   string
	UserAgent string
	// Region is appended to free-form addresses, e.g. "New Orleans, LA"
	Region string
	// Interval between outgoing requests; zero or less disables the limit
	Interval time.Duration
	CacheTTL time.Duration
	// Upper bound on cached lookups
	CacheSize  uint64
	HTTPClient *http.Client
}

// Client talks to a Nominatim-compatible geocoder. Requests are rate
// limited and results cached, so one Client should be shared.
type Client struct {
	baseURL   string
	userAgent string
	region    string
	http      *http.Client
	limiter   *rate.Limiter
	cache     *ttlcache.Cache[string, Result]
}

func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "NOLA Christmas Map"
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 10 * time.Minute
	}
	if cfg.CacheSize == 0 {
		cfg.CacheSize = 1000
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}

	limit := rate.Inf
	if cfg.Interval > 0 {
		limit = rate.Every(cfg.Interval)
	}

	// Expired items are skipped on Get, so no cleanup goroutine is started
	cache := ttlcache.New(
		ttlcache.WithTTL[string, Result](cfg.CacheTTL),
		ttlcache.WithCapacity[string, Result](cfg.CacheSize),
		ttlcache.WithDisableTouchOnHit[string, Result](),
	)

	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		region:    cfg.Region,
		http:      cfg.HTTPClient,
		limiter:   rate.NewLimiter(limit, 1),
		cache:     cache,
	}
}

// InRegion qualifies a free-form address with the configured region
func (c *Client) InRegion(address string) string {
	address = strings.TrimSpace(address)
	if c.region == "" || address == "" {
		return address
	}
	return address + ", " + c.region
}

type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func (p place) result() (Result, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return Result{}, fmt.Errorf("invalid latitude %q: %w", p.Lat, err)
	}
	lng, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return Result{}, fmt.Errorf("invalid longitude %q: %w", p.Lon, err)
	}
	return Result{Latitude: lat, Longitude: lng, DisplayName: ShortName(p.DisplayName)}, nil
}

// Search finds the best match for a query, used as-is
func (c *Client) Search(ctx context.Context, query string) (Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Result{}, ErrNoResult
	}

	key := "search:" + strings.ToLower(query)
	if item := c.cache.Get(key); item != nil {
		return item.Value(), nil
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	params.Set("limit", "1")

	var places []place
	if err := c.get(ctx, "/search", params, &places); err != nil {
		return Result{}, err
	}
	if len(places) == 0 {
		return Result{}, ErrNoResult
	}

	res, err := places[0].result()
	if err != nil {
		return Result{}, err
	}
	c.cache.Set(key, res, ttlcache.DefaultTTL)
	return res, nil
}

// Reverse finds the address at a coordinate
func (c *Client) Reverse(ctx context.Context, lat, lng float64) (Result, error) {
	key := fmt.Sprintf("reverse:%.6f,%.6f", lat, lng)
	if item := c.cache.Get(key); item != nil {
		return item.Value(), nil
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))

	var p place
	if err := c.get(ctx, "/reverse", params, &p); err != nil {
		return Result{}, err
	}
	if p.DisplayName == "" {
		return Result{}, ErrNoResult
	}

	res := Result{Latitude: lat, Longitude: lng, DisplayName: ShortName(p.DisplayName)}
	c.cache.Set(key, res, ttlcache.DefaultTTL)
	return res, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, v any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("geocoder request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocoder returned %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode geocoder response: %w", err)
	}
	return nil
}

// ShortName keeps the first three comma-separated parts of a display name
func ShortName(displayName string) string {
	parts := strings.Split(displayName, ",")
	if len(parts) > 3 {
		parts = parts[:3]
	}
	return strings.Join(parts, ",")
}
