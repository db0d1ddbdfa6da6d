// Package geoip looks up the country name for a client IP against an
// ipapi.co-style JSON endpoint. The storefront uses it once per session for
// the "ship to" display; any failure leaves the caller on its default.
package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/cochlearspare/backend/internal/domain"
)

// Client handles communication with the IP-geolocation API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a geolocation client
func NewClient(baseURL string) *Client {
	// Free ipapi.co tier allows ~1000 lookups/day; keep well under it
	limiter := rate.NewLimiter(rate.Limit(0.5), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// SetDebug toggles verbose request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// lookupResponse is the subset of the ipapi.co body the storefront needs
type lookupResponse struct {
	CountryName string `json:"country_name"`
}

// Lookup resolves ip to a country name. An empty ip asks the service about
// the caller's own address. Single attempt, no retry: the session keeps its
// fallback country on any failure.
func (c *Client) Lookup(ctx context.Context, ip string) (string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter error: %w", err)
	}

	reqURL := fmt.Sprintf("%s/json/", c.baseURL)
	if ip != "" {
		reqURL = fmt.Sprintf("%s/%s/json/", c.baseURL, url.PathEscape(ip))
	}

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "CochlearSpare/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGeoLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		if c.debug {
			log.Printf("[GEOIP] API error - Status: %d, Body: %s", resp.StatusCode, string(body))
		}
		return "", fmt.Errorf("%w: status %d", domain.ErrGeoLookupFailed, resp.StatusCode)
	}

	var lookup lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&lookup); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if lookup.CountryName == "" {
		return "", fmt.Errorf("%w: country_name missing", domain.ErrGeoLookupFailed)
	}

	if c.debug {
		log.Printf("[GEOIP] Resolved %q to %q", ip, lookup.CountryName)
	}
	return lookup.CountryName, nil
}
