package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jaykalam/testimonialstack/internal/cache"
	"github.com/jaykalam/testimonialstack/internal/logger"
	"github.com/jaykalam/testimonialstack/internal/widget"
)

const (
	// DefaultOrigin mirrors the embed script's fallback when it cannot
	// determine its own origin.
	DefaultOrigin = "http://localhost:3000"
	// DefaultTTL matches the backend's 300 second cache-control hint.
	DefaultTTL     = 5 * time.Minute
	RequestTimeout = 15 * time.Second
)

// Tracked event names accepted by the track endpoint.
const (
	EventClick      = "click"
	EventImpression = "impression"
)

// ErrUnavailable is the only error RenderPayload returns: bad id, inactive
// widget, non-2xx status, network or decode failure all collapse into it.
var ErrUnavailable = errors.New("web: widget unavailable")

// Client fetches widget render payloads from the backend with a cache-aside
// TTL layer, and reports engagement events best-effort.
type Client struct {
	origin string
	http   *http.Client
	cache  cache.KV
	ttl    time.Duration
}

// NewClient returns a Client for the given origin. A ttl <= 0 selects
// DefaultTTL; an empty origin selects DefaultOrigin.
func NewClient(origin string, kv cache.KV, ttl time.Duration) *Client {
	if origin == "" {
		origin = DefaultOrigin
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Client{
		origin: strings.TrimRight(origin, "/"),
		http:   &http.Client{Timeout: RequestTimeout},
		cache:  kv,
		ttl:    ttl,
	}
}

// Origin returns the backend origin the client talks to.
func (c *Client) Origin() string { return c.origin }

func (c *Client) cacheKey(widgetID string) string { return "widget|" + widgetID }

// RenderPayload returns the widget's config and testimonial list, serving
// from cache when a fresh entry exists. Failed fetches are never cached, so
// the next call is the retry path.
func (c *Client) RenderPayload(ctx context.Context, widgetID string) (*widget.RenderPayload, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if v, err := c.cache.Get(c.cacheKey(widgetID)); err == nil {
		var p widget.RenderPayload
		if json.Unmarshal(v, &p) == nil && p.Widget != nil {
			return &p, nil
		}
	}

	url := fmt.Sprintf("%s/api/widgets/%s/render", c.origin, widgetID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logger.Errorf("building render request for widget %s: %v", widgetID, err)
		return nil, ErrUnavailable
	}
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Errorf("fetching widget %s: %v", widgetID, err)
		return nil, ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warnf("render endpoint returned %d for widget %s", resp.StatusCode, widgetID)
		return nil, ErrUnavailable
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Errorf("reading render response for widget %s: %v", widgetID, err)
		return nil, ErrUnavailable
	}
	var p widget.RenderPayload
	if err := json.Unmarshal(body, &p); err != nil {
		logger.Errorf("decoding render response for widget %s: %v", widgetID, err)
		return nil, ErrUnavailable
	}
	if p.Widget == nil {
		logger.Warnf("render endpoint returned no widget for %s", widgetID)
		return nil, ErrUnavailable
	}

	if err := c.cache.Put(c.cacheKey(widgetID), body, c.ttl); err != nil {
		logger.Warnf("caching payload for widget %s: %v", widgetID, err)
	}
	return &p, nil
}

// Track notifies the backend of an engagement event. It never returns an
// error to the caller and never delays caller continuation: the POST runs on
// its own goroutine and every failure is swallowed.
func (c *Client) Track(widgetID, event string) {
	url := fmt.Sprintf("%s/api/widgets/%s/track", c.origin, widgetID)
	body, err := json.Marshal(map[string]string{"event": event})
	if err != nil {
		return
	}
	go func() {
		req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return
		}
		req.Header.Set("Content-Type", "application/json")
		resp, err := c.http.Do(req)
		if err != nil {
			return
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()
}
