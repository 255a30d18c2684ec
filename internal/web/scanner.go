package web

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"github.com/jaykalam/testimonialstack/internal/logger"
	"github.com/jaykalam/testimonialstack/internal/render"
)

// MountPrefix is the naming convention for mount points: an element whose id
// is MountPrefix followed by the widget id.
const MountPrefix = "testimonialstack-widget-"

// Shown in place of a mount point whose widget could not be fetched.
const notFoundHTML = `<p style="opacity: 0.5; font-size: 12px;">Widget not found</p>`

// Scanner discovers widget mount points in host pages and replaces their
// content with rendered embed fragments. A scan is idempotent: re-rendering a
// mount point replaces its content, so already-rendered pages converge.
type Scanner struct {
	client *Client
	c      *colly.Collector

	mu   sync.Mutex
	page []byte // body of the most recent Visit
}

func NewScanner(client *Client) *Scanner {
	s := &Scanner{client: client}
	c := colly.NewCollector(
		colly.AllowURLRevisit(),
		colly.Async(false),
	)
	c.SetRequestTimeout(RequestTimeout)
	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", NextUserAgent())
		r.Headers.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	})
	// Registered once here; callbacks on a colly collector accumulate, so a
	// long-lived scanner must not add one per Visit.
	c.OnResponse(func(r *colly.Response) {
		s.mu.Lock()
		s.page = append([]byte(nil), r.Body...)
		s.mu.Unlock()
	})
	s.c = c
	return s
}

// Scan processes every mount point in the document in document order and
// reports how many rendered successfully. A failure on one widget never
// aborts the rest; its mount point gets the not-found placeholder instead.
// Each successful render reports an impression event, best-effort.
func (s *Scanner) Scan(ctx context.Context, doc *goquery.Document) int {
	rendered := 0
	doc.Find(`[id^="` + MountPrefix + `"]`).Each(func(_ int, sel *goquery.Selection) {
		widgetID := strings.TrimPrefix(sel.AttrOr("id", ""), MountPrefix)
		if widgetID == "" {
			return
		}
		payload, err := s.client.RenderPayload(ctx, widgetID)
		if err != nil {
			logger.Warnf("widget %s unavailable, rendering placeholder", widgetID)
			sel.SetHtml(notFoundHTML)
			return
		}
		sel.SetHtml(render.Widget(*payload.Widget, payload.Testimonials))
		s.client.Track(widgetID, EventImpression)
		rendered++
	})
	return rendered
}

// ScanHTML parses an HTML document, scans it, and returns the resulting
// markup plus the number of widgets rendered.
func (s *Scanner) ScanHTML(ctx context.Context, src string) (string, int, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return "", 0, err
	}
	n := s.Scan(ctx, doc)
	out, err := doc.Html()
	if err != nil {
		return "", 0, err
	}
	return out, n, nil
}

// ScanFile scans the HTML file at path and writes the result to outPath. An
// empty outPath rewrites the file in place, and only when the content
// actually changed, so a watcher-triggered rescan of an already-rendered page
// settles instead of looping.
func (s *Scanner) ScanFile(ctx context.Context, path, outPath string) (int, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	out, n, err := s.ScanHTML(ctx, string(src))
	if err != nil {
		return 0, err
	}
	if outPath == "" {
		if bytes.Equal(src, []byte(out)) {
			return n, nil
		}
		outPath = path
	}
	if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
		return n, err
	}
	return n, nil
}

// ScanURL fetches a remote host page and returns the scanned markup. The
// fetch goes through colly with the rotating user agent so staging pages
// behind bot heuristics still answer.
func (s *Scanner) ScanURL(ctx context.Context, rawURL string) (string, int, error) {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return "", 0, errors.New("url must start with http:// or https://")
	}

	originalCtx := s.c.Context
	s.c.Context = ctx
	defer func() { s.c.Context = originalCtx }()

	s.mu.Lock()
	s.page = nil
	s.mu.Unlock()

	if err := s.c.Visit(rawURL); err != nil {
		return "", 0, err
	}
	if ctx != nil && ctx.Err() != nil {
		return "", 0, ctx.Err()
	}

	s.mu.Lock()
	page := s.page
	s.page = nil
	s.mu.Unlock()
	if len(page) == 0 {
		return "", 0, errors.New("empty response body")
	}
	return s.ScanHTML(ctx, string(page))
}
