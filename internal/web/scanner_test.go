package web

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaykalam/testimonialstack/internal/cache"
)

// newBackend serves a grid widget under id "good" and 404s everything else.
func newBackend(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/widgets/good/render" {
			_, _ = w.Write([]byte(`{
				"widget": {"id": "good", "layout": "grid", "settings": {"accentColor": "#ff0000"}},
				"testimonials": [{"author_name": "Ada", "content": "Great tool!"}]
			}`))
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestScanner(t *testing.T, origin string) *Scanner {
	t.Helper()
	return NewScanner(NewClient(origin, cache.NewMemory(DefaultTTL), DefaultTTL))
}

const hostPage = `<!DOCTYPE html>
<html><head><title>Host</title></head><body>
<h1>Welcome</h1>
<div id="testimonialstack-widget-good"></div>
<div id="testimonialstack-widget-missing"></div>
<div id="unrelated"></div>
</body></html>`

func TestScanRendersAndIsolatesFailures(t *testing.T) {
	srv := newBackend(t)
	s := newTestScanner(t, srv.URL)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(hostPage))
	require.NoError(t, err)

	n := s.Scan(context.Background(), doc)
	assert.Equal(t, 1, n)

	out, err := doc.Html()
	require.NoError(t, err)

	// the good widget rendered with its scoped fragment
	assert.Contains(t, out, "testimonialstack-widget--good")
	assert.Contains(t, out, "Great tool!")
	assert.Contains(t, out, "#ff0000")

	// the missing widget got the placeholder, not nothing
	assert.Contains(t, out, "Widget not found")

	// unrelated elements untouched
	assert.Contains(t, out, `<div id="unrelated"></div>`)
}

func TestScanHTMLIsIdempotent(t *testing.T) {
	srv := newBackend(t)
	s := newTestScanner(t, srv.URL)

	out1, n1, err := s.ScanHTML(context.Background(), hostPage)
	require.NoError(t, err)
	assert.Equal(t, 1, n1)

	out2, n2, err := s.ScanHTML(context.Background(), out1)
	require.NoError(t, err)
	assert.Equal(t, 1, n2)
	assert.Equal(t, out1, out2, "re-scanning a rendered page must converge")

	// replaced, never appended
	assert.Equal(t, 1, strings.Count(out2, "Widget not found"))
	assert.Equal(t, 1, strings.Count(out2, "Great tool!"))
}

func TestScanEmptyPage(t *testing.T) {
	srv := newBackend(t)
	s := newTestScanner(t, srv.URL)

	_, n, err := s.ScanHTML(context.Background(), "<html><body><p>nothing here</p></body></html>")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestScanFileInPlace(t *testing.T) {
	srv := newBackend(t)
	s := newTestScanner(t, srv.URL)

	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(hostPage), 0o644))

	n, err := s.ScanFile(context.Background(), path, "")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Great tool!")

	// rescanning an already-rendered file is a no-op write
	before, err := os.Stat(path)
	require.NoError(t, err)
	_, err = s.ScanFile(context.Background(), path, "")
	require.NoError(t, err)
	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())
}

func TestScanFileToOutput(t *testing.T) {
	srv := newBackend(t)
	s := newTestScanner(t, srv.URL)

	dir := t.TempDir()
	in := filepath.Join(dir, "in.html")
	out := filepath.Join(dir, "out.html")
	require.NoError(t, os.WriteFile(in, []byte(hostPage), 0o644))

	_, err := s.ScanFile(context.Background(), in, out)
	require.NoError(t, err)

	src, err := os.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, hostPage, string(src), "input untouched when output is set")

	rendered, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(rendered), "Great tool!")
}

func TestScanURLRejectsNonHTTP(t *testing.T) {
	srv := newBackend(t)
	s := newTestScanner(t, srv.URL)
	_, _, err := s.ScanURL(context.Background(), "ftp://example.com")
	assert.Error(t, err)
}

func TestScanURL(t *testing.T) {
	backend := newBackend(t)
	host := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(hostPage))
	}))
	t.Cleanup(host.Close)

	s := newTestScanner(t, backend.URL)
	out, n, err := s.ScanURL(context.Background(), host.URL)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Contains(t, out, "Great tool!")
	assert.Contains(t, out, "Widget not found")
}

func TestScanReportsImpression(t *testing.T) {
	type trackEvent struct {
		widgetID string
		body     string
	}
	events := make(chan trackEvent, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/widgets/good/render":
			_, _ = w.Write([]byte(`{
				"widget": {"id": "good", "layout": "grid", "settings": {}},
				"testimonials": [{"author_name": "Ada", "content": "Great tool!"}]
			}`))
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/track"):
			body, _ := io.ReadAll(r.Body)
			id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/api/widgets/"), "/track")
			events <- trackEvent{widgetID: id, body: string(body)}
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	s := newTestScanner(t, srv.URL)
	_, n, err := s.ScanHTML(context.Background(), hostPage)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	select {
	case ev := <-events:
		assert.Equal(t, "good", ev.widgetID)
		assert.JSONEq(t, `{"event": "impression"}`, ev.body)
	case <-time.After(2 * time.Second):
		t.Fatal("rendered widget never reported an impression")
	}

	// the failed mount point must not report one
	select {
	case ev := <-events:
		t.Fatalf("unexpected event for widget %s", ev.widgetID)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestScanURLReusedAcrossPages(t *testing.T) {
	backend := newBackend(t)
	host := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/a":
			_, _ = w.Write([]byte(`<html><body><p>page-a</p><div id="testimonialstack-widget-good"></div></body></html>`))
		case "/b":
			_, _ = w.Write([]byte(`<html><body><p>page-b</p></body></html>`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(host.Close)

	// one scanner, several visits: each scan must see only its own page body
	s := newTestScanner(t, backend.URL)

	outA, nA, err := s.ScanURL(context.Background(), host.URL+"/a")
	require.NoError(t, err)
	assert.Equal(t, 1, nA)
	assert.Contains(t, outA, "page-a")

	outB, nB, err := s.ScanURL(context.Background(), host.URL+"/b")
	require.NoError(t, err)
	assert.Zero(t, nB)
	assert.Contains(t, outB, "page-b")
	assert.NotContains(t, outB, "page-a")
}

func TestFileWatcherInitialScan(t *testing.T) {
	srv := newBackend(t)
	s := newTestScanner(t, srv.URL)

	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(hostPage), 0o644))

	w, err := NewFileWatcher(s, path)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Great tool!")

	require.NoError(t, w.Stop())
	assert.NoError(t, w.Stop(), "stop is idempotent")
}
