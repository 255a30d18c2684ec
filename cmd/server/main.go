package main

import (
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jaykalam/testimonialstack/internal/cache"
	"github.com/jaykalam/testimonialstack/internal/logger"
	tools "github.com/jaykalam/testimonialstack/internal/tools"
	web "github.com/jaykalam/testimonialstack/internal/web"
)

func main() {
	if err := logger.InitFromEnv(); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Infof("Starting TestimonialStack embed MCP server")

	// Connect to cache daemon; start it if needed, then connect. If the
	// daemon never comes up, fall back to a process-local cache: widget
	// rendering has to fail soft, not refuse to start.
	sock := defaultSocketPath()
	logger.Infof("Attempting to connect to cache daemon at %s", sock)
	var kv cache.KV
	client, err := connectCache(sock)
	if err != nil {
		logger.Warnf("Failed to connect to cache daemon: %v, attempting to start daemon", err)
		if startErr := startCacheDaemon(); startErr != nil {
			logger.Errorf("Failed to start cache daemon: %v", startErr)
		} else {
			logger.Infof("Cache daemon started successfully")
		}
		// wait for socket to appear
		deadline := time.Now().Add(5 * time.Second)
		for time.Now().Before(deadline) {
			if c2, err2 := connectCache(sock); err2 == nil {
				client = c2
				break
			}
			time.Sleep(200 * time.Millisecond)
		}
	}
	if client != nil {
		logger.Infof("Connected to cache daemon")
		kv = client
	} else {
		logger.Warnf("Cache daemon unavailable, using in-memory cache")
		kv = cache.NewMemory(web.DefaultTTL)
	}

	origin := os.Getenv("TESTIMONIALSTACK_ORIGIN")
	apiClient := web.NewClient(origin, kv, web.DefaultTTL)
	logger.Infof("Initialized widget client for origin %s", apiClient.Origin())

	s := server.NewMCPServer(
		"TestimonialStack Embed",
		"0.1.0",
		server.WithRecovery(),
		server.WithToolCapabilities(false),
	)

	toolRender := mcp.NewTool("widget-render",
		mcp.WithDescription(multiline(
			"Renders a TestimonialStack widget and returns the embed HTML fragment",
			"\nFunctionality:",
			"- Takes a widget id as input",
			"- Fetches the widget configuration and its approved testimonials",
			"- Returns the scoped style block plus the layout markup, exactly as embedded on a host page",
			"\nUsage notes:",
			"- The widget id is the UUID shown in the dashboard's embed snippet",
			"- Payloads are cached for 5 minutes, so repeated renders are cheap",
			"- Unknown layout values render as the grid layout",
		)),
		mcp.WithString("widget_id", mcp.Required(), mcp.Description("The id of the widget to render")),
	)
	s.AddTool(toolRender, tools.WidgetRenderHandler(apiClient))
	logger.Infof("Registered widget-render tool")

	toolPreview := mcp.NewTool("widget-preview",
		mcp.WithDescription(multiline(
			"Previews a TestimonialStack widget as readable markdown",
			"\nFunctionality:",
			"- Takes a widget id as input",
			"- Fetches the widget configuration and its approved testimonials",
			"- Returns the widget name, layout and testimonial content converted to markdown",
			"\nUsage notes:",
			"- Use widget-render instead when the raw embed HTML is needed",
			"- Payloads are cached for 5 minutes, so repeated previews are cheap",
		)),
		mcp.WithString("widget_id", mcp.Required(), mcp.Description("The id of the widget to preview")),
	)
	s.AddTool(toolPreview, tools.WidgetPreviewHandler(apiClient))
	logger.Infof("Registered widget-preview tool")

	logger.Infof("Starting MCP server on stdio")
	if err := server.ServeStdio(s); err != nil {
		logger.Errorf("server error: %v", err)
	}
}

// multiline joins lines with newlines for tool descriptions.
func multiline(lines ...string) string { return strings.Join(lines, "\n") }

func defaultSocketPath() string {
	if s := os.Getenv("TESTIMONIALSTACK_CACHE_SOCK"); s != "" {
		return s
	}
	home, _ := os.UserHomeDir()
	if home == "" {
		home = "."
	}
	return filepath.Join(home, ".cache", "testimonialstack", "cache.sock")
}

func connectCache(sock string) (*cache.Client, error) {
	// quick probe
	conn, err := net.DialTimeout("unix", sock, 200*time.Millisecond)
	if err != nil {
		return nil, err
	}
	_ = conn.Close()
	return cache.NewClient(sock), nil
}

func startCacheDaemon() error {
	// 1) Try cache binary next to this server executable (works with absolute invocation)
	if exePath, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exePath)
		sibling := filepath.Join(exeDir, "testimonialstack-cache")
		if _, statErr := os.Stat(sibling); statErr == nil {
			cmd := exec.Command(sibling)
			cmd.Stdout = nil
			cmd.Stderr = nil
			cmd.Env = os.Environ()
			return cmd.Start()
		}
	}

	// 2) Try PATH binary
	if path, err := exec.LookPath("testimonialstack-cache"); err == nil {
		cmd := exec.Command(path)
		cmd.Stdout = nil
		cmd.Stderr = nil
		cmd.Env = os.Environ()
		return cmd.Start()
	}

	// 3) Try local binary in current working directory (best-effort)
	if _, err := os.Stat("./testimonialstack-cache"); err == nil {
		cmd := exec.Command("./testimonialstack-cache")
		cmd.Stdout = nil
		cmd.Stderr = nil
		cmd.Env = os.Environ()
		return cmd.Start()
	}

	return exec.ErrNotFound
}
