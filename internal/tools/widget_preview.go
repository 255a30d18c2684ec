package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jaykalam/testimonialstack/internal/render"
	web "github.com/jaykalam/testimonialstack/internal/web"
	"github.com/jaykalam/testimonialstack/internal/widget"
)

// WidgetPreviewHandler returns the MCP tool handler for the "widget-preview"
// tool: a readable markdown rendition of what the widget shows, for agents
// that want to inspect content rather than markup.
func WidgetPreviewHandler(client *web.Client) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		widgetID, err := req.RequireString("widget_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		payload, err := client.RenderPayload(ctx, widgetID)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return mcp.NewToolResultText(formatPreview(payload)), nil
	}
}

// formatPreview builds the summary header and converts the layout markup
// (without the style block, which is noise in a text preview) to markdown.
func formatPreview(p *widget.RenderPayload) string {
	cfg := *p.Widget
	var sb strings.Builder
	name := cfg.Name
	if name == "" {
		name = cfg.ID
	}
	sb.WriteString("# ")
	sb.WriteString(name)
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Layout: %s | Testimonials: %d\n\n", widget.ParseLayout(cfg.Layout), len(p.Testimonials))

	html := render.Layout(cfg, p.Testimonials)
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		markdown = html
	}
	sb.WriteString(markdown)
	return sb.String()
}
