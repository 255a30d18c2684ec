package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jaykalam/testimonialstack/internal/render"
	web "github.com/jaykalam/testimonialstack/internal/web"
)

// WidgetRenderHandler returns the MCP tool handler for the "widget-render"
// tool: the exact embed fragment for a widget id, styles included.
func WidgetRenderHandler(client *web.Client) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if ctx.Err() != nil {
			return mcp.NewToolResultError(ctx.Err().Error()), nil
		}
		widgetID, err := req.RequireString("widget_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		payload, err := client.RenderPayload(ctx, widgetID)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		html := render.Widget(*payload.Widget, payload.Testimonials)
		return mcp.NewToolResultText(html), nil
	}
}
