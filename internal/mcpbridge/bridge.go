package mcpbridge

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/10aParikh/visabridge/gateway"
	"github.com/10aParikh/visabridge/tools"
)

// Register exposes every catalog tool on the MCP server. Results are always
// text content: the partner payload as JSON on success, the "Error: ..." line
// on failure. The gateway never raises past its boundary.
func Register(srv *server.MCPServer, d *gateway.Dispatcher, registry *tools.Registry) {
	for _, spec := range registry.All() {
		srv.AddTool(buildTool(spec), handler(d, spec.Name))
	}
}

func buildTool(spec tools.Spec) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(spec.Description)}
	for _, p := range spec.Params {
		opts = append(opts, paramOption(p))
	}
	return mcp.NewTool(spec.Name, opts...)
}

func paramOption(p tools.Param) mcp.ToolOption {
	var propOpts []mcp.PropertyOption
	if p.Description != "" {
		propOpts = append(propOpts, mcp.Description(p.Description))
	}
	if p.Required {
		propOpts = append(propOpts, mcp.Required())
	}
	switch p.Type {
	case tools.TypeNumber, tools.TypeInteger:
		if d, ok := asDefaultNumber(p.Default); ok {
			propOpts = append(propOpts, mcp.DefaultNumber(d))
		}
		return mcp.WithNumber(p.Name, propOpts...)
	case tools.TypeObject:
		return mcp.WithObject(p.Name, propOpts...)
	default:
		if d, ok := p.Default.(string); ok {
			propOpts = append(propOpts, mcp.DefaultString(d))
		}
		return mcp.WithString(p.Name, propOpts...)
	}
}

func asDefaultNumber(raw any) (float64, bool) {
	switch v := raw.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

func handler(d *gateway.Dispatcher, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res := d.Invoke(ctx, tools.Call{Tool: name, Args: req.GetArguments()})
		if !res.Ok() {
			return mcp.NewToolResultText(res.Err), nil
		}
		raw, err := json.Marshal(res.Payload)
		if err != nil {
			return mcp.NewToolResultText("Error: encode payload: " + err.Error()), nil
		}
		return mcp.NewToolResultText(string(raw)), nil
	}
}
