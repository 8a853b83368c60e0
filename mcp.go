package domsettle

import (
	"context"
	"encoding/json"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hazyhaar/pkg/kit"
)

// Stabilizer is the service capability exposed over MCP. *Service
// satisfies it; tests substitute a fake.
type Stabilizer interface {
	WaitTarget(ctx context.Context, t TargetConfig) (*Report, error)
	ProbeTarget(ctx context.Context, t TargetConfig) (*ProbeReport, error)
}

// RegisterMCP registers domsettle tools on an MCP server.
func RegisterMCP(srv *mcp.Server, svc Stabilizer) {
	registerWaitTool(srv, svc)
	registerProbeTool(srv, svc)
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

// --- wait ---

type waitReq struct {
	URL       string `json:"url"`
	Selector  string `json:"selector"`
	TimeoutMs int64  `json:"timeout_ms"`
	Debug     bool   `json:"debug"`
}

func registerWaitTool(srv *mcp.Server, svc Stabilizer) {
	tool := &mcp.Tool{
		Name:        "domsettle_wait",
		Description: "Wait until a page element has stopped animating and moving, or the timeout elapses.",
		InputSchema: inputSchema(map[string]any{
			"url":        map[string]any{"type": "string", "description": "Page URL to open"},
			"selector":   map[string]any{"type": "string", "description": "CSS selector of the element"},
			"timeout_ms": map[string]any{"type": "integer", "description": "Overall wait timeout in milliseconds (default 30000)"},
			"debug":      map[string]any{"type": "boolean", "description": "Emit per-iteration debug logs"},
		}, []string{"url", "selector"}),
	}

	endpoint := func(ctx context.Context, req any) (any, error) {
		r := req.(*waitReq)
		return svc.WaitTarget(ctx, TargetConfig{
			URL:      r.URL,
			Selector: r.Selector,
			Timeout:  time.Duration(r.TimeoutMs) * time.Millisecond,
			Debug:    r.Debug,
		})
	}

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r waitReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &r}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}

// --- probe ---

type probeReq struct {
	URL      string `json:"url"`
	Selector string `json:"selector"`
	Debug    bool   `json:"debug"`
}

func registerProbeTool(srv *mcp.Server, svc Stabilizer) {
	tool := &mcp.Tool{
		Name:        "domsettle_probe",
		Description: "Take a single stability sample of a page element: geometry diff plus animation and transition state.",
		InputSchema: inputSchema(map[string]any{
			"url":      map[string]any{"type": "string", "description": "Page URL to open"},
			"selector": map[string]any{"type": "string", "description": "CSS selector of the element"},
			"debug":    map[string]any{"type": "boolean", "description": "Emit probe debug logs"},
		}, []string{"url", "selector"}),
	}

	endpoint := func(ctx context.Context, req any) (any, error) {
		r := req.(*probeReq)
		return svc.ProbeTarget(ctx, TargetConfig{
			URL:      r.URL,
			Selector: r.Selector,
			Debug:    r.Debug,
		})
	}

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r probeReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &r}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}
