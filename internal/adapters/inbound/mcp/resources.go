package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ordertrack/ordertrack/internal/domain"
)

// registerResources registers all ordertrack MCP resources on the given server.
func registerResources(s *server.MCPServer, t *orderTools) {
	s.AddResource(
		mcplib.NewResource(
			"ordertrack://orders",
			"Orders",
			mcplib.WithResourceDescription("All orders in insertion order"),
			mcplib.WithMIMEType("application/json"),
		),
		t.handleOrdersResource,
	)

	s.AddResource(
		mcplib.NewResource(
			"ordertrack://stats",
			"Statistics",
			mcplib.WithResourceDescription("Order count, total amount and status counts"),
			mcplib.WithMIMEType("application/json"),
		),
		t.handleStatsResource,
	)

	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"ordertrack://orders/{number}",
			"Orders by number",
			mcplib.WithTemplateDescription("Every order sharing an order number"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		t.handleOrderResource,
	)
}

func (t *orderTools) handleOrdersResource(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return jsonResource(request.Params.URI, t.svc.List())
}

func (t *orderTools) handleStatsResource(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return jsonResource(request.Params.URI, t.svc.Stats())
}

func (t *orderTools) handleOrderResource(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	raw := templateArg(request.Params.Arguments["number"])
	number, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid order number %q", raw)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	matches := []domain.Order{}
	for _, o := range t.svc.List() {
		if o.Number == number {
			matches = append(matches, o)
		}
	}
	return jsonResource(request.Params.URI, matches)
}

// templateArg extracts a URI template variable, which the server may hand
// over as a string or a single-element slice.
func templateArg(v any) string {
	switch a := v.(type) {
	case string:
		return a
	case []string:
		if len(a) > 0 {
			return a[0]
		}
	}
	return ""
}

func jsonResource(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
