package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ordertrack/ordertrack/internal/application"
	"github.com/ordertrack/ordertrack/internal/domain"
)

// registerTools registers all ordertrack MCP tools on the given server.
func registerTools(s *server.MCPServer, t *orderTools) {
	s.AddTool(
		mcplib.NewTool("ordertrack_list",
			mcplib.WithDescription("Returns all orders in insertion order as JSON"),
		),
		t.handleList,
	)

	s.AddTool(
		mcplib.NewTool("ordertrack_add",
			mcplib.WithDescription("Append an order. Order numbers are not checked for uniqueness."),
			mcplib.WithString("client_name", mcplib.Required(), mcplib.Description("Client name")),
			mcplib.WithNumber("order_number", mcplib.Required(), mcplib.Description("Order number")),
			mcplib.WithString("order_amount", mcplib.Required(), mcplib.Description("Order amount, e.g. 149.90")),
			mcplib.WithString("order_date", mcplib.Description("Order date YYYY-MM-DD (default: today)")),
			mcplib.WithString("status", mcplib.Description("Completed or InProgress (default: InProgress)")),
		),
		t.handleAdd,
	)

	s.AddTool(
		mcplib.NewTool("ordertrack_edit",
			mcplib.WithDescription("Update the first order with the given number. Only supplied fields change."),
			mcplib.WithNumber("order_number", mcplib.Required(), mcplib.Description("Number of the order to update")),
			mcplib.WithString("client_name", mcplib.Description("New client name")),
			mcplib.WithNumber("new_order_number", mcplib.Description("New order number")),
			mcplib.WithString("order_date", mcplib.Description("New order date YYYY-MM-DD")),
			mcplib.WithString("order_amount", mcplib.Description("New order amount")),
			mcplib.WithString("status", mcplib.Description("New status")),
		),
		t.handleEdit,
	)

	s.AddTool(
		mcplib.NewTool("ordertrack_delete",
			mcplib.WithDescription("Delete every order with the given number"),
			mcplib.WithNumber("order_number", mcplib.Required(), mcplib.Description("Order number")),
		),
		t.handleDelete,
	)

	s.AddTool(
		mcplib.NewTool("ordertrack_stats",
			mcplib.WithDescription("Returns total count, total amount, completed and in-progress counts"),
		),
		t.handleStats,
	)

	s.AddTool(
		mcplib.NewTool("ordertrack_largest",
			mcplib.WithDescription("Returns the order with the largest amount, or null when there are no orders"),
		),
		t.handleLargest,
	)

	s.AddTool(
		mcplib.NewTool("ordertrack_charts",
			mcplib.WithDescription("Returns the chart series: status counts and orders per date"),
		),
		t.handleCharts,
	)
}

func (t *orderTools) handleList(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return jsonResult(t.svc.List())
}

func (t *orderTools) handleAdd(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	client, err := request.RequireString("client_name")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	number, err := request.RequireInt("order_number")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	amountText, err := request.RequireString("order_amount")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	amount, err := domain.ParseAmount(amountText)
	if err != nil {
		return errorResult(fmt.Sprintf("invalid order_amount %q", amountText)), nil
	}

	date := time.Now()
	if raw := request.GetString("order_date", ""); raw != "" {
		date, err = domain.ParseDate(raw)
		if err != nil {
			return errorResult(fmt.Sprintf("invalid order_date %q (want YYYY-MM-DD)", raw)), nil
		}
	}

	order := domain.Order{
		ClientName: client,
		Number:     number,
		Date:       date,
		Amount:     amount,
		Status:     domain.Status(request.GetString("status", string(domain.StatusInProgress))),
	}.Normalize()

	t.mu.Lock()
	defer t.mu.Unlock()
	t.log.WithField("order_number", number).Debug("adding order")
	if err := t.svc.Add(order); err != nil {
		return errorResult(err.Error()), nil
	}
	return jsonResult(order)
}

func (t *orderTools) handleEdit(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	number, err := request.RequireInt("order_number")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	values := make(map[string]string)
	for _, key := range []string{"client_name", "order_date", "order_amount", "status"} {
		if v := request.GetString(key, ""); v != "" {
			values[key] = v
		}
	}
	if _, ok := request.GetArguments()["new_order_number"]; ok {
		n, err := request.RequireInt("new_order_number")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		values[string(domain.FieldNumber)] = strconv.Itoa(n)
	}

	update, _, err := domain.ParseUpdate(values)
	if err != nil {
		return errorResult(err.Error()), nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	err = t.svc.Edit(number, update)
	switch {
	case application.IsNotFound(err):
		return textResult(fmt.Sprintf("order %d not found", number)), nil
	case err != nil:
		return errorResult(err.Error()), nil
	}
	return textResult(fmt.Sprintf("updated order %d", number)), nil
}

func (t *orderTools) handleDelete(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	number, err := request.RequireInt("order_number")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.log.WithField("order_number", number).Debug("deleting orders")
	removed, err := t.svc.Delete(number)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return jsonResult(map[string]int{"removed": removed})
}

func (t *orderTools) handleStats(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return jsonResult(t.svc.Stats())
}

func (t *orderTools) handleLargest(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	largest, ok := t.svc.Largest()
	if !ok {
		return jsonResult(nil)
	}
	return jsonResult(largest)
}

// chartSeries is the payload of ordertrack_charts.
type chartSeries struct {
	Status domain.StatusSeries `json:"status"`
	Dates  []domain.DateCount  `json:"dates"`
}

func (t *orderTools) handleCharts(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return jsonResult(chartSeries{
		Status: t.svc.StatusSeries(),
		Dates:  t.svc.DateSeries(),
	})
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
