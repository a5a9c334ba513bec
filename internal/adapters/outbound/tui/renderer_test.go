package tui_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ordertrack/ordertrack/internal/adapters/outbound/tui"
	"github.com/ordertrack/ordertrack/internal/domain"
)

func sampleOrders() []domain.Order {
	d1, _ := domain.ParseDate("2026-01-10")
	d2, _ := domain.ParseDate("2026-01-11")
	return []domain.Order{
		{ClientName: "Taras Shevchenko", Number: 11, Date: d1, Amount: decimal.RequireFromString("250"), Status: domain.StatusCompleted},
		{ClientName: "Lesya Ukrainka", Number: 12, Date: d2, Amount: decimal.RequireFromString("75.5"), Status: domain.StatusInProgress},
	}
}

func TestRenderOrders_ContainsHeaderAndRows(t *testing.T) {
	output := tui.RenderOrders(sampleOrders())

	assert.Contains(t, output, "Client Name")
	assert.Contains(t, output, "Order Amount")
	assert.Contains(t, output, "Taras Shevchenko")
	assert.Contains(t, output, "250.00")
	assert.Contains(t, output, "75.50")
	assert.Contains(t, output, "2026-01-11")
	assert.Contains(t, output, "InProgress")
}

func TestRenderOrders_KeepsOrder(t *testing.T) {
	output := tui.RenderOrders(sampleOrders())
	assert.Less(t, strings.Index(output, "Taras"), strings.Index(output, "Lesya"))
}

func TestRenderOrders_Empty(t *testing.T) {
	output := tui.RenderOrders(nil)
	assert.Contains(t, output, "Client Name")
	assert.Contains(t, output, "No orders yet.")
}

func TestRenderOrders_DoesNotMutate(t *testing.T) {
	orders := sampleOrders()
	before := orders[0]
	_ = tui.RenderOrders(orders)
	assert.Equal(t, before.ClientName, orders[0].ClientName)
	assert.Equal(t, before.AmountText(), orders[0].AmountText())
}

func TestRenderStats(t *testing.T) {
	output := tui.RenderStats(domain.ComputeStats(sampleOrders()))

	assert.Contains(t, output, "Total orders:")
	assert.Contains(t, output, "325.50")
	assert.Contains(t, output, "Completed:")
	assert.Contains(t, output, "In progress:")
}

func TestRenderLargest(t *testing.T) {
	output := tui.RenderLargest(sampleOrders()[0])

	assert.Contains(t, output, "Largest order")
	assert.Contains(t, output, "250.00")
	assert.Contains(t, output, "#11")
}

func TestRenderEmpty(t *testing.T) {
	assert.Contains(t, tui.RenderEmpty(), "empty")
}
