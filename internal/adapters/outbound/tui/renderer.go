package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ordertrack/ordertrack/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	orange  = lipgloss.Color("#FB923C")
	info    = lipgloss.Color("#3B82F6") // blue
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	progressStyle = lipgloss.NewStyle().Foreground(orange)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	columnStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	amountStyle   = lipgloss.NewStyle().Foreground(warning)
	separatorLine = faintStyle.Render(strings.Repeat("─", 80))
)

// Column widths of the order table.
const (
	clientWidth = 20
	numberWidth = 15
	dateWidth   = 15
	amountWidth = 15
	statusWidth = 10
)

// RenderOrders formats orders as a table in their current order.
func RenderOrders(orders []domain.Order) string {
	var b strings.Builder

	b.WriteString(columnStyle.Render(padRight("Client Name", clientWidth)) + " ")
	b.WriteString(columnStyle.Render(padRight("Order Number", numberWidth)) + " ")
	b.WriteString(columnStyle.Render(padRight("Order Date", dateWidth)) + " ")
	b.WriteString(columnStyle.Render(padRight("Order Amount", amountWidth)) + " ")
	b.WriteString(columnStyle.Render(padRight("Status", statusWidth)))
	b.WriteString("\n")
	b.WriteString(separatorLine)
	b.WriteString("\n")

	if len(orders) == 0 {
		b.WriteString(dimStyle.Render("No orders yet.") + "\n")
		return b.String()
	}

	for _, o := range orders {
		fmt.Fprintf(&b, "%s %s %s %s %s\n",
			padRight(o.ClientName, clientWidth),
			padRight(fmt.Sprintf("%d", o.Number), numberWidth),
			padRight(o.DateText(), dateWidth),
			amountStyle.Render(padRight(o.AmountText(), amountWidth)),
			statusStyle(o.Status).Render(padRight(string(o.Status), statusWidth)),
		)
	}
	return b.String()
}

// RenderStats formats the aggregate numbers.
func RenderStats(st domain.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", titleStyle.Render("Total orders:"), st.Total)
	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render("Total amount:"), amountStyle.Render(st.Sum.StringFixed(domain.AmountPlaces)))
	fmt.Fprintf(&b, "%s %s, %s %s\n",
		titleStyle.Render("Completed:"), passStyle.Render(fmt.Sprintf("%d", st.Completed)),
		titleStyle.Render("In progress:"), progressStyle.Render(fmt.Sprintf("%d", st.InProgress)),
	)
	return b.String()
}

// RenderLargest formats the largest order.
func RenderLargest(o domain.Order) string {
	title := headerStyle.Render("Largest order")
	amount := lipgloss.NewStyle().Bold(true).Foreground(warning).Render(o.AmountText())
	details := dimStyle.Render(fmt.Sprintf("#%d  ·  %s  ·  %s  ·  %s", o.Number, o.ClientName, o.DateText(), o.Status))
	return boxStyle.Render(title+"\n\n"+amount+"\n"+details) + "\n"
}

// RenderEmpty is shown when there is nothing to report on.
func RenderEmpty() string {
	return dimStyle.Render("The order list is empty.") + "\n"
}

func statusStyle(s domain.Status) lipgloss.Style {
	if s.IsCompleted() {
		return passStyle
	}
	return progressStyle
}

func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
