package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ordertrack/ordertrack/internal/domain"
)

const chartWidth = 50

// RenderStatusChart draws the Completed / InProgress split as a single
// proportional bar with percentage labels.
func RenderStatusChart(s domain.StatusSeries) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Order status") + "\n\n")

	total := s.Total()
	if total == 0 {
		b.WriteString(dimStyle.Render("No orders to chart.") + "\n")
		return b.String()
	}

	filled := s.Completed * chartWidth / total
	bar := lipgloss.NewStyle().Foreground(success).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(orange).Render(strings.Repeat("█", chartWidth-filled))
	b.WriteString("  " + bar + "\n\n")

	fmt.Fprintf(&b, "  %s %s %s\n",
		passStyle.Render("■"), padRight(string(domain.StatusCompleted), 12),
		dimStyle.Render(fmt.Sprintf("%d  (%s)", s.Completed, percent(s.Completed, total))))
	fmt.Fprintf(&b, "  %s %s %s\n",
		progressStyle.Render("■"), padRight(string(domain.StatusInProgress), 12),
		dimStyle.Render(fmt.Sprintf("%d  (%s)", s.InProgress, percent(s.InProgress, total))))
	return b.String()
}

// RenderDateChart draws one bar per distinct order date, scaled to the
// busiest date.
func RenderDateChart(series []domain.DateCount) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Orders per date") + "\n\n")

	if len(series) == 0 {
		b.WriteString(dimStyle.Render("No orders to chart.") + "\n")
		return b.String()
	}

	peak := 0
	for _, dc := range series {
		peak = max(peak, dc.Count)
	}

	barStyle := lipgloss.NewStyle().Foreground(info)
	for _, dc := range series {
		width := max(1, dc.Count*chartWidth/peak)
		fmt.Fprintf(&b, "  %s %s %s\n",
			dimStyle.Render(dc.Date),
			barStyle.Render(strings.Repeat("█", width)),
			titleStyle.Render(fmt.Sprintf("%d", dc.Count)),
		)
	}
	return b.String()
}

func percent(part, total int) string {
	return fmt.Sprintf("%.1f%%", float64(part)*100/float64(total))
}
