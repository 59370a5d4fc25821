package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"orgdir/internal/clock"
)

const clockGap = 3

// RenderClocks lays the dials out side by side, wrapping onto further rows
// when the terminal is too narrow
func (r *Renderer) RenderClocks(readings []clock.Reading, radius, width int) string {
	if len(readings) == 0 {
		return ""
	}
	if radius < 2 {
		radius = 2
	}

	cellWidth := 4*radius + 1 + clockGap
	perRow := len(readings)
	if width > 0 {
		perRow = width / cellWidth
		if perRow < 1 {
			perRow = 1
		}
	}

	var rows []string
	for start := 0; start < len(readings); start += perRow {
		end := start + perRow
		if end > len(readings) {
			end = len(readings)
		}
		cells := make([]string, 0, end-start)
		for _, reading := range readings[start:end] {
			cells = append(cells, r.renderClock(reading, radius, cellWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n\n")
}

func (r *Renderer) renderClock(reading clock.Reading, radius, cellWidth int) string {
	center := lipgloss.NewStyle().Width(cellWidth - clockGap).Align(lipgloss.Center)
	face := r.styles.ClockFace.Render(strings.Join(clock.Face(reading, radius), "\n"))
	cell := lipgloss.JoinVertical(lipgloss.Center,
		face,
		center.Render(r.styles.ClockLabel.Render(reading.Label)),
		center.Render(r.styles.ClockTime.Render(reading.Time)),
	)
	return lipgloss.NewStyle().PaddingRight(clockGap).Render(cell)
}
