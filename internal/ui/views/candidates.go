package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"orgdir/internal/domain"
)

// RenderCandidates renders one row per suggestion. An empty list renders as
// nothing at all, not as an empty box.
func (r *Renderer) RenderCandidates(records []domain.OrganizationRecord, highlight, width int) string {
	if len(records) == 0 {
		return ""
	}

	rows := make([]string, 0, len(records))
	for i, rec := range records {
		name := rec.Name
		if width > 6 && lipgloss.Width(name) > width-6 {
			name = truncate(name, width-6)
		}
		if i == highlight {
			rows = append(rows, r.styles.Highlight.Render("> "+name))
			continue
		}
		rows = append(rows, r.styles.Row.Render(name))
	}
	return strings.Join(rows, "\n")
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if width <= 1 || len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
