package views

import "github.com/charmbracelet/lipgloss"

// RenderFooter always yields exactly one line so showing or hiding the
// footer never changes the body height
func (r *Renderer) RenderFooter(text string, visible bool, width int) string {
	if !visible || text == "" {
		return ""
	}
	style := r.styles.Footer.MaxHeight(1)
	if width > 0 {
		style = style.MaxWidth(width).Align(lipgloss.Center).Width(width)
	}
	return style.Render(text)
}
