package views

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"orgdir/internal/domain"
)

// DefaultAbsentMarker stands in for a missing value
const DefaultAbsentMarker = "—"

// DetailRow is one label/value line of the details panel. Href is empty when
// the value is not a link, Note is an optional sub-line.
type DetailRow struct {
	Label string
	Value string
	Href  string
	Note  string
}

// DetailRows lists the contact fields of a record in display order
func DetailRows(rec domain.OrganizationRecord, marker string) []DetailRow {
	if marker == "" {
		marker = DefaultAbsentMarker
	}

	link := func(label, value string, field domain.LinkField) DetailRow {
		if value == "" {
			return DetailRow{Label: label, Value: marker}
		}
		return DetailRow{Label: label, Value: value, Href: rec.Link(field)}
	}

	phone := link("Phone", rec.Phone, domain.LinkPhone)
	if rec.Phone != "" {
		phone.Note = rec.Hours
	}

	return []DetailRow{
		link("Website", rec.Website, domain.LinkWebsite),
		phone,
		link("Help page", rec.HelpPage, domain.LinkHelpPage),
		link("Twitter", rec.Twitter(), domain.LinkTwitter),
		link("Facebook", rec.Facebook(), domain.LinkFacebook),
	}
}

// RenderDetails renders the details panel, or nothing without a record
func (r *Renderer) RenderDetails(rec *domain.OrganizationRecord, marker string) string {
	if rec == nil {
		return ""
	}

	lines := []string{r.styles.Heading.Render(rec.Name)}
	for _, row := range DetailRows(*rec, marker) {
		lines = append(lines, r.renderRow(row))
		if row.Note != "" {
			lines = append(lines, r.styles.Note.Render(row.Note))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (r *Renderer) renderRow(row DetailRow) string {
	label := r.styles.Label.Render(row.Label)
	if row.Href == "" {
		return label + r.styles.Absent.Render(row.Value)
	}
	return label + termenv.Hyperlink(row.Href, r.styles.Link.Render(row.Value))
}

// RenderDisclaimer renders the note shown under the details
func (r *Renderer) RenderDisclaimer(text string, width int) string {
	style := r.styles.Disclaimer
	if width > 4 {
		style = style.Width(width - 4)
	}
	return style.Render(text)
}
