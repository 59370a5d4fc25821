package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Input       lipgloss.Style
	InputLocked lipgloss.Style
	Row         lipgloss.Style
	Highlight   lipgloss.Style
	Heading     lipgloss.Style
	Label       lipgloss.Style
	Link        lipgloss.Style
	Absent      lipgloss.Style
	Note        lipgloss.Style
	Disclaimer  lipgloss.Style
	ClockFace   lipgloss.Style
	ClockLabel  lipgloss.Style
	ClockTime   lipgloss.Style
	Footer      lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		InputLocked: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1).
			Bold(true),
		Row:        lipgloss.NewStyle().PaddingLeft(2),
		Highlight:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Heading:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")).MarginBottom(1),
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(11),
		Link:       lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Underline(true),
		Absent:     lipgloss.NewStyle().Faint(true),
		Note:       lipgloss.NewStyle().Faint(true).Italic(true).PaddingLeft(11),
		Disclaimer: lipgloss.NewStyle().Faint(true).Italic(true).MarginTop(1),
		ClockFace:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		ClockLabel: lipgloss.NewStyle().Bold(true),
		ClockTime:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Footer:     lipgloss.NewStyle().Faint(true),
		Help:       lipgloss.NewStyle().Faint(true),
	}
}
