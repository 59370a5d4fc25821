package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"orgdir/internal/clock"
	"orgdir/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Loading       bool
	LoadingSource string
	StatusMessage string
	InputView     string
	Locked        bool
	Candidates    []domain.OrganizationRecord
	Highlight     int
	Details       *domain.OrganizationRecord
	AbsentMarker  string
	Disclaimer    string
	ShowClocks    bool
	Clocks        []clock.Reading
	ClockRadius   int
	FooterText    string
	FooterVisible bool
}

// Header is the rendered header plus the screen rows of the input box
type Header struct {
	View        string
	InputTop    int
	InputBottom int
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Header renders the title line, the status line and the input box
func (r *Renderer) Header(state ViewState) Header {
	logo := r.styles.Title.Render("orgdir")

	indicator := ""
	if state.Loading {
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := int(time.Now().UnixMilli()/80) % len(spinner)
		indicator = r.styles.Dim.Render(fmt.Sprintf("%s Loading %s", spinner[frame], state.LoadingSource))
	}

	titleLine := logo
	if indicator != "" {
		termWidth := state.Width
		if termWidth <= 0 {
			termWidth = 80
		}
		padding := termWidth - lipgloss.Width(logo) - lipgloss.Width(indicator) - 2
		if padding < 2 {
			padding = 2
		}
		titleLine = logo + strings.Repeat(" ", padding) + indicator
	}

	status := r.styles.Status.Render(state.StatusMessage)
	if state.StatusMessage == "" {
		status = " "
	}

	boxStyle := r.styles.Input
	if state.Locked {
		boxStyle = r.styles.InputLocked
	}
	if state.Width > 4 {
		boxStyle = boxStyle.Width(state.Width - 4)
	}
	box := boxStyle.Render(state.InputView)

	top := lipgloss.Height(titleLine) + lipgloss.Height(status)
	return Header{
		View:        lipgloss.JoinVertical(lipgloss.Left, titleLine, status, box),
		InputTop:    top,
		InputBottom: top + lipgloss.Height(box) - 1,
	}
}

// Body renders the scrollable content: suggestions, then details with their
// disclaimer, then clocks. Suggestion rows are the first lines of the body.
func (r *Renderer) Body(state ViewState) string {
	var parts []string

	if list := r.RenderCandidates(state.Candidates, state.Highlight, state.Width); list != "" {
		parts = append(parts, list)
	}

	if details := r.RenderDetails(state.Details, state.AbsentMarker); details != "" {
		parts = append(parts, details)
		if state.Disclaimer != "" {
			parts = append(parts, r.RenderDisclaimer(state.Disclaimer, state.Width))
		}
	}

	if state.Details == nil && state.ShowClocks && len(state.Clocks) > 0 {
		parts = append(parts, r.RenderClocks(state.Clocks, state.ClockRadius, state.Width))
	}

	return strings.Join(parts, "\n\n")
}

// Compose stacks the header, the body viewport, the footer line and the help
// line into the final screen
func (r *Renderer) Compose(header, body, footer, helpLine string) string {
	return strings.Join([]string{header, body, footer, helpLine}, "\n")
}
