package ui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cli/browser"

	"orgdir/internal/domain"
)

func init() {
	// The TUI owns the terminal; launcher chatter would corrupt the screen.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// linkOpenedMsg reports the result of handing a link to the system opener
type linkOpenedMsg struct {
	field domain.LinkField
	url   string
	err   error
}

var (
	defaultOpenURL = browser.OpenURL
	openURL        = defaultOpenURL
)

// openLink returns a command that opens a field of rec, or nil when the
// record has no value for it
func openLink(rec domain.OrganizationRecord, field domain.LinkField) tea.Cmd {
	target := rec.Link(field)
	if target == "" {
		return nil
	}
	return func() tea.Msg {
		if err := openURL(target); err != nil {
			return linkOpenedMsg{field: field, url: target, err: fmt.Errorf("open %s: %w", field, err)}
		}
		return linkOpenedMsg{field: field, url: target}
	}
}
