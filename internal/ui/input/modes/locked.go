package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"orgdir/internal/domain"
	"orgdir/internal/ui/input/types"
)

// LockedMode is active while a record is selected. It swallows every key it
// does not bind so the input cannot be edited.
type LockedMode struct {
	keys      types.KeyMap
	textInput *textinput.Model
}

func NewLockedMode(keys types.KeyMap, ti *textinput.Model) *LockedMode {
	return &LockedMode{keys: keys, textInput: ti}
}

func (m *LockedMode) Name() string {
	return "locked"
}

func (m *LockedMode) Enter(ctx types.Context) tea.Cmd {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

func (m *LockedMode) Exit(ctx types.Context) {}

func (m *LockedMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit), key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, m.keys.Clear):
		return []types.Action{types.RefocusAction{}, types.QueryChangedAction{Text: ""}}, true
	case key.Matches(msg, m.keys.Refocus):
		return []types.Action{types.RefocusAction{}}, true
	case key.Matches(msg, m.keys.Website):
		return m.open(ctx, domain.LinkWebsite)
	case key.Matches(msg, m.keys.Phone):
		return m.open(ctx, domain.LinkPhone)
	case key.Matches(msg, m.keys.HelpPage):
		return m.open(ctx, domain.LinkHelpPage)
	case key.Matches(msg, m.keys.Twitter):
		return m.open(ctx, domain.LinkTwitter)
	case key.Matches(msg, m.keys.Facebook):
		return m.open(ctx, domain.LinkFacebook)
	case key.Matches(msg, m.keys.LineUp):
		return []types.Action{types.ScrollAction{Direction: "up"}}, true
	case key.Matches(msg, m.keys.LineDown):
		return []types.Action{types.ScrollAction{Direction: "down"}}, true
	case key.Matches(msg, m.keys.PageUp):
		return []types.Action{types.ScrollAction{Direction: "pageup"}}, true
	case key.Matches(msg, m.keys.PageDown):
		return []types.Action{types.ScrollAction{Direction: "pagedown"}}, true
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.LockedHelp):
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, true
}

func (m *LockedMode) open(ctx types.Context, field domain.LinkField) ([]types.Action, bool) {
	if !ctx.HasDetails() {
		return nil, true
	}
	return []types.Action{types.OpenLinkAction{Field: field}}, true
}
