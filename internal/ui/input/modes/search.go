package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"orgdir/internal/ui/input/types"
)

// SearchMode is active while the input accepts edits. Keys it does not
// consume go to the text input.
type SearchMode struct {
	keys      types.KeyMap
	textInput *textinput.Model
}

func NewSearchMode(keys types.KeyMap, ti *textinput.Model) *SearchMode {
	return &SearchMode{keys: keys, textInput: ti}
}

func (m *SearchMode) Name() string {
	return "search"
}

func (m *SearchMode) Enter(ctx types.Context) tea.Cmd {
	if m.textInput == nil {
		return nil
	}
	m.textInput.CursorEnd()
	return m.textInput.Focus()
}

func (m *SearchMode) Exit(ctx types.Context) {}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, m.keys.Confirm):
		return []types.Action{types.ConfirmAction{}}, true
	case key.Matches(msg, m.keys.Next):
		return []types.Action{types.MoveHighlightAction{Delta: 1}}, true
	case key.Matches(msg, m.keys.Prev):
		return []types.Action{types.MoveHighlightAction{Delta: -1}}, true
	case key.Matches(msg, m.keys.Pick):
		if ctx.CandidateCount() == 0 {
			return nil, true
		}
		return []types.Action{types.PickSuggestionAction{Index: ctx.Highlight()}}, true
	case key.Matches(msg, m.keys.Clear):
		return []types.Action{types.QueryChangedAction{Text: ""}}, true
	case key.Matches(msg, m.keys.PageUp):
		return []types.Action{types.ScrollAction{Direction: "pageup"}}, true
	case key.Matches(msg, m.keys.PageDown):
		return []types.Action{types.ScrollAction{Direction: "pagedown"}}, true
	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, false
}
