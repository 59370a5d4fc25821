package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"orgdir/internal/ui/input/modes"
	"orgdir/internal/ui/input/types"
)

// Handler routes keys to the active mode and owns the search text input
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model
	keys        types.KeyMap
}

func New(keys types.KeyMap) *Handler {
	ti := textinput.New()
	ti.Prompt = "" // drawn by the view
	ti.Placeholder = "Type an organization name"
	ti.Focus()

	h := &Handler{
		currentMode: types.ModeSearch,
		textInput:   &ti,
		keys:        keys,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeSearch] = modes.NewSearchMode(keys, h.textInput)
	h.modes[types.ModeLocked] = modes.NewLockedMode(keys, h.textInput)

	return h
}

// HandleKey returns the actions for a key. In search mode unconsumed keys edit
// the input, and any change of its content becomes a QueryChangedAction.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if consumed || h.currentMode != types.ModeSearch {
		return actions, nil
	}

	before := h.textInput.Value()
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	if after := h.textInput.Value(); after != before {
		actions = append(actions, types.QueryChangedAction{Text: after})
	}
	return actions, cmd
}

// Sync puts the handler in the mode matching the controller's lock flag and
// shows text in the input
func (h *Handler) Sync(locked bool, text string, ctx types.Context) tea.Cmd {
	target := types.ModeSearch
	if locked {
		target = types.ModeLocked
	}

	h.SetText(text)
	if target == h.currentMode {
		return nil
	}

	if old := h.modes[h.currentMode]; old != nil {
		old.Exit(ctx)
	}
	h.currentMode = target
	if next := h.modes[target]; next != nil {
		return next.Enter(ctx)
	}
	return nil
}

// SetText replaces the input content, keeping the cursor at the end
func (h *Handler) SetText(text string) {
	if h.textInput.Value() == text {
		return
	}
	h.textInput.SetValue(text)
	h.textInput.CursorEnd()
}

// Update handles non-keyboard messages for the text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.currentMode != types.ModeSearch {
		return nil
	}
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

func (h *Handler) Keys() types.KeyMap {
	return h.keys
}

// Init returns the initial command for the handler
func (h *Handler) Init() tea.Cmd {
	return textinput.Blink
}
